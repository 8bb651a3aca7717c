package parameter

// Race carries the gameplay tuning into a session
// Production code uses DefaultRace; tests build custom records
type Race struct {
	TotalDistance           float64
	PlayerStartDistance     float64
	PlayerFirstLoadDistance float64
	PursuerStartDistance    float64
	PlayerSpeed             float64
	PursuerSpeed            float64
	BackgroundScrollFactor  float64
	PromptInterval          float64
	CorrectBoost            float64
	IncorrectPenalty        float64
	FeedbackDelay           float64
}

// DefaultRace returns the fixed game tuning
func DefaultRace() Race {
	return Race{
		TotalDistance:           TotalDistance,
		PlayerStartDistance:     PlayerStartDistance,
		PlayerFirstLoadDistance: PlayerFirstLoadDistance,
		PursuerStartDistance:    PursuerStartDistance,
		PlayerSpeed:             PlayerSpeed,
		PursuerSpeed:            PursuerSpeed,
		BackgroundScrollFactor:  BackgroundScrollFactor,
		PromptInterval:          PromptInterval,
		CorrectBoost:            CorrectBoost,
		IncorrectPenalty:        IncorrectPenalty,
		FeedbackDelay:           FeedbackDelay,
	}
}
