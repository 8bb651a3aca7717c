package parameter

// Track
const (
	// TotalDistance is the finish line distance
	TotalDistance = 3000.0

	// PlayerStartDistance is the head start given on every (re)start
	PlayerStartDistance = 500.0

	// PlayerFirstLoadDistance is the runner position shown on the title screen before the first start
	PlayerFirstLoadDistance = 100.0

	// PursuerStartDistance is where the pursuer begins
	PursuerStartDistance = 0.0
)

// Speeds in distance units per second
const (
	PlayerSpeed = 70.0

	// PursuerSpeed exceeds PlayerSpeed, so only correct answers keep the runner ahead
	PursuerSpeed = 100.0

	// BackgroundScrollFactor scales player speed into ground texture scroll speed
	BackgroundScrollFactor = 2.0
)

// Quiz
const (
	// PromptInterval is idle seconds between a cleared prompt and the next one
	PromptInterval = 3.0

	// CorrectBoost is the distance added to the player on a correct answer
	CorrectBoost = 150.0

	// IncorrectPenalty is the distance added to the pursuer on a wrong answer
	IncorrectPenalty = 50.0

	// FeedbackDelay is the input lock after a submission, in seconds
	FeedbackDelay = 0.5
)

// Phase messages
const (
	TitleStart    = "VERB RUNNER"
	SubtitleStart = "Press Enter to Start"
	TitleWon      = "¡ESCAPASTE!"
	SubtitleWon   = "Press Enter to Play Again"
	TitleLost     = "¡ATRAPADO!"
	SubtitleLost  = "Press Enter to Try Again"
)
