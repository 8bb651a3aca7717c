package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
	"github.com/lixenwraith/verb-runner/vocab"
)

// ResetTimer clears the prompt and preloads the idle timer so the first prompt fires on the next tick
func (s *Session) ResetTimer() {
	s.Prompt = PromptState{Elapsed: s.Params.PromptInterval}
}

// AdvanceTimer accumulates idle time and fires a prompt at the interval
// Frozen while a prompt is active or outside PLAYING
func (s *Session) AdvanceTimer(dt float64) {
	if s.Prompt.Active || s.Phase != core.PhasePlaying || dt < 0 {
		return
	}

	s.Prompt.Elapsed += dt
	if s.Prompt.Elapsed >= s.Params.PromptInterval {
		s.GeneratePrompt()
	}
}

// GeneratePrompt draws a verb and pronoun and opens the prompt for input
func (s *Session) GeneratePrompt() {
	p := s.vocab.Pick(s.rng)
	s.Prompt = PromptState{
		Active:   true,
		Verb:     p.Verb.Infinitive,
		Pronoun:  p.Pronoun.String(),
		Display:  p.Display(),
		Expected: p.Answer,
	}

	s.emit(event.EventPromptShown, &event.PromptPayload{
		Verb:    s.Prompt.Verb,
		Pronoun: s.Prompt.Pronoun,
		Display: s.Prompt.Display,
	})
	s.logger.Debug("prompt shown",
		zap.String("verb", s.Prompt.Verb),
		zap.String("pronoun", s.Prompt.Pronoun),
	)
}

// SubmitAnswer evaluates raw input against the active prompt
// Ignored without an active prompt, during the feedback delay or outside PLAYING
// Returns true if the submission was evaluated
func (s *Session) SubmitAnswer(raw string) bool {
	if s.Phase != core.PhasePlaying || !s.Prompt.Active || s.Prompt.InputLocked {
		return false
	}

	s.Prompt.InputLocked = true
	payload := &event.AnswerPayload{Input: raw}

	if vocab.Matches(raw, s.Prompt.Expected) {
		s.ApplyBoost(s.Params.CorrectBoost)
		s.emit(event.EventAnswerAccepted, payload)
		s.schedule(actionClearPrompt)
		s.logger.Debug("answer accepted", zap.String("input", raw))
		return true
	}

	s.ApplyPenalty(s.Params.IncorrectPenalty)
	s.emit(event.EventAnswerRejected, payload)
	s.schedule(actionRetryPrompt)
	s.logger.Debug("answer rejected",
		zap.String("input", raw),
		zap.String("expected", s.Prompt.Expected),
	)
	return true
}

// clearPrompt retires an answered prompt; the next one is a full interval away
func (s *Session) clearPrompt() {
	s.Prompt = PromptState{}
	s.emit(event.EventPromptHidden, nil)
}

// retryPrompt reopens input on the same question
func (s *Session) retryPrompt() {
	s.Prompt.InputLocked = false
	s.emit(event.EventInputReset, nil)
}
