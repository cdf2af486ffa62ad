// internal/game/types.go
//
// Core type definitions for the number guessing engine.
// Defines:
//   - Feedback: result of comparing one guess with the secret.
//   - State: active/won/exhausted.
//   - Game: state for a single session.

package game

// Feedback is the evaluation of one accepted guess.
type Feedback string

const (
	FeedbackHigh Feedback = "high" // guess is above the secret
	FeedbackLow  Feedback = "low"  // guess is below the secret
	FeedbackHit  Feedback = "hit"  // guess equals the secret
)

// State is the coarse lifecycle of a game.
type State string

const (
	StateActive    State = "active"
	StateWon       State = "won"
	StateExhausted State = "exhausted"
)

// Game holds the state of a single guessing session.
type Game struct {
	ID       string  // Random hex identifier, used to correlate log lines.
	Limit    int     // Maximum number of accepted guesses (MaxGuesses).
	Guesses  []uint8 // Accepted guesses in order.
	Finished bool    // True once the game is over (won or exhausted).
	Won      bool    // True if the game was finished with a win.

	secret uint8 // Drawn once in New, never written again.
}
