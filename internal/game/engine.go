// internal/game/engine.go
//
// Core engine for a single number guessing session.
// Responsibilities:
//   - Draw the secret from an injected randomness provider.
//   - Validate and apply guesses (range check, attempt budget).
//   - Track state transitions: active → won/exhausted.
//
// Notes:
//   - The secret is derived as (byte % 100) + 1, which slightly favours
//     values 1..56 because 256 is not a multiple of 100. Kept as is.
//   - Out-of-range guesses are rejected without consuming an attempt.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const (
	MinGuess   = 1
	MaxGuess   = 100
	MaxGuesses = 7
)

var (
	ErrFinished   = errors.New("game finished")
	ErrOutOfRange = fmt.Errorf("guess must be between %d and %d", MinGuess, MaxGuess)
)

// New constructs a game whose secret is drawn from src.
// src only needs to yield uniformly distributed bytes; crypto/rand.Reader
// is used in production and a fixed byte slice in tests.
func New(src io.Reader) (*Game, error) {
	var b [1]byte
	if _, err := io.ReadFull(src, b[:]); err != nil {
		return nil, fmt.Errorf("draw secret: %w", err)
	}
	return &Game{
		ID:      randomID(),
		Limit:   MaxGuesses,
		Guesses: []uint8{},
		secret:  b[0]%MaxGuess + MinGuess,
	}, nil
}

// InRange reports whether v is an acceptable guess.
func InRange(v uint8) bool {
	return v >= MinGuess && v <= MaxGuess
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the feedback, the new state, or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must lie in [MinGuess, MaxGuess].
//
// Rejected guesses leave the game untouched.
//
// State transitions:
//   - Guess equals the secret → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Limit → Finished = true.
func (g *Game) ApplyGuess(guess uint8) (Feedback, State, error) {
	if g.Finished {
		return "", g.State(), ErrFinished
	}
	if !InRange(guess) {
		return "", g.State(), ErrOutOfRange
	}

	g.Guesses = append(g.Guesses, guess)
	fb := compare(guess, g.secret)

	if fb == FeedbackHit {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Limit {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateExhausted
	}
	return StateActive
}

// Secret returns the value the player has to find.
func (g *Game) Secret() uint8 { return g.secret }

// GuessCount returns the number of accepted guesses so far.
func (g *Game) GuessCount() int { return len(g.Guesses) }

// Remaining returns how many accepted guesses are left.
func (g *Game) Remaining() int {
	if n := g.Limit - len(g.Guesses); n > 0 {
		return n
	}
	return 0
}

func compare(guess, secret uint8) Feedback {
	switch {
	case guess > secret:
		return FeedbackHigh
	case guess < secret:
		return FeedbackLow
	default:
		return FeedbackHit
	}
}

// randomID returns a compact 16-hex-char identifier.
// It does not draw from the game's randomness provider, so injected
// sources only ever feed the secret.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
