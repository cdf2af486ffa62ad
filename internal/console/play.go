// internal/console/play.go
//
// Terminal front end for one game.
// Responsibilities:
//   - Print the banner and rules.
//   - Ask for guesses until the game is won or the attempts run out.
//   - Print per-guess feedback and the final outcome.
//
// Notes:
//   - Out-of-range values are rejected here, before they reach the engine,
//     so they never cost an attempt.
//   - Diagnostics go through zerolog (stderr); gameplay text goes to the
//     Prompter's output only.

package console

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/prompt"
)

const guessPrompt = "Enter a guess: "

// Play runs g to completion on p and returns the terminal state.
// The only errors are channel failures, which the caller should treat as fatal.
func Play(p *prompt.Prompter, g *game.Game) (game.State, error) {
	logger := log.With().Str("game", g.ID).Logger()
	logger.Debug().Int("limit", g.Limit).Msg("game started")

	p.Println("Game Started!")
	p.Printf("Computer thinks of a number between %d and %d and you have to guess that number using atmost %d guesses.\n",
		game.MinGuess, game.MaxGuess, g.Limit)

	for !g.Finished {
		guess, err := prompt.Until(p, guessPrompt, prompt.Uint8, func(v uint8) bool {
			if !game.InRange(v) {
				logger.Debug().Uint8("value", v).Msg("guess out of range")
				p.Printf("Value must be between %d and %d, try again!\n", game.MinGuess, game.MaxGuess)
				return false
			}
			return true
		})
		if err != nil {
			logger.Error().Err(err).Int("guesses", g.GuessCount()).Msg("reading guess failed")
			return g.State(), err
		}

		fb, state, err := g.ApplyGuess(guess)
		if err != nil {
			// Unreachable while the loop guards Finished and the range.
			return state, fmt.Errorf("apply guess %d: %w", guess, err)
		}
		logger.Debug().
			Uint8("guess", guess).
			Str("feedback", string(fb)).
			Int("remaining", g.Remaining()).
			Msg("guess accepted")

		switch fb {
		case game.FeedbackHigh:
			p.Println("Too High!")
		case game.FeedbackLow:
			p.Println("Too Low!")
		case game.FeedbackHit:
			p.Printf(":) You guessed it, the value was: %d\n", g.Secret())
			p.Printf("Total # of guesses: %d\n", g.GuessCount())
		}
	}

	if g.State() == game.StateExhausted {
		p.Printf("You couldn't guess it using atmost %d guesses! :(\n", g.Limit)
		p.Printf("The value was: %d\n", g.Secret())
	}
	logger.Debug().Str("state", string(g.State())).Int("guesses", g.GuessCount()).Msg("game over")

	return g.State(), p.Flush()
}
