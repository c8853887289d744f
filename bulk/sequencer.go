// Package bulk sends invitations to a list of guests one at a time.
// Sequential on purpose: the WhatsApp gateway penalizes burst sending, so
// sends must never be parallelized.
package bulk

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ErrSkip marks a guest that was deliberately not sent to, e.g. an
// invitation already delivered within the cool-down window. Senders wrap it
// to have the sequencer report the guest as skipped instead of failed.
var ErrSkip = errors.New("send skipped")

type Failure struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

type Result struct {
	Success []string  `json:"success"`
	Skipped []string  `json:"skipped"`
	Failed  []Failure `json:"failed"`
}

type Sequencer struct {
	// Delay is the minimum pause between consecutive send attempts.
	Delay time.Duration
	// Send performs the single-guest send. An error wrapping ErrSkip is
	// recorded as a skip; any other error as a failure.
	Send func(guestID uint64) error
	// ResolveName maps a guest ID to a display name for the report.
	ResolveName func(guestID uint64) string

	sleep func(time.Duration)
	log   zerolog.Logger
}

func NewSequencer(delay time.Duration, send func(uint64) error, resolveName func(uint64) string) *Sequencer {
	return &Sequencer{
		Delay:       delay,
		Send:        send,
		ResolveName: resolveName,
		sleep:       time.Sleep,
		log:         zerolog.New(os.Stdout).With().Timestamp().Str("component", "bulk").Logger(),
	}
}

// Run attempts every guest in input order. A failed guest never aborts the
// rest of the sequence; the delay is imposed between each attempt and the
// next, failures included.
func (s *Sequencer) Run(guestIDs []uint64) Result {
	result := Result{Success: []string{}, Skipped: []string{}, Failed: []Failure{}}
	for i, id := range guestIDs {
		if i > 0 {
			s.sleep(s.Delay)
		}
		name := s.ResolveName(id)
		err := s.Send(id)
		switch {
		case err == nil:
			result.Success = append(result.Success, name)
		case errors.Is(err, ErrSkip):
			s.log.Info().Uint64("guest_id", id).Str("name", name).Msg("send skipped")
			result.Skipped = append(result.Skipped, name)
		default:
			s.log.Warn().Uint64("guest_id", id).Str("name", name).Err(err).Msg("send failed")
			result.Failed = append(result.Failed, Failure{ID: id, Name: name, Error: err.Error()})
		}
	}
	return result
}
