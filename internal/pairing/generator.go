package pairing

import (
	"context"

	"github.com/cliffdoyle/othello-tournament/internal/domain"
)

// RandSource supplies a random integer in [lo, hi], inclusive. Round-Robin's
// first round is the only source of nondeterminism in the core (spec §6);
// injecting it as a function keeps tests reproducible.
type RandSource func(lo, hi int) int

// Generator produces the next round's pairings for one tournament format.
type Generator interface {
	GeneratePairings(ctx context.Context, roundID int) ([]domain.Match, error)
}

// Outcome is an optional observability value a host process can log after
// calling a Generator. The core never constructs or writes it itself —
// cmd/paircli builds one from a GeneratePairings call's inputs and result.
type Outcome struct {
	Format       Format
	RoundID      int
	PlayerCount  int
	MatchCount   int
	Err          error
}

// NewOutcome summarizes a GeneratePairings call for logging.
func NewOutcome(format Format, roundID, playerCount int, matches []domain.Match, err error) Outcome {
	return Outcome{
		Format:      format,
		RoundID:     roundID,
		PlayerCount: playerCount,
		MatchCount:  len(matches),
		Err:         err,
	}
}

// New dispatches to the generator registered for format, per spec §4.4.3.
// Unknown formats surface PairingError{Kind: UnsupportedFormat} at the
// dispatch layer rather than being caught downstream.
func New(format Format, players []domain.Player, past standingsView, rand RandSource, bitmaskCap int) (Generator, error) {
	switch format {
	case FormatSwiss:
		return NewSwissGenerator(players, past, bitmaskCap), nil
	case FormatRoundRobin:
		return NewRoundRobinGenerator(players, past, rand), nil
	default:
		return nil, newUnsupportedFormat(format)
	}
}
