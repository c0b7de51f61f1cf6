package pairing

import (
	"context"

	"github.com/cliffdoyle/othello-tournament/internal/domain"
)

// byeDummyID is the synthetic player id appended to pad an odd roster to
// even length for the circle algorithm. It never appears in output: any
// pairing naming it becomes a real Bye for its partner.
const byeDummyID = 0

// RoundRobinGenerator implements the circle-method first round (with
// injected randomness) and the subsequent-round shift search (spec
// §4.4.2).
type RoundRobinGenerator struct {
	players []domain.Player
	past    standingsView
	rand    RandSource
}

// NewRoundRobinGenerator constructs a Round-Robin generator. rand supplies
// the first round's random shift; substitute a fixed-value source for
// deterministic tests.
func NewRoundRobinGenerator(players []domain.Player, past standingsView, rand RandSource) *RoundRobinGenerator {
	return &RoundRobinGenerator{players: players, past: past, rand: rand}
}

// GeneratePairings implements Generator.
func (g *RoundRobinGenerator) GeneratePairings(ctx context.Context, roundID int) ([]domain.Match, error) {
	if g.past.IsEmpty() {
		shift := 0
		if len(g.players) > 1 {
			shift = g.rand(0, len(g.players)-1)
		}
		return g.circlePairings(roundID, shift), nil
	}

	standings := g.past.Standings()
	if len(standings) == 0 {
		return nil, newNoLegalPairing(FormatRoundRobin, "empty standings")
	}
	leader := standings[0]
	target := -1
	for _, id := range standings[1:] {
		if !g.past.HasPlayersMet(leader, id) {
			target = id
			break
		}
	}
	if target == -1 {
		return nil, newNoLegalPairing(FormatRoundRobin, "leader has met every remaining opponent")
	}

	// Follows the original source literally: the shift loop bound is
	// len(standings)-1, the real roster size minus one, not the
	// padded-with-synthetic-bye count. On an odd roster this is one shift
	// short of a full cycle of shifts — see SPEC_FULL.md §9.
	for shift := 0; shift < len(standings)-1; shift++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		matches := g.circlePairings(roundID, shift)
		if containsPairing(matches, leader, target) {
			return matches, nil
		}
	}
	return nil, newNoLegalPairing(FormatRoundRobin, "no shift produced the required pairing")
}

// circlePairings applies the standard circle method: fix player 0, rotate
// the remainder left by shift, split in half, reverse the second half, and
// pair element-wise.
func (g *RoundRobinGenerator) circlePairings(roundID, shift int) []domain.Match {
	ids := make([]int, 0, len(g.players)+1)
	for _, p := range g.players {
		ids = append(ids, p.ID)
	}
	if len(ids)%2 == 1 {
		ids = append(ids, byeDummyID)
	}

	first, rest := ids[0], ids[1:]
	s := shift % len(rest)
	rotated := append(append([]int{}, rest[s:]...), rest[:s]...)
	full := append([]int{first}, rotated...)

	mid := len(full) / 2
	left, right := full[:mid], full[mid:]
	reversed := make([]int, len(right))
	for i, v := range right {
		reversed[len(right)-1-i] = v
	}

	matches := make([]domain.Match, 0, mid)
	for i, p1 := range left {
		p2 := reversed[i]
		switch {
		case p1 == byeDummyID:
			matches = append(matches, domain.NewByeMatch(roundID, p2, nil))
		case p2 == byeDummyID:
			matches = append(matches, domain.NewByeMatch(roundID, p1, nil))
		default:
			matches = append(matches, pairPlayers(g.past, roundID, p1, p2))
		}
	}
	return matches
}

func containsPairing(matches []domain.Match, a, b int) bool {
	for _, m := range matches {
		if opp, ok := m.GetOpponentID(a); ok && opp == b {
			return true
		}
	}
	return false
}
