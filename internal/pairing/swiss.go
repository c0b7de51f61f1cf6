package pairing

import (
	"context"
	"fmt"
	"sort"

	"github.com/cliffdoyle/othello-tournament/internal/domain"
)

// SwissGenerator implements the first-round rating split and the
// subsequent-round memoized bitmask backtracking search (spec §4.4.1).
type SwissGenerator struct {
	players    []domain.Player
	past       standingsView
	bitmaskCap int
}

// NewSwissGenerator constructs a Swiss generator. bitmaskCap bounds the
// player count the backtracking search's uint64 bitmask can address
// (internal/config.SwissBitmaskCap, default 63); rosters above the cap are
// rejected rather than silently overflowing the mask.
func NewSwissGenerator(players []domain.Player, past standingsView, bitmaskCap int) *SwissGenerator {
	return &SwissGenerator{players: players, past: past, bitmaskCap: bitmaskCap}
}

// GeneratePairings implements Generator.
func (g *SwissGenerator) GeneratePairings(ctx context.Context, roundID int) ([]domain.Match, error) {
	if g.past.IsEmpty() {
		return g.firstRound(roundID), nil
	}
	standings := g.past.DetailedStandings()
	if len(standings) > g.bitmaskCap {
		return nil, newNoLegalPairing(FormatSwiss, fmt.Sprintf("roster of %d exceeds bitmask cap %d", len(standings), g.bitmaskCap))
	}
	memo := make(map[uint64][]domain.Match)
	failed := make(map[uint64]bool)
	matches, ok := g.solve(ctx, roundID, standings, uint64(0), memo, failed)
	if !ok {
		return nil, newNoLegalPairing(FormatSwiss, "search exhausted")
	}
	return matches, nil
}

// firstRound sorts by descending rating, splits at the ceiling midpoint,
// and pairs index i of the upper half with index i of the lower half.
// Color alternates by index; a leftover upper-half player gets a Bye.
func (g *SwissGenerator) firstRound(roundID int) []domain.Match {
	sorted := make([]domain.Player, len(g.players))
	copy(sorted, g.players)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })

	midpoint := (len(sorted) + 1) / 2
	upper := sorted[:midpoint]
	lower := sorted[midpoint:]

	matches := make([]domain.Match, 0, len(upper))
	for i, p1 := range upper {
		if i >= len(lower) {
			matches = append(matches, domain.NewByeMatch(roundID, p1.ID, nil))
			continue
		}
		p2 := lower[i]
		if i%2 == 0 {
			matches = append(matches, domain.NewUnfinishedMatch(roundID, p1.ID, p2.ID, nil))
		} else {
			matches = append(matches, domain.NewUnfinishedMatch(roundID, p2.ID, p1.ID, nil))
		}
	}
	return matches
}

// solve is the memoized backtracking search over standings order. bit i
// set means standings[i] has already been paired for this round.
func (g *SwissGenerator) solve(ctx context.Context, roundID int, standings []domain.PlayerStanding, mask uint64, memo map[uint64][]domain.Match, failed map[uint64]bool) ([]domain.Match, bool) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, false
		}
	}

	n := len(standings)
	full := uint64(1)<<uint(n) - 1
	if mask == full {
		return nil, true
	}
	if m, ok := memo[mask]; ok {
		return m, true
	}
	if failed[mask] {
		return nil, false
	}

	i := firstUnsetBit(mask, n)
	p1 := standings[i].PlayerID

	if popcountUnset(mask, n) == 1 {
		if g.past.HasPlayerBye(p1) {
			failed[mask] = true
			return nil, false
		}
		rest, ok := g.solve(ctx, roundID, standings, mask|(1<<uint(i)), memo, failed)
		if !ok {
			failed[mask] = true
			return nil, false
		}
		out := append([]domain.Match{domain.NewByeMatch(roundID, p1, nil)}, rest...)
		memo[mask] = out
		return out, true
	}

	for j := i + 1; j < n; j++ {
		if mask&(1<<uint(j)) != 0 {
			continue
		}
		p2 := standings[j].PlayerID
		if g.past.HasPlayersMet(p1, p2) {
			continue
		}
		rest, ok := g.solve(ctx, roundID, standings, mask|(1<<uint(i))|(1<<uint(j)), memo, failed)
		if !ok {
			continue
		}
		out := append([]domain.Match{pairPlayers(g.past, roundID, p1, p2)}, rest...)
		memo[mask] = out
		return out, true
	}

	failed[mask] = true
	return nil, false
}

func firstUnsetBit(mask uint64, n int) int {
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) == 0 {
			return i
		}
	}
	return n
}

func popcountUnset(mask uint64, n int) int {
	cnt := 0
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) == 0 {
			cnt++
		}
	}
	return cnt
}
