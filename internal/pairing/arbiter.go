// Package pairing implements the automatic pairing generators (Swiss,
// Round-Robin) and the color arbiter they share.
package pairing

import "github.com/cliffdoyle/othello-tournament/internal/domain"

// standingsView is the subset of results.Keeper the generators and the
// arbiter depend on. Kept narrow and interface-typed so pairing stays
// decoupled from the results package's concrete implementation.
type standingsView interface {
	Standings() []int
	DetailedStandings() []domain.PlayerStanding
	HasPlayersMet(a, b int) bool
	HasPlayerBye(pid int) bool
	GetColorCount(pid int, color domain.PlayerColor) int
	IsEmpty() bool
}

// ArbiterColor decides which color p1 takes against p2, per the WOF color
// balancing rule (spec §4.3). The tie case favors Black for p1 — callers
// must always pass the higher-seeded or earlier-standings player as p1.
func ArbiterColor(past standingsView, p1, p2 int) domain.PlayerColor {
	p1Black := past.GetColorCount(p1, domain.Black)
	p1White := past.GetColorCount(p1, domain.White)
	p2Black := past.GetColorCount(p2, domain.Black)
	p2White := past.GetColorCount(p2, domain.White)

	if p1Black+p2White > p2Black+p1White {
		return domain.White
	}
	return domain.Black
}

// pairPlayers builds a Normal-in-waiting (Unfinished) match between p1 and
// p2 for roundID, assigning colors via ArbiterColor with p1 as the first
// argument.
func pairPlayers(past standingsView, roundID, p1, p2 int) domain.Match {
	if ArbiterColor(past, p1, p2) == domain.Black {
		return domain.NewUnfinishedMatch(roundID, p1, p2, nil)
	}
	return domain.NewUnfinishedMatch(roundID, p2, p1, nil)
}
