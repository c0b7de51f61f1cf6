// Package results implements the WOF result keeper: a pure aggregation
// of a match list into standings, opponent adjacency, bye history, and
// color counts.
package results

import (
	"sort"

	"github.com/cliffdoyle/othello-tournament/internal/domain"
)

// Keeper is an immutable, eagerly-computed view over a match list. It is
// constructed once via NewKeeper and never mutated afterward.
type Keeper struct {
	matches   []domain.Match
	major     map[int]float64
	minor     map[int]float64
	opponents map[int]map[int]bool
	byes      map[int]bool
	colors    map[int]map[domain.PlayerColor]int
	order     []int // player ids, sorted major desc, minor desc, id asc
	history   map[int][]domain.Match
}

// NewKeeper computes every derived aggregate from matches at construction.
// brightwellConstant is normally domain.BrightwellConstant (6.0); exposed
// as a parameter so config.Config can override it for test or alternate
// federation rules.
func NewKeeper(matches []domain.Match, brightwellConstant float64) *Keeper {
	k := &Keeper{
		matches:   matches,
		major:     make(map[int]float64),
		minor:     make(map[int]float64),
		opponents: make(map[int]map[int]bool),
		byes:      make(map[int]bool),
		colors:    make(map[int]map[domain.PlayerColor]int),
		history:   make(map[int][]domain.Match),
	}

	playerIDs := make(map[int]bool)
	for _, m := range matches {
		black, white, hasWhite := m.GetPlayersID()
		playerIDs[black] = true
		if hasWhite {
			playerIDs[white] = true
		}
	}

	for pid := range playerIDs {
		for _, m := range matches {
			if m.IsPlayerPlaying(pid) {
				k.major[pid] += m.MajorContribution(pid)
			}
		}
	}

	for pid := range playerIDs {
		for _, m := range matches {
			if m.IsPlayerPlaying(pid) {
				k.minor[pid] += m.MinorContribution(pid, k.major, brightwellConstant)
				k.history[pid] = append(k.history[pid], m)
			}
		}
	}

	for pid := range playerIDs {
		for _, m := range matches {
			if !m.IsPlayerPlaying(pid) {
				continue
			}
			switch m.Variant {
			case domain.VariantBye:
				k.byes[pid] = true
			default:
				if opp, ok := m.GetOpponentID(pid); ok {
					if k.opponents[pid] == nil {
						k.opponents[pid] = make(map[int]bool)
					}
					k.opponents[pid][opp] = true
				}
				if c := m.GetPlayerColor(pid); c != domain.ColorNone {
					if k.colors[pid] == nil {
						k.colors[pid] = make(map[domain.PlayerColor]int)
					}
					k.colors[pid][c]++
				}
			}
		}
	}

	k.order = make([]int, 0, len(playerIDs))
	for pid := range playerIDs {
		k.order = append(k.order, pid)
	}
	sort.Slice(k.order, func(i, j int) bool {
		a, b := k.order[i], k.order[j]
		if k.major[a] != k.major[b] {
			return k.major[a] > k.major[b]
		}
		if k.minor[a] != k.minor[b] {
			return k.minor[a] > k.minor[b]
		}
		return a < b
	})

	return k
}

// Standings returns player ids in descending rank order.
func (k *Keeper) Standings() []int {
	out := make([]int, len(k.order))
	copy(out, k.order)
	return out
}

// DetailedStandings returns the full PlayerStanding sequence in the same
// order as Standings.
func (k *Keeper) DetailedStandings() []domain.PlayerStanding {
	out := make([]domain.PlayerStanding, 0, len(k.order))
	for _, pid := range k.order {
		out = append(out, domain.PlayerStanding{
			PlayerID:     pid,
			MajorScore:   k.major[pid],
			MinorScore:   k.minor[pid],
			MatchHistory: k.history[pid],
		})
	}
	return out
}

// HasPlayersMet reports whether a and b have played a Normal or Unfinished
// match against each other in the supplied history.
func (k *Keeper) HasPlayersMet(a, b int) bool {
	return k.opponents[a][b]
}

// HasPlayerBye reports whether pid has received a Bye in the supplied
// history.
func (k *Keeper) HasPlayerBye(pid int) bool {
	return k.byes[pid]
}

// GetColorCount returns how many times pid has held the given color across
// Normal and Unfinished matches.
func (k *Keeper) GetColorCount(pid int, color domain.PlayerColor) int {
	return k.colors[pid][color]
}

// MajorScore returns pid's aggregate major score, or 0 if pid never
// appears in the supplied match list.
func (k *Keeper) MajorScore(pid int) float64 {
	return k.major[pid]
}

// MinorScore returns pid's aggregate minor (Brightwell) score.
func (k *Keeper) MinorScore(pid int) float64 {
	return k.minor[pid]
}

// IsEmpty reports whether the keeper was constructed with no matches.
func (k *Keeper) IsEmpty() bool {
	return len(k.matches) == 0
}

// FilterForStandings restricts matches to rounds whose type counts toward
// standings (Automatic or ManualNormal) and whose round id is at most
// upTo. Callers apply this before constructing a Keeper; the Keeper itself
// knows nothing about rounds.
func FilterForStandings(matches []domain.Match, rounds map[int]domain.RoundType, upTo int) []domain.Match {
	out := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if m.RoundID > upTo {
			continue
		}
		if !rounds[m.RoundID].CountsTowardStandings() {
			continue
		}
		out = append(out, m)
	}
	return out
}
