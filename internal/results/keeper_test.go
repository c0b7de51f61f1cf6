package results

import (
	"testing"

	"github.com/cliffdoyle/othello-tournament/internal/domain"
)

const k = domain.BrightwellConstant

func s3History() []domain.Match {
	return []domain.Match{
		domain.NewFinishedMatch(1, 5, 1, 20, 44, nil),
		domain.NewFinishedMatch(1, 3, 2, 32, 32, nil),
		domain.NewFinishedMatch(1, 6, 4, 19, 45, nil),
	}
}

func TestStandingsDeterminism(t *testing.T) {
	matches := s3History()
	a := NewKeeper(matches, k).Standings()
	b := NewKeeper(matches, k).Standings()
	if len(a) != len(b) {
		t.Fatalf("standings length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("standings diverge at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestS3StandingsOrder(t *testing.T) {
	keeper := NewKeeper(s3History(), k)
	order := keeper.Standings()

	rank := make(map[int]int, len(order))
	for i, pid := range order {
		rank[pid] = i
	}

	// Players 1 and 4 won their matches (major 1.0), 2 and 3 drew (0.5),
	// 5 and 6 lost (0.0) — per spec.md S3.
	for _, winner := range []int{1, 4} {
		for _, loser := range []int{2, 3, 5, 6} {
			if rank[winner] > rank[loser] {
				t.Errorf("winner %d ranked below non-winner %d", winner, loser)
			}
		}
	}
	for _, drawer := range []int{2, 3} {
		for _, loser := range []int{5, 6} {
			if rank[drawer] > rank[loser] {
				t.Errorf("drawer %d ranked below loser %d", drawer, loser)
			}
		}
	}
}

func TestMajorScoreBounds(t *testing.T) {
	keeper := NewKeeper(s3History(), k)
	for _, pid := range keeper.Standings() {
		major := keeper.MajorScore(pid)
		matchCount := 0
		for _, m := range s3History() {
			if m.IsPlayerPlaying(pid) {
				matchCount++
			}
		}
		if major < 0 || major > float64(matchCount) {
			t.Errorf("player %d major score %v out of bounds [0, %d]", pid, major, matchCount)
		}
	}
}

func TestHasPlayersMet(t *testing.T) {
	keeper := NewKeeper(s3History(), k)
	if !keeper.HasPlayersMet(5, 1) {
		t.Error("5 and 1 played each other, expected met")
	}
	if keeper.HasPlayersMet(5, 3) {
		t.Error("5 and 3 never played, expected not met")
	}
}

func TestHasPlayerBye(t *testing.T) {
	matches := []domain.Match{domain.NewByeMatch(1, 4, nil)}
	keeper := NewKeeper(matches, k)
	if !keeper.HasPlayerBye(4) {
		t.Error("player 4 has a recorded bye")
	}
	if keeper.HasPlayerBye(5) {
		t.Error("player 5 has no recorded bye")
	}
}

func TestGetColorCount(t *testing.T) {
	matches := []domain.Match{
		domain.NewFinishedMatch(1, 10, 11, 40, 24, nil),
		domain.NewFinishedMatch(2, 10, 12, 30, 34, nil),
	}
	keeper := NewKeeper(matches, k)
	if got := keeper.GetColorCount(10, domain.Black); got != 2 {
		t.Errorf("player 10 black count = %d, want 2", got)
	}
	if got := keeper.GetColorCount(11, domain.White); got != 1 {
		t.Errorf("player 11 white count = %d, want 1", got)
	}
	if got := keeper.GetColorCount(10, domain.White); got != 0 {
		t.Errorf("player 10 white count = %d, want 0", got)
	}
}

func TestIsEmpty(t *testing.T) {
	if !NewKeeper(nil, k).IsEmpty() {
		t.Error("keeper built from nil matches should be empty")
	}
	if NewKeeper(s3History(), k).IsEmpty() {
		t.Error("keeper built from non-empty history should not be empty")
	}
}

func TestFilterForStandingsExcludesManualSpecialAndFutureRounds(t *testing.T) {
	matches := []domain.Match{
		domain.NewFinishedMatch(1, 1, 2, 40, 24, nil),
		domain.NewFinishedMatch(2, 3, 4, 40, 24, nil),
		domain.NewFinishedMatch(3, 5, 6, 40, 24, nil),
	}
	rounds := map[int]domain.RoundType{
		1: domain.RoundAutomatic,
		2: domain.RoundManualSpecial,
		3: domain.RoundManualNormal,
	}
	filtered := FilterForStandings(matches, rounds, 2)
	if len(filtered) != 1 {
		t.Fatalf("got %d matches, want 1 (round 1 only)", len(filtered))
	}
	if filtered[0].RoundID != 1 {
		t.Fatalf("got round %d, want round 1", filtered[0].RoundID)
	}
}
