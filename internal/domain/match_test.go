package domain

import "testing"

func TestNewMatchFromRowDiscriminatesByVariant(t *testing.T) {
	cases := []struct {
		name    string
		black   int
		white   int
		variant Variant
	}{
		{"normal", 20, 44, VariantNormal},
		{"unfinished", UnfinishedScore, UnfinishedScore, VariantUnfinished},
		{"bye", ByeScore, ByeScore, VariantBye},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewMatchFromRow(1, 10, 11, c.black, c.white, nil)
			if m.Variant != c.variant {
				t.Fatalf("got variant %v, want %v", m.Variant, c.variant)
			}
		})
	}
}

func TestByeMatchNamesOnlyRecipient(t *testing.T) {
	m := NewByeMatch(1, 10, nil)
	if !m.IsPlayerPlaying(10) {
		t.Fatal("bye recipient should be playing")
	}
	if m.IsPlayerPlaying(11) {
		t.Fatal("non-recipient should not be playing a bye")
	}
	black, white, hasWhite := m.GetPlayersID()
	if black != 10 || hasWhite || white != 0 {
		t.Fatalf("got (%d, %d, %v), want (10, 0, false)", black, white, hasWhite)
	}
}

func TestMajorContributionNormalWinDrawLoss(t *testing.T) {
	win := NewFinishedMatch(1, 10, 11, 40, 24, nil)
	if got := win.MajorContribution(10); got != 1.0 {
		t.Errorf("winner major = %v, want 1.0", got)
	}
	if got := win.MajorContribution(11); got != 0.0 {
		t.Errorf("loser major = %v, want 0.0", got)
	}

	draw := NewFinishedMatch(1, 10, 11, 32, 32, nil)
	if got := draw.MajorContribution(10); got != 0.5 {
		t.Errorf("draw major (black) = %v, want 0.5", got)
	}
	if got := draw.MajorContribution(11); got != 0.5 {
		t.Errorf("draw major (white) = %v, want 0.5", got)
	}
}

func TestMajorContributionScoreConservation(t *testing.T) {
	m := NewFinishedMatch(1, 10, 11, 40, 24, nil)
	total := m.MajorContribution(10) + m.MajorContribution(11)
	if total != 1.0 {
		t.Fatalf("major conservation violated: got %v, want 1.0", total)
	}
}

func TestByeMajorContributionIsWinEquivalent(t *testing.T) {
	m := NewByeMatch(1, 10, nil)
	if got := m.MajorContribution(10); got != 1.0 {
		t.Fatalf("bye recipient major = %v, want 1.0", got)
	}
}

func TestMajorContributionNonParticipantIsNeutral(t *testing.T) {
	m := NewFinishedMatch(1, 10, 11, 40, 24, nil)
	if got := m.MajorContribution(99); got != 0.0 {
		t.Fatalf("non-participant major = %v, want 0.0", got)
	}
	if got, ok := m.GetOpponentID(99); ok || got != 0 {
		t.Fatalf("non-participant opponent = (%d, %v), want (0, false)", got, ok)
	}
}

// TestMinorContributionUnfinishedParticipant locks the resolved Open
// Question: an Unfinished participation contributes 0 to major but still
// contributes 32 + K*major(self) to minor, matching the source this spec
// was ported from.
func TestMinorContributionUnfinishedParticipant(t *testing.T) {
	m := NewUnfinishedMatch(1, 10, 11, nil)
	major := map[int]float64{10: 2.5, 11: 1.0}

	if got := m.MajorContribution(10); got != 0.0 {
		t.Fatalf("unfinished major = %v, want 0.0", got)
	}

	const k = 6.0
	got := m.MinorContribution(10, major, k)
	want := 32.0 + k*major[10]
	if got != want {
		t.Fatalf("unfinished minor = %v, want %v", got, want)
	}
}

func TestMinorContributionByeUsesSelfAsOpponentProxy(t *testing.T) {
	m := NewByeMatch(1, 10, nil)
	major := map[int]float64{10: 3.0}
	const k = 6.0
	got := m.MinorContribution(10, major, k)
	want := 32.0 + k*3.0
	if got != want {
		t.Fatalf("bye minor = %v, want %v", got, want)
	}
}

func TestMinorContributionNormalUsesOpponentMajor(t *testing.T) {
	m := NewFinishedMatch(1, 10, 11, 40, 24, nil)
	major := map[int]float64{10: 1.0, 11: 0.0}
	const k = 6.0

	gotBlack := m.MinorContribution(10, major, k)
	wantBlack := 40.0 + k*major[11]
	if gotBlack != wantBlack {
		t.Fatalf("black minor = %v, want %v", gotBlack, wantBlack)
	}

	gotWhite := m.MinorContribution(11, major, k)
	wantWhite := 24.0 + k*major[10]
	if gotWhite != wantWhite {
		t.Fatalf("white minor = %v, want %v", gotWhite, wantWhite)
	}
}

func TestRoundTypeCountsTowardStandings(t *testing.T) {
	cases := map[RoundType]bool{
		RoundAutomatic:     true,
		RoundManualNormal:  true,
		RoundManualSpecial: false,
		RoundUnidentified:  false,
	}
	for rt, want := range cases {
		if got := rt.CountsTowardStandings(); got != want {
			t.Errorf("%v.CountsTowardStandings() = %v, want %v", rt, got, want)
		}
	}
}
