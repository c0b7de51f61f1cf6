package domain

import "encoding/json"

// PlayerColor is the disc color a player holds in a Normal or Unfinished
// match.
type PlayerColor int

const (
	ColorNone PlayerColor = iota
	Black
	White
)

func (c PlayerColor) String() string {
	switch c {
	case Black:
		return "BLACK"
	case White:
		return "WHITE"
	default:
		return "NONE"
	}
}

// Variant distinguishes the three shapes a Match row can take.
type Variant int

const (
	VariantNormal Variant = iota
	VariantUnfinished
	VariantBye
)

// Sentinel score and player id values, carried forward for persistence
// compatibility with existing stored rows. Callers decode a row into a
// Match at ingestion and must never compare against these afterward —
// every query below dispatches on Variant instead.
const (
	UnfinishedScore  = -1
	ByeScore         = -2
	NoPlayerSentinel = -1
)

// BrightwellConstant is the WOF-specified weight scaling opponent major
// score into a player's minor (Brightwell) score.
const BrightwellConstant = 6.0

// Match is a tagged value describing one match between two players, or a
// bye. It carries no mutable state and no subtype polymorphism: every
// query method below dispatches on Variant.
type Match struct {
	RoundID        int
	BlackPlayerID  int
	WhitePlayerID  int
	BlackScore     int
	WhiteScore     int
	Meta           json.RawMessage
	Variant        Variant
}

// NewMatchFromRow reconstructs a Match from persisted row data, picking the
// variant from the score sentinels exactly as stored.
func NewMatchFromRow(roundID, blackPlayerID, whitePlayerID, blackScore, whiteScore int, meta json.RawMessage) Match {
	switch {
	case blackScore == ByeScore && whiteScore == ByeScore:
		return Match{
			RoundID:       roundID,
			BlackPlayerID: blackPlayerID,
			WhitePlayerID: NoPlayerSentinel,
			BlackScore:    ByeScore,
			WhiteScore:    ByeScore,
			Meta:          meta,
			Variant:       VariantBye,
		}
	case blackScore == UnfinishedScore && whiteScore == UnfinishedScore:
		return Match{
			RoundID:       roundID,
			BlackPlayerID: blackPlayerID,
			WhitePlayerID: whitePlayerID,
			BlackScore:    UnfinishedScore,
			WhiteScore:    UnfinishedScore,
			Meta:          meta,
			Variant:       VariantUnfinished,
		}
	default:
		return Match{
			RoundID:       roundID,
			BlackPlayerID: blackPlayerID,
			WhitePlayerID: whitePlayerID,
			BlackScore:    blackScore,
			WhiteScore:    whiteScore,
			Meta:          meta,
			Variant:       VariantNormal,
		}
	}
}

// NewUnfinishedMatch constructs a freshly scheduled, not-yet-played match.
func NewUnfinishedMatch(roundID, blackPlayerID, whitePlayerID int, meta json.RawMessage) Match {
	return Match{
		RoundID:       roundID,
		BlackPlayerID: blackPlayerID,
		WhitePlayerID: whitePlayerID,
		BlackScore:    UnfinishedScore,
		WhiteScore:    UnfinishedScore,
		Meta:          meta,
		Variant:       VariantUnfinished,
	}
}

// NewByeMatch constructs a bye slot for a single player.
func NewByeMatch(roundID, playerID int, meta json.RawMessage) Match {
	return Match{
		RoundID:       roundID,
		BlackPlayerID: playerID,
		WhitePlayerID: NoPlayerSentinel,
		BlackScore:    ByeScore,
		WhiteScore:    ByeScore,
		Meta:          meta,
		Variant:       VariantBye,
	}
}

// NewFinishedMatch constructs a completed Normal match.
func NewFinishedMatch(roundID, blackPlayerID, whitePlayerID, blackScore, whiteScore int, meta json.RawMessage) Match {
	return Match{
		RoundID:       roundID,
		BlackPlayerID: blackPlayerID,
		WhitePlayerID: whitePlayerID,
		BlackScore:    blackScore,
		WhiteScore:    whiteScore,
		Meta:          meta,
		Variant:       VariantNormal,
	}
}

// IsPlayerPlaying reports whether pid is a participant of this match. A Bye
// match names only its single recipient.
func (m Match) IsPlayerPlaying(pid int) bool {
	if m.Variant == VariantBye {
		return pid == m.BlackPlayerID
	}
	return pid == m.BlackPlayerID || pid == m.WhitePlayerID
}

// GetPlayerColor returns the color pid held in this match, or ColorNone for
// Byes and non-participants.
func (m Match) GetPlayerColor(pid int) PlayerColor {
	if m.Variant == VariantBye || !m.IsPlayerPlaying(pid) {
		return ColorNone
	}
	if pid == m.BlackPlayerID {
		return Black
	}
	return White
}

// GetOpponentID returns the opponent of pid, or (0, false) for Byes and
// non-participants.
func (m Match) GetOpponentID(pid int) (int, bool) {
	if m.Variant == VariantBye || !m.IsPlayerPlaying(pid) {
		return 0, false
	}
	if pid == m.BlackPlayerID {
		return m.WhitePlayerID, true
	}
	return m.BlackPlayerID, true
}

// GetPlayersID returns both participant ids. Normal/Unfinished return both;
// Bye returns (playerID, 0, false).
func (m Match) GetPlayersID() (blackOrBye int, white int, hasWhite bool) {
	if m.Variant == VariantBye {
		return m.BlackPlayerID, 0, false
	}
	return m.BlackPlayerID, m.WhitePlayerID, true
}

// MajorContribution is the WOF major-score contribution of this match to
// pid: 1.0 for a win or Bye credit, 0.5 for a draw, 0.0 otherwise.
func (m Match) MajorContribution(pid int) float64 {
	switch m.Variant {
	case VariantBye:
		if pid == m.BlackPlayerID {
			return 1.0
		}
		return 0.0
	case VariantUnfinished:
		return 0.0
	default: // VariantNormal
		if !m.IsPlayerPlaying(pid) {
			return 0.0
		}
		if m.BlackScore == m.WhiteScore {
			return 0.5
		}
		if pid == m.BlackPlayerID && m.BlackScore > m.WhiteScore {
			return 1.0
		}
		if pid == m.WhitePlayerID && m.WhiteScore > m.BlackScore {
			return 1.0
		}
		return 0.0
	}
}

// MinorContribution is the Brightwell secondary-score contribution of this
// match to pid, per spec.md §4.1. majorByPID supplies each player's total
// major score (used as the opponent-strength proxy).
func (m Match) MinorContribution(pid int, majorByPID map[int]float64, brightwellConstant float64) float64 {
	if !m.IsPlayerPlaying(pid) {
		return 0.0
	}
	switch m.Variant {
	case VariantBye, VariantUnfinished:
		return 32.0 + brightwellConstant*majorByPID[pid]
	default: // VariantNormal
		opponentID, _ := m.GetOpponentID(pid)
		discCount := m.BlackScore
		if pid == m.WhitePlayerID {
			discCount = m.WhiteScore
		}
		return float64(discCount) + brightwellConstant*majorByPID[opponentID]
	}
}

// Row is the persisted-table shape of a Match: one encode per variant,
// mirroring the sentinel scheme in spec.md §6.
type Row struct {
	RoundID       int
	BlackPlayerID int
	WhitePlayerID int
	BlackScore    int
	WhiteScore    int
	Meta          json.RawMessage
}

// Encode extracts the persisted row shape from a Match.
func (m Match) Encode() Row {
	return Row{
		RoundID:       m.RoundID,
		BlackPlayerID: m.BlackPlayerID,
		WhitePlayerID: m.WhitePlayerID,
		BlackScore:    m.BlackScore,
		WhiteScore:    m.WhiteScore,
		Meta:          m.Meta,
	}
}
