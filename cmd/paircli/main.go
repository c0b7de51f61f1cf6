// Command paircli demonstrates the pairing core end to end: it builds a
// small in-memory tournament, runs the result keeper, and generates the
// next round's pairings for a chosen format.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/cliffdoyle/othello-tournament/internal/config"
	"github.com/cliffdoyle/othello-tournament/internal/domain"
	"github.com/cliffdoyle/othello-tournament/internal/pairing"
	"github.com/cliffdoyle/othello-tournament/internal/results"
)

func main() {
	format := flag.String("format", "swiss", "pairing format: swiss or round_robin")
	roundID := flag.Int("round", 1, "round id to generate pairings for")
	configOverride := flag.String("config", "", "optional YAML config override path")
	flag.Parse()

	correlationID := uuid.New()
	log.Printf("[paircli] run=%s starting, format=%s round=%d", correlationID, *format, *roundID)

	cfg, err := config.Load(*configOverride)
	if err != nil {
		log.Fatalf("[paircli] run=%s config load failed: %v", correlationID, err)
	}

	players := samplePlayers()
	matches := sampleMatchHistory()

	keeper := results.NewKeeper(matches, cfg.BrightwellConstant)

	pairingFormat := pairing.FormatSwiss
	if *format == "round_robin" {
		pairingFormat = pairing.FormatRoundRobin
	}

	randSource := pairing.RandSource(func(lo, hi int) int {
		if lo >= hi {
			return lo
		}
		return lo + rand.IntN(hi-lo+1)
	})

	generator, err := pairing.New(pairingFormat, players, keeper, randSource, cfg.SwissBitmaskCap)
	if err != nil {
		log.Fatalf("[paircli] run=%s dispatch failed: %v", correlationID, err)
	}

	ctx := context.Background()
	newMatches, genErr := generator.GeneratePairings(ctx, *roundID)
	outcome := pairing.NewOutcome(pairingFormat, *roundID, len(players), newMatches, genErr)

	if outcome.Err != nil {
		log.Printf("[paircli] run=%s pairing failed: format=%s round=%d err=%v", correlationID, outcome.Format, outcome.RoundID, outcome.Err)
		return
	}

	log.Printf("[paircli] run=%s generated %d matches for round %d", correlationID, outcome.MatchCount, outcome.RoundID)
	for _, m := range newMatches {
		black, white, hasWhite := m.GetPlayersID()
		if !hasWhite {
			log.Printf("[paircli]   bye: player=%d", black)
			continue
		}
		log.Printf("[paircli]   match: black=%d white=%d", black, white)
	}
}

func samplePlayers() []domain.Player {
	return []domain.Player{
		{ID: 1, FirstName: "Alice", Rating: 1500},
		{ID: 2, FirstName: "Bob", Rating: 2000},
		{ID: 3, FirstName: "Carol", Rating: 1000},
		{ID: 4, FirstName: "Dan", Rating: 200},
		{ID: 5, FirstName: "Eve", Rating: 3000},
		{ID: 6, FirstName: "Frank", Rating: 1700},
	}
}

func sampleMatchHistory() []domain.Match {
	return []domain.Match{
		domain.NewFinishedMatch(0, 5, 1, 20, 44, nil),
		domain.NewFinishedMatch(0, 3, 2, 32, 32, nil),
		domain.NewFinishedMatch(0, 6, 4, 19, 45, nil),
	}
}
