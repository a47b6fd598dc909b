// Copyright © 2025 The Courtcall Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package session generates fair court rotations for a club session.
//
// Given a fixed set of numbered participants, a list of court labels and a
// number of games, it assigns every participant to a court group or a bye
// each round, balancing byes across the session and minimizing how often
// the same two participants end up grouped together.
package session

import (
	"errors"
	"math/rand"
	"time"
)

// Mode selects how participants are grouped on a court.
type Mode string

const (
	// Couples puts two participants on each court as one fixed matchup.
	Couples Mode = "couples"

	// RoundRobin puts four participants on each court, split into two
	// fixed partner pairs.
	RoundRobin Mode = "round-robin"
)

// GroupSize returns the number of participants that occupy one court.
func (m Mode) GroupSize() int {
	if m == RoundRobin {
		return 4
	}
	return 2
}

// Valid reports whether m is a known scheduling mode.
func (m Mode) Valid() bool {
	return m == Couples || m == RoundRobin
}

// searchAttempts bounds the randomized grouping search per round. The
// round-robin search space is larger, so it gets a bigger budget.
func (m Mode) searchAttempts() int {
	if m == RoundRobin {
		return 1000
	}
	return 400
}

// Config describes one generation request. It is immutable for the
// duration of a Run.
type Config struct {
	Mode         Mode  `yaml:"mode"`
	Participants int   `yaml:"participants"`
	Courts       []int `yaml:"courts,flow"`
	Games        int   `yaml:"games"`
}

var (
	ErrUnknownMode    = errors.New("session: unknown scheduling mode")
	ErrNoParticipants = errors.New("session: number of participants is missing or not positive")
	ErrNoCourts       = errors.New("session: the list of courts is missing or empty")
	ErrNoGames        = errors.New("session: number of games is missing or not positive")
)

func (config Config) validate() error {
	switch {
	case !config.Mode.Valid():
		return ErrUnknownMode
	case config.Participants <= 0:
		return ErrNoParticipants
	case len(config.Courts) == 0:
		return ErrNoCourts
	case config.Games <= 0:
		return ErrNoGames
	}

	return nil
}

// Generator produces the rounds for a single session. Each Run owns a
// fresh pairing-history ledger, so a Generator may be reused but two
// concurrent Runs of the same Generator are not safe.
type Generator struct {
	config Config
	rng    *rand.Rand
	ledger *ledger
}

// NewGenerator validates config and returns a Generator seeded from the
// current time.
func NewGenerator(config Config) (*Generator, error) {
	return NewSeededGenerator(config, time.Now().UnixNano())
}

// NewSeededGenerator is NewGenerator with a fixed random seed, for
// reproducible schedules.
func NewSeededGenerator(config Config, seed int64) (*Generator, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate produces the full schedule for config. It is shorthand for
// NewGenerator followed by Run.
func Generate(config Config) ([]Round, error) {
	generator, err := NewGenerator(config)
	if err != nil {
		return nil, err
	}

	return generator.Run(), nil
}

// Run plays out every requested round, updating the ledger after each
// one. The returned rounds satisfy the partition invariant: per round,
// the byes and the court groups are disjoint and together cover all
// participants exactly once.
func (g *Generator) Run() []Round {
	g.ledger = newLedger()

	rounds := make([]Round, 0, g.config.Games)
	var previousByes []int
	for number := 1; number <= g.config.Games; number++ {
		round := g.playRound(number, previousByes)
		previousByes = round.Byes
		rounds = append(rounds, round)
	}

	return rounds
}

// playRound builds a single round: decide who sits out, group the rest
// onto courts, and record the resulting pairings in the ledger.
func (g *Generator) playRound(number int, previousByes []int) Round {
	size := g.config.Mode.GroupSize()

	usable := g.config.Participants / size
	if usable > len(g.config.Courts) {
		usable = len(g.config.Courts)
	}
	byesNeeded := g.config.Participants - usable*size

	pool := make([]int, g.config.Participants)
	for i := range pool {
		pool[i] = i + 1
	}

	byes, remaining := g.selectByes(pool, byesNeeded, previousByes)
	groups := g.formGroups(remaining, usable)

	round := Round{
		Number: number,
		Courts: make([]CourtAssignment, 0, len(groups)),
		Byes:   byes,
	}
	for i, group := range groups {
		round.Courts = append(round.Courts, CourtAssignment{
			Court:   g.config.Courts[i],
			Players: group,
		})

		// The grouping is final now: remember its pairings so later
		// rounds steer away from them.
		g.ledger.recordPair(group[0], group[1])
		if g.config.Mode == RoundRobin {
			g.ledger.recordPair(group[2], group[3])
		}
	}

	return round
}
