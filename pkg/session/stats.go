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

package session

// Stats summarizes how fair a finished schedule turned out.
type Stats struct {
	// MinByes and MaxByes are taken over the participants that sat out
	// at least once; both are zero for a schedule without byes.
	MinByes int
	MaxByes int

	// RepeatPairs counts the excess occurrences of repeated pairings:
	// a pair grouped n > 1 times contributes n-1.
	RepeatPairs int
}

// Analyze derives session statistics from a finished list of rounds.
// It is a pure read-only pass: it builds its own counters and never
// touches a generator's ledger.
func Analyze(rounds []Round, mode Mode) Stats {
	byes := make(map[int]int)
	pairs := make(map[pairKey]int)

	for _, round := range rounds {
		for _, participant := range round.Byes {
			byes[participant]++
		}
		for _, court := range round.Courts {
			pairs[pairOf(court.Players[0], court.Players[1])]++
			if mode == RoundRobin {
				pairs[pairOf(court.Players[2], court.Players[3])]++
			}
		}
	}

	var stats Stats
	first := true
	for _, count := range byes {
		if first || count < stats.MinByes {
			stats.MinByes = count
		}
		if first || count > stats.MaxByes {
			stats.MaxByes = count
		}
		first = false
	}

	for _, count := range pairs {
		if count > 1 {
			stats.RepeatPairs += count - 1
		}
	}

	return stats
}
