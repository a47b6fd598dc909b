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

// formGroups assigns the non-bye participants to courtsToUse groups of
// the mode's group size. It runs a bounded randomized search: shuffle,
// cut into contiguous groups, score the repeat pairings, keep the best
// attempt seen. A zero-score attempt (no repeats at all) stops the
// search immediately; otherwise the budget runs out and the best found
// wins, first found on ties.
//
// This is a heuristic. Against a sufficiently tangled history it may
// miss a repeat-free grouping that exists but was never sampled.
func (g *Generator) formGroups(remaining []int, courtsToUse int) [][]int {
	if courtsToUse == 0 {
		return nil
	}

	size := g.config.Mode.GroupSize()
	needed := courtsToUse * size

	candidates := make([]int, needed)
	copy(candidates, remaining[:needed])

	var best [][]int
	bestScore := -1
	for attempt := 0; attempt < g.config.Mode.searchAttempts(); attempt++ {
		g.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		groups := make([][]int, 0, courtsToUse)
		score := 0
		for at := 0; at < needed; at += size {
			group := make([]int, size)
			copy(group, candidates[at:at+size])

			if g.config.Mode == RoundRobin {
				group = g.bestPartnerSplit(group)
				score += g.ledger.pairScore(group[0], group[1])
				score += g.ledger.pairScore(group[2], group[3])
			} else {
				score += g.ledger.pairScore(group[0], group[1])
			}

			groups = append(groups, group)
		}

		if bestScore < 0 || score < bestScore {
			best, bestScore = groups, score
		}
		if bestScore == 0 {
			break
		}
	}

	return best
}

// bestPartnerSplit reorders a four-participant court group so that the
// least-repeated partnership wins. The two on-court teams are always
// positions {0,1} and {2,3} of the returned group; only which two
// participants become partners is up for grabs, which leaves exactly
// three candidates. Ties go to the earliest candidate.
//
// Who ends up playing against whom is a byproduct and is never scored.
func (g *Generator) bestPartnerSplit(group []int) []int {
	candidates := [3][]int{
		{group[0], group[1], group[2], group[3]},
		{group[0], group[2], group[1], group[3]},
		{group[0], group[3], group[1], group[2]},
	}

	best := candidates[0]
	bestScore := -1
	for _, candidate := range candidates {
		score := g.ledger.pairScore(candidate[0], candidate[1]) +
			g.ledger.pairScore(candidate[2], candidate[3])
		if bestScore < 0 || score < bestScore {
			best, bestScore = candidate, score
		}
	}

	return best
}
