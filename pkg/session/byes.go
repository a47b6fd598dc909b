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

import "sort"

// selectByes picks the participants who sit out this round and returns
// them alongside everyone still in play. Participants with the fewest
// byes so far always sit out first; ties inside a bye-count bucket are
// broken at random. When a bucket has to be split, members of the
// previous round's bye set are moved to the back of that bucket so
// nobody sits out twice in a row while an equally-rested alternative
// exists. That last part is a soft preference only.
//
// Every selected participant's bye count is bumped in the ledger.
func (g *Generator) selectByes(pool []int, byesNeeded int, previousByes []int) (byes, remaining []int) {
	if byesNeeded <= 0 {
		return nil, pool
	}

	buckets := make(map[int][]int)
	for _, participant := range pool {
		count := g.ledger.byes[participant]
		buckets[count] = append(buckets[count], participant)
	}

	counts := make([]int, 0, len(buckets))
	for count := range buckets {
		counts = append(counts, count)
	}
	sort.Ints(counts)

	wasBye := make(map[int]bool, len(previousByes))
	for _, participant := range previousByes {
		wasBye[participant] = true
	}

	byes = make([]int, 0, byesNeeded)
	for _, count := range counts {
		bucket := buckets[count]
		g.rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})

		if len(byes)+len(bucket) > byesNeeded {
			bucket = deprioritize(bucket, wasBye)
		}

		for _, participant := range bucket {
			if len(byes) == byesNeeded {
				break
			}
			byes = append(byes, participant)
		}
		if len(byes) == byesNeeded {
			break
		}
	}

	for _, participant := range byes {
		g.ledger.recordBye(participant)
	}

	chosen := make(map[int]bool, len(byes))
	for _, participant := range byes {
		chosen[participant] = true
	}
	remaining = make([]int, 0, len(pool)-len(byes))
	for _, participant := range pool {
		if !chosen[participant] {
			remaining = append(remaining, participant)
		}
	}

	sort.Ints(byes)
	return byes, remaining
}

// deprioritize reorders a bucket so that last round's byes come last,
// preserving the random order within both halves.
func deprioritize(bucket []int, wasBye map[int]bool) []int {
	reordered := make([]int, 0, len(bucket))
	repeats := make([]int, 0, len(bucket))
	for _, participant := range bucket {
		if wasBye[participant] {
			repeats = append(repeats, participant)
		} else {
			reordered = append(reordered, participant)
		}
	}
	return append(reordered, repeats...)
}
