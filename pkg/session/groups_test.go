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

import (
	"math/rand"
	"testing"
)

func testGenerator(t *testing.T, mode Mode, seed int64) *Generator {
	t.Helper()
	return &Generator{
		config: Config{Mode: mode, Participants: 8, Courts: []int{1, 2}, Games: 1},
		rng:    rand.New(rand.NewSource(seed)),
		ledger: newLedger(),
	}
}

func TestBestPartnerSplit(t *testing.T) {
	cases := []struct {
		name  string
		pairs []pairKey // history to prime, one occurrence each
		want  [4]int
	}{
		{
			name: "fresh history keeps input order",
			want: [4]int{1, 2, 3, 4},
		},
		{
			name:  "avoids the one repeated partnership",
			pairs: []pairKey{{1, 2}},
			want:  [4]int{1, 3, 2, 4},
		},
		{
			name:  "two tainted splits leave only one",
			pairs: []pairKey{{1, 2}, {1, 3}},
			want:  [4]int{1, 4, 2, 3},
		},
		{
			name: "all tainted, least-played split wins",
			// {1,2} twice, the others once: candidates score 30, 20, 20;
			// first of the tied candidates is (1,3)+(2,4).
			pairs: []pairKey{{1, 2}, {1, 2}, {3, 4}, {1, 3}, {2, 4}, {1, 4}, {2, 3}},
			want:  [4]int{1, 3, 2, 4},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := testGenerator(t, RoundRobin, 1)
			for _, pair := range c.pairs {
				g.ledger.recordPair(pair.a, pair.b)
			}

			got := g.bestPartnerSplit([]int{1, 2, 3, 4})
			for i, p := range c.want {
				if got[i] != p {
					t.Fatalf("bestPartnerSplit = %v, want %v", got, c.want)
				}
			}
		})
	}
}

func TestFormGroupsAvoidsKnownPairs(t *testing.T) {
	// With 4 participants on 2 couples courts only three grouping
	// shapes exist. Poison two of them; the search must find the third.
	g := testGenerator(t, Couples, 42)
	g.ledger.recordPair(1, 2) // implies (3,4)
	g.ledger.recordPair(1, 3) // implies (2,4)

	groups := g.formGroups([]int{1, 2, 3, 4}, 2)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	for _, group := range groups {
		if key := pairOf(group[0], group[1]); key != pairOf(1, 4) && key != pairOf(2, 3) {
			t.Errorf("grouping %v repeats a known pair", groups)
		}
	}
}

func TestFormGroupsTerminatesOnHostileHistory(t *testing.T) {
	// Every possible pair has history, so no zero-score attempt exists
	// and the search has to exhaust its budget.
	g := testGenerator(t, RoundRobin, 9)
	for a := 1; a <= 8; a++ {
		for b := a + 1; b <= 8; b++ {
			g.ledger.recordPair(a, b)
		}
	}

	groups := g.formGroups([]int{1, 2, 3, 4, 5, 6, 7, 8}, 2)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	for _, group := range groups {
		if len(group) != 4 {
			t.Fatalf("group %v has size %d, want 4", group, len(group))
		}
	}
}

func TestFormGroupsNoCourts(t *testing.T) {
	g := testGenerator(t, Couples, 1)
	if groups := g.formGroups([]int{1, 2}, 0); groups != nil {
		t.Errorf("formGroups with no courts = %v, want nil", groups)
	}
}
