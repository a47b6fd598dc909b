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

import "testing"

func TestSelectByesNoneNeeded(t *testing.T) {
	g := testGenerator(t, Couples, 1)
	pool := []int{1, 2, 3, 4}

	byes, remaining := g.selectByes(pool, 0, nil)
	if len(byes) != 0 {
		t.Errorf("byes = %v, want none", byes)
	}
	if len(remaining) != len(pool) {
		t.Errorf("remaining = %v, want the full pool", remaining)
	}
	if len(g.ledger.byes) != 0 {
		t.Errorf("ledger mutated without any byes: %v", g.ledger.byes)
	}
}

func TestSelectByesPrefersFewestByes(t *testing.T) {
	g := testGenerator(t, Couples, 5)
	// Participants 1 and 2 have already sat out once.
	g.ledger.recordBye(1)
	g.ledger.recordBye(2)

	pool := []int{1, 2, 3, 4, 5, 6}
	byes, remaining := g.selectByes(pool, 2, nil)

	for _, p := range byes {
		if p == 1 || p == 2 {
			t.Errorf("byes = %v: participant %d re-selected ahead of rested ones", byes, p)
		}
	}
	if len(remaining) != 4 {
		t.Errorf("remaining = %v, want 4 participants", remaining)
	}
	for _, p := range byes {
		if g.ledger.byes[p] != 1 {
			t.Errorf("participant %d bye count = %d, want 1", p, g.ledger.byes[p])
		}
	}
}

func TestSelectByesSpillsIntoNextBucket(t *testing.T) {
	g := testGenerator(t, Couples, 5)
	g.ledger.recordBye(3)

	pool := []int{1, 2, 3, 4}
	byes, _ := g.selectByes(pool, 4, nil)
	if len(byes) != 4 {
		t.Fatalf("byes = %v, want all four", byes)
	}
	if g.ledger.byes[3] != 2 {
		t.Errorf("participant 3 bye count = %d, want 2", g.ledger.byes[3])
	}
}

func TestSelectByesAvoidsImmediateRepeat(t *testing.T) {
	g := testGenerator(t, Couples, 5)
	// Everybody equally rested, so the whole pool is one bucket and the
	// previous byes must end up at the back of the split.
	pool := []int{1, 2, 3, 4, 5, 6}

	for trial := 0; trial < 20; trial++ {
		g.ledger = newLedger()
		byes, _ := g.selectByes(pool, 2, []int{5, 6})
		for _, p := range byes {
			if p == 5 || p == 6 {
				t.Fatalf("byes = %v: previous bye %d selected again with alternatives left", byes, p)
			}
		}
	}
}

func TestDeprioritizeKeepsOrder(t *testing.T) {
	wasBye := map[int]bool{2: true, 4: true}
	got := deprioritize([]int{1, 2, 3, 4, 5}, wasBye)
	want := []int{1, 3, 5, 2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("deprioritize = %v, want %v", got, want)
		}
	}
}
