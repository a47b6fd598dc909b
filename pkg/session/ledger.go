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

// pairKey identifies an unordered pair of participants. Always built
// through pairOf so that {a,b} and {b,a} hit the same counter.
type pairKey struct {
	a, b int
}

func pairOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// ledger holds the running history of one session: how often each
// participant has sat out, and how often each pair has been grouped
// together. It belongs to exactly one Run and is only ever touched by
// the bye selection and the post-round pairing update.
type ledger struct {
	byes  map[int]int
	pairs map[pairKey]int
}

func newLedger() *ledger {
	return &ledger{
		byes:  make(map[int]int),
		pairs: make(map[pairKey]int),
	}
}

func (l *ledger) recordBye(participant int) {
	l.byes[participant]++
}

func (l *ledger) recordPair(a, b int) {
	l.pairs[pairOf(a, b)]++
}

// pairScore weighs how undesirable grouping a with b again would be.
// Fresh pairings score zero.
func (l *ledger) pairScore(a, b int) int {
	return 10 * l.pairs[pairOf(a, b)]
}
