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

package board

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/opencourt/courtcall/pkg/session"
)

func TestRender(t *testing.T) {
	color.NoColor = true

	rounds := []session.Round{
		{
			Number: 1,
			Courts: []session.CourtAssignment{
				{Court: 5, Players: []int{1, 3}},
				{Court: 2, Players: []int{2, 4}},
			},
			Byes: []int{5, 6},
		},
		{
			Number: 2,
			Courts: []session.CourtAssignment{
				{Court: 5, Players: []int{5, 6}},
				{Court: 2, Players: []int{1, 4}},
			},
			Byes: []int{2, 3},
		},
	}

	out := Render(rounds, session.Couples)

	for _, want := range []string{
		"Game 1", "Game 2",
		"Court 5", "Court 2",
		"1  vs  3", "Sitting out: 5, 6",
		"Byes per player: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered board is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRoundRobinPairs(t *testing.T) {
	color.NoColor = true

	rounds := []session.Round{{
		Number: 1,
		Courts: []session.CourtAssignment{{Court: 1, Players: []int{7, 2, 4, 9}}},
	}}

	out := Render(rounds, session.RoundRobin)
	if !strings.Contains(out, "7 & 2  vs  4 & 9") {
		t.Errorf("partner pairs not rendered:\n%s", out)
	}
	if !strings.Contains(out, "no repeated pairings") {
		t.Errorf("summary missing:\n%s", out)
	}
}

func TestSummaryRepeats(t *testing.T) {
	color.NoColor = true

	got := Summary(session.Stats{MinByes: 1, MaxByes: 2, RepeatPairs: 3})
	if !strings.Contains(got, "1 to 2") || !strings.Contains(got, "3 repeated") {
		t.Errorf("Summary = %q", got)
	}
}
