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

// Package board renders generated schedules for the terminal.
package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/opencourt/courtcall/pkg/session"
)

const innerWidth = 42

// Render returns the printable board for a whole session, one box per
// round, followed by a fairness summary line.
func Render(rounds []session.Round, mode session.Mode) string {
	var b strings.Builder

	for _, round := range rounds {
		renderRound(&b, round, mode)
	}

	stats := session.Analyze(rounds, mode)
	b.WriteString(Summary(stats))
	b.WriteByte('\n')

	return b.String()
}

func renderRound(b *strings.Builder, round session.Round, mode session.Mode) {
	rule := strings.Repeat("═", innerWidth+2)

	fmt.Fprintf(b, "╔%s╗\n", rule)
	writeLine(b, color.YellowString("%-*s", innerWidth, fmt.Sprintf("Game %d", round.Number)))
	fmt.Fprintf(b, "╠%s╣\n", rule)

	for _, court := range round.Courts {
		writeLine(b, fmt.Sprintf("Court %-3d  %-*s",
			court.Court, innerWidth-11, matchup(court.Players, mode)))
	}
	if len(round.Byes) > 0 {
		writeLine(b, color.CyanString("%-*s", innerWidth,
			fmt.Sprintf("Sitting out: %s", joinPlayers(round.Byes, ", "))))
	}

	fmt.Fprintf(b, "╚%s╝\n", rule)
}

func writeLine(b *strings.Builder, content string) {
	fmt.Fprintf(b, "║ %s ║\n", content)
}

// matchup formats one court's group. In round-robin mode positions
// {0,1} and {2,3} are the two partner pairs.
func matchup(players []int, mode session.Mode) string {
	if mode == session.RoundRobin && len(players) == 4 {
		return fmt.Sprintf("%d & %d  vs  %d & %d",
			players[0], players[1], players[2], players[3])
	}
	return fmt.Sprintf("%d  vs  %d", players[0], players[1])
}

// Summary renders the session's fairness numbers on one line.
func Summary(stats session.Stats) string {
	byes := fmt.Sprintf("%d", stats.MaxByes)
	if stats.MinByes != stats.MaxByes {
		byes = fmt.Sprintf("%d to %d", stats.MinByes, stats.MaxByes)
	}

	repeats := color.GreenString("no repeated pairings")
	if stats.RepeatPairs > 0 {
		repeats = color.RedString("%d repeated pairing(s)", stats.RepeatPairs)
	}

	return fmt.Sprintf("Byes per player: %s, %s.", byes, repeats)
}

func joinPlayers(players []int, sep string) string {
	parts := make([]string, len(players))
	for i, p := range players {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, sep)
}
