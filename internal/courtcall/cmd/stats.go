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

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/opencourt/courtcall/pkg/board"
	"github.com/opencourt/courtcall/pkg/schedulefile"
	"github.com/opencourt/courtcall/pkg/session"
)

// courtcall stats
func Stats() *cobra.Command {
	return &cobra.Command{
		Use:   "stats schedule-file",
		Short: "Show the fairness numbers of a saved schedule",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`stats reloads a schedule written by generate --out and
			re-derives its session statistics: the bye spread across
			players and the number of repeated pairings.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := schedulefile.Read(args[0])
			if err != nil {
				return err
			}

			stats := session.Analyze(file.Rounds, file.Session.Mode)

			fmt.Printf("Session \x1b[32m%s\x1b[0m (%s, %d players, %d games)\n",
				file.ID, file.Session.Mode,
				file.Session.Participants, file.Session.Games)
			fmt.Println(board.Summary(stats))

			return nil
		},
	}
}
