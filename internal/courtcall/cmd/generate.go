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
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opencourt/courtcall/pkg/board"
	"github.com/opencourt/courtcall/internal/util"
	"github.com/opencourt/courtcall/pkg/preset"
	"github.com/opencourt/courtcall/pkg/schedulefile"
	"github.com/opencourt/courtcall/pkg/session"
)

const spinnerStyle = 31

// courtcall generate
func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fair court rotation for one session",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`generate builds the full schedule for a club session: who
			plays on which court each game, and who sits out.

			Byes are spread evenly across the session, and the same two
			players are only grouped together again when the history
			leaves no better option.

			The courts may be given as a plain count ("3" plays on
			courts 1 to 3) or as a list of labels with ranges, like
			"1-3,5,6". In couples mode two players share a court; in
			round-robin mode four do, split into two fixed partner
			pairs.

			Start from a saved shape with --preset; any flag given
			explicitly overrides the preset's value.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := sessionConfig(cmd)
			if err != nil {
				return err
			}

			seed, _ := cmd.Flags().GetInt64("seed")
			generator, err := newGenerator(config, cmd.Flag("seed").Changed, seed)
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[spinnerStyle], 100*time.Millisecond)
			s.Suffix = " Balancing courts..."
			s.Start()
			rounds := generator.Run()
			s.Stop()

			fmt.Print(board.Render(rounds, config.Mode))

			if out, _ := cmd.Flags().GetString("out"); out != "" {
				file := schedulefile.New(config, rounds)
				if err := file.Write(out); err != nil {
					return err
				}
				logrus.Infof("Saved schedule \x1b[32m%s\x1b[0m to %s", file.ID, out)
			}

			return nil
		},
	}

	cmd.Flags().StringP("mode", "m", string(session.Couples), "Scheduling mode: couples or round-robin")
	cmd.Flags().IntP("players", "p", 0, "Number of participants")
	cmd.Flags().StringP("courts", "c", "", "Courts to play on, e.g. \"3\" or \"1-3,5\"")
	cmd.Flags().IntP("games", "g", 0, "Number of games to schedule")
	cmd.Flags().Int64("seed", 0, "Fixed random seed for reproducible schedules")
	cmd.Flags().StringP("out", "o", "", "Write the schedule to this YAML file")
	cmd.Flags().String("preset", "", "Start from a saved session preset")

	return cmd
}

func newGenerator(config session.Config, seeded bool, seed int64) (*session.Generator, error) {
	if seeded {
		return session.NewSeededGenerator(config, seed)
	}
	return session.NewGenerator(config)
}

// sessionConfig folds the preset (if any) and the flags into one
// generation request. Explicitly set flags win over preset values.
func sessionConfig(cmd *cobra.Command) (session.Config, error) {
	var config session.Config
	courts, _ := cmd.Flags().GetString("courts")

	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		p, found := preset.Get(name)
		if !found {
			return config, fmt.Errorf("unknown preset %q", name)
		}

		config.Mode = session.Mode(p.Mode)
		config.Participants = p.Players
		config.Games = p.Games
		if courts == "" {
			courts = p.Courts
		}
	}

	if cmd.Flag("mode").Changed || config.Mode == "" {
		mode, _ := cmd.Flags().GetString("mode")
		config.Mode = session.Mode(mode)
	}
	if cmd.Flag("players").Changed || config.Participants == 0 {
		config.Participants, _ = cmd.Flags().GetInt("players")
	}
	if cmd.Flag("games").Changed || config.Games == 0 {
		config.Games, _ = cmd.Flags().GetInt("games")
	}

	if courts != "" {
		parsed, err := util.ParseCourts(courts)
		if err != nil {
			return config, err
		}
		config.Courts = parsed
	}

	return config, nil
}
