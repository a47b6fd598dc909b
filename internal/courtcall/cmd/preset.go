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
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencourt/courtcall/pkg/preset"
)

// courtcall preset
func Preset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved session shapes",
	}

	cmd.AddCommand(presetList())
	cmd.AddCommand(presetShow())
	cmd.AddCommand(presetSave())
	return cmd
}

func presetList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available presets",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			presets := preset.All()

			names := make([]string, 0, len(presets))
			for name := range presets {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				p := presets[name]
				label := fmt.Sprintf("\x1b[34m%s\x1b[0m:", name)
				fmt.Printf("- %-20s %s, %d players on %s, %d games\n",
					label, p.Mode, p.Players, p.Courts, p.Games)
			}

			return nil
		},
	}
}

func presetShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show preset-name",
		Short: "Show one preset in full",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			p, found := preset.Get(args[0])
			if !found {
				return fmt.Errorf("unknown preset %q", args[0])
			}

			fmt.Printf("\x1b[34m%s\x1b[0m: %s, %d players on courts %s, %d games\n",
				args[0], p.Mode, p.Players, p.Courts, p.Games)
			if p.Description != "" {
				fmt.Println(strings.TrimSpace(p.Description))
			}

			return nil
		},
	}
}

func presetSave() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save preset-name",
		Short: "Save the given session shape under a name",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")
			players, _ := cmd.Flags().GetInt("players")
			courts, _ := cmd.Flags().GetString("courts")
			games, _ := cmd.Flags().GetInt("games")
			description, _ := cmd.Flags().GetString("description")

			err := preset.Save(args[0], preset.Preset{
				Mode:        mode,
				Players:     players,
				Courts:      courts,
				Games:       games,
				Description: description,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Saved preset \x1b[32m%s\x1b[0m.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringP("mode", "m", "couples", "Scheduling mode: couples or round-robin")
	cmd.Flags().IntP("players", "p", 0, "Number of participants")
	cmd.Flags().StringP("courts", "c", "", "Courts to play on")
	cmd.Flags().IntP("games", "g", 0, "Number of games")
	cmd.Flags().String("description", "", "Free-form note shown by preset show")

	return cmd
}
