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

package data

import "github.com/MakeNowJust/heredoc/v2"

type PresetInfo struct {
	Mode    string
	Players int
	Courts  string
	Games   int

	Description string
}

// Presets are the session shapes courtcall knows out of the box. User
// presets saved on top of these take precedence.
var Presets = map[string]PresetInfo{
	"club-night": {
		Mode:    "couples",
		Players: 12,
		Courts:  "1-3",
		Games:   6,
		Description: heredoc.Doc(`
			A typical weeknight club session: twelve players rotating
			over three courts, six games, everybody sits out evenly.
		`),
	},

	"mixer": {
		Mode:    "round-robin",
		Players: 16,
		Courts:  "1-4",
		Games:   5,
		Description: heredoc.Doc(`
			Sixteen players in fixed-team round-robin on four courts.
			Partners are reshuffled every game so nobody teams up with
			the same person twice until they have to.
		`),
	},

	"small-hall": {
		Mode:    "couples",
		Players: 6,
		Courts:  "1,2",
		Games:   8,
		Description: "Six players sharing two courts, one bye pair per game.",
	},
}
