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

// Package preset stores named session shapes so that regulars don't
// have to retype their club's configuration every week.
package preset

import (
	"os"

	"gopkg.in/yaml.v3"

	courtcall "github.com/opencourt/courtcall/pkg/common"
	"github.com/opencourt/courtcall/pkg/data"
)

// Preset is one reusable session shape. Courts keeps the user's textual
// form ("1-3,5") and is parsed at generation time.
type Preset struct {
	Mode    string `yaml:"mode"`
	Players int    `yaml:"players"`
	Courts  string `yaml:"courts"`
	Games   int    `yaml:"games"`

	Description string `yaml:"description,omitempty"`
}

type List map[string]Preset

// saved holds the user's presets, loaded once from the presets file.
var saved List

func init() {
	// Seed an empty presets file so users can also edit it by hand.
	courtcall.TryCreate(courtcall.PresetsFile, []byte("# courtcall session presets\n"))

	file, _ := os.ReadFile(courtcall.PresetsFile)
	_ = yaml.Unmarshal(file, &saved)
	if saved == nil {
		saved = make(List)
	}
}

// All returns the built-in presets overlaid with the user's saved ones.
// A user preset shadows a built-in of the same name.
func All() List {
	return merge(builtins(), saved)
}

// Get looks a preset up by name.
func Get(name string) (Preset, bool) {
	p, found := All()[name]
	return p, found
}

// Save adds or replaces a user preset and persists the list.
func Save(name string, p Preset) error {
	saved[name] = p
	return saved.dump()
}

func (list List) dump() error {
	file, err := yaml.Marshal(list)
	if err != nil {
		return err
	}
	return os.WriteFile(courtcall.PresetsFile, file, courtcall.FilePermissions)
}

func builtins() List {
	list := make(List, len(data.Presets))
	for name, info := range data.Presets {
		list[name] = Preset{
			Mode:        info.Mode,
			Players:     info.Players,
			Courts:      info.Courts,
			Games:       info.Games,
			Description: info.Description,
		}
	}
	return list
}

func merge(base, overlay List) List {
	merged := make(List, len(base)+len(overlay))
	for name, p := range base {
		merged[name] = p
	}
	for name, p := range overlay {
		merged[name] = p
	}
	return merged
}
