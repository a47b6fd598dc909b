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

// Package schedulefile reads and writes generated schedules as YAML, so
// a session organizer can print them, share them, or pull the fairness
// numbers back up later with `courtcall stats`.
package schedulefile

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	courtcall "github.com/opencourt/courtcall/pkg/common"
	"github.com/opencourt/courtcall/pkg/session"
)

// File is the on-disk form of one generated session.
type File struct {
	ID      string    `yaml:"id"`
	Created time.Time `yaml:"created"`

	Session session.Config  `yaml:"session"`
	Rounds  []session.Round `yaml:"rounds"`
}

// New wraps a generated schedule with a fresh session id.
func New(config session.Config, rounds []session.Round) *File {
	return &File{
		ID:      uuid.NewString(),
		Created: time.Now(),
		Session: config,
		Rounds:  rounds,
	}
}

// Write stores the schedule at path.
func (f *File) Write(path string) error {
	out, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	return os.WriteFile(path, out, courtcall.FilePermissions)
}

// Read loads a schedule previously written by Write.
func Read(path string) (*File, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(in, &f); err != nil {
		return nil, fmt.Errorf("parse schedule %s: %w", path, err)
	}
	if len(f.Rounds) == 0 {
		return nil, fmt.Errorf("schedule %s contains no rounds", path)
	}
	if !f.Session.Mode.Valid() {
		return nil, fmt.Errorf("parse schedule %s: unknown mode %q", path, f.Session.Mode)
	}

	// Hand-edited or truncated files must not reach Analyze, which
	// trusts every court group to have the mode's size.
	size := f.Session.Mode.GroupSize()
	for _, round := range f.Rounds {
		for _, court := range round.Courts {
			if len(court.Players) != size {
				return nil, fmt.Errorf(
					"parse schedule %s: round %d court %d has %d players, want %d",
					path, round.Number, court.Court, len(court.Players), size)
			}
		}
	}

	return &f, nil
}
