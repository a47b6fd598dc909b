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

package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var rangeRegexp = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)

// ParseCourts turns a court description into an ordered list of distinct
// court numbers. A bare number like "6" means the courts 1 through 6;
// anything else is a comma-separated mix of numbers and ranges, e.g.
// "1-3,5,7". Duplicates are dropped, first occurrence wins the order.
func ParseCourts(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty court list")
	}

	// A lone number is a count, not a label.
	if n, err := strconv.Atoi(input); err == nil {
		if n <= 0 {
			return nil, fmt.Errorf("court count must be positive, got %d", n)
		}
		courts := make([]int, n)
		for i := range courts {
			courts[i] = i + 1
		}
		return courts, nil
	}

	var courts []int
	seen := make(map[int]bool)
	add := func(court int) {
		if !seen[court] {
			seen[court] = true
			courts = append(courts, court)
		}
	}

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if match := rangeRegexp.FindStringSubmatch(part); match != nil {
			from, _ := strconv.Atoi(match[1])
			to, _ := strconv.Atoi(match[2])
			if from <= 0 || to < from {
				return nil, fmt.Errorf("invalid court range %q", part)
			}
			for court := from; court <= to; court++ {
				add(court)
			}
			continue
		}

		court, err := strconv.Atoi(part)
		if err != nil || court <= 0 {
			return nil, fmt.Errorf("invalid court number %q", part)
		}
		add(court)
	}

	if len(courts) == 0 {
		return nil, fmt.Errorf("empty court list")
	}

	return courts, nil
}
