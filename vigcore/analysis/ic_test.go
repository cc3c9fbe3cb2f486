/*
   Copyright 2026 The Cifra Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package analysis

import (
	"math"
	"testing"
)

func TestIndexOfCoincidence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"empty string", "", 0},
		{"single letter", "A", 0},
		{"two equal letters", "AA", 1},
		{"two distinct letters", "AB", 0},
		{"repeated single letter", "AAAAAA", 1},
		// 3*2 + 3*2 = 12 pairs out of 6*5 = 30
		{"two letter groups", "AAABBB", 0.4},
		{"uniform alphabet", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", 0},
		{"case insensitive", "aaabbb", 0.4},
		{"non-letters ignored", "AA AB!BB?", 0.4},
		{"only non-letters", "123 !?", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexOfCoincidence(tt.input)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("IndexOfCoincidence(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want []string
	}{
		{"single column", "ABCDEF", 1, []string{"ABCDEF"}},
		{"two columns", "ABCDEF", 2, []string{"ACE", "BDF"}},
		{"three columns", "ABCDEF", 3, []string{"AD", "BE", "CF"}},
		{"uneven split", "ABCDE", 2, []string{"ACE", "BD"}},
		{"more columns than letters", "AB", 4, []string{"A", "B", "", ""}},
		{"empty text", "", 3, []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := columns(tt.text, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("columns() returned %d columns, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("columns()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAverageIC(t *testing.T) {
	// "ABABABAB" at length 2 gives columns "AAAA" and "BBBB", each IC 1.
	if got := averageIC("ABABABAB", 2); got != 1 {
		t.Errorf("averageIC(length 2) = %v, want 1", got)
	}

	// At length 1 the single column scores 24 same-letter pairs out of 56.
	want := 24.0 / 56.0
	if got := averageIC("ABABABAB", 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("averageIC(length 1) = %v, want %v", got, want)
	}

	// Empty columns score 0 and drag the average down.
	if got := averageIC("AA", 4); got != 0 {
		t.Errorf("averageIC(length beyond text) = %v, want 0", got)
	}
}
