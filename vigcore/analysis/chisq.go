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
	"cifra.dev/vigenere/vigcore/model/alphabet"
	"cifra.dev/vigenere/vigcore/model/language"
)

// letterCounts tallies each letter of a filtered column and its total.
func letterCounts(col string) (counts [alphabet.Size]int, total int) {
	for i := 0; i < len(col); i++ {
		if idx := alphabet.Index(rune(col[i])); idx >= 0 {
			counts[idx]++
			total++
		}
	}
	return counts, total
}

// chiSquared scores one candidate shift for a column against the expected
// letter distribution:
//
//	χ² = Σ (observed − expected)² / expected
//
// where observed is the count of each plaintext letter after undoing the
// shift and expected is the distribution frequency times the column total.
// Letters whose expected frequency is zero are skipped rather than divided
// by. Lower is better; the true shift turns the column back into
// language-shaped text and minimizes the statistic.
func chiSquared(counts [alphabet.Size]int, total int, dist language.Distribution, shift int) float64 {
	score := 0.0
	for p := 0; p < alphabet.Size; p++ {
		expected := dist.Expected(p) * float64(total)
		if expected == 0 {
			continue
		}
		observed := float64(counts[(p+shift)%alphabet.Size])
		diff := observed - expected
		score += diff * diff / expected
	}
	return score
}

// scoreColumn runs the full 26-shift search for one key position. The
// winner is the first strict minimum in ascending shift order, so ties
// resolve to the smaller shift deterministically. Empty columns score 0 at
// every shift and resolve to shift 0.
func scoreColumn(position int, col string, dist language.Distribution) ColumnMetric {
	counts, total := letterCounts(col)

	metric := ColumnMetric{Position: position}
	for shift := 0; shift < alphabet.Size; shift++ {
		metric.Scores[shift] = chiSquared(counts, total, dist, shift)
	}

	metric.BestShift = 0
	metric.BestScore = metric.Scores[0]
	for shift := 1; shift < alphabet.Size; shift++ {
		if metric.Scores[shift] < metric.BestScore {
			metric.BestShift = shift
			metric.BestScore = metric.Scores[shift]
		}
	}
	return metric
}
