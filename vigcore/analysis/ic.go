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

import "cifra.dev/vigenere/vigcore/model/alphabet"

// IndexOfCoincidence computes the probability that two distinct positions
// of s, drawn at random, hold the same letter:
//
//	IC = Σ f(f−1) / (N(N−1))
//
// where f is the count of each letter and N the number of letters counted.
// Runes outside A-Z and a-z are ignored. Inputs with fewer than two letters
// have no distinct pairs and score 0; degenerate inputs never fail.
//
// Natural-language text scores noticeably higher than uniformly random
// text (roughly 0.065-0.08 against 1/26 ≈ 0.0385), which is what makes the
// statistic a key-length detector: columns cut at the true key length are
// single-shift Caesar text and keep the language's IC, while columns cut at
// a wrong length interleave shifts and flatten toward random.
func IndexOfCoincidence(s string) float64 {
	var counts [alphabet.Size]int
	n := 0
	for _, r := range s {
		if idx := alphabet.Index(r); idx >= 0 {
			counts[idx]++
			n++
		}
	}
	if n < 2 {
		return 0
	}

	sum := 0.0
	for _, f := range counts {
		sum += float64(f) * float64(f-1)
	}
	return sum / (float64(n) * float64(n-1))
}

// columns partitions text into n column strings, the i-th holding every
// n-th byte starting at offset i. The text is expected to be a filtered
// working copy (uppercase ASCII letters only), so byte indexing is safe.
// When n exceeds the text length the trailing columns are empty.
func columns(text string, n int) []string {
	bufs := make([][]byte, n)
	for i := range bufs {
		bufs[i] = make([]byte, 0, (len(text)+n-1)/n)
	}
	for i := 0; i < len(text); i++ {
		bufs[i%n] = append(bufs[i%n], text[i])
	}

	cols := make([]string, n)
	for i, b := range bufs {
		cols[i] = string(b)
	}
	return cols
}

// averageIC scores one candidate key length: the mean IC over the length
// columns the candidate induces. Empty columns contribute 0 and drag the
// average down, which penalizes candidates longer than the text supports.
func averageIC(text string, length int) float64 {
	sum := 0.0
	for _, col := range columns(text, length) {
		sum += IndexOfCoincidence(col)
	}
	return sum / float64(length)
}
