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

// Package analysis implements statistical cryptanalysis of Vigenère
// ciphertext: index-of-coincidence key-length estimation, chi-squared
// per-column key recovery, and the composed attack that runs both.
//
// The entry point is the Analyser, bound once to a ciphertext and a
// language. All statistics run over an immutable working copy of the
// ciphertext holding only its uppercase letters, so punctuation and casing
// never skew a count. Every result is an explicit return value; the
// Analyser keeps no mutable score state and is safe for concurrent use.
//
// Typical usage:
//
//	a := analysis.NewAnalyser(ciphertext, language.LanguageEnglish)
//	report, err := a.Analyse(20)
//	if err != nil {
//	    return err
//	}
//	key := report.Key
package analysis

import (
	"sync"

	"cifra.dev/vigenere/vigcore/errors"
	"cifra.dev/vigenere/vigcore/model/alphabet"
	"cifra.dev/vigenere/vigcore/model/cipher"
	"cifra.dev/vigenere/vigcore/model/language"
)

// Analyser performs the statistical attack on one ciphertext under one
// assumed language. It is immutable after construction and safe for
// concurrent use.
type Analyser struct {
	text string
	lang language.Language
	dist language.Distribution
}

// NewAnalyser binds a ciphertext and a language. The working copy is
// derived once: uppercase ASCII letters of the ciphertext in order, with
// everything else removed. An unknown Language value degrades to the
// default language's frequency table rather than failing, matching the
// fallback behavior of language.LanguageOrDefault.
func NewAnalyser(ciphertext string, lang language.Language) *Analyser {
	if lang.Validate() != nil {
		lang = language.DefaultLanguage
	}
	return &Analyser{
		text: alphabet.Filter(ciphertext),
		lang: lang,
		dist: lang.Frequencies(),
	}
}

// Language returns the language the analyser scores against.
func (a *Analyser) Language() language.Language {
	return a.lang
}

// WorkingCopy returns the filtered ciphertext the statistics run over.
func (a *Analyser) WorkingCopy() string {
	return a.text
}

// EstimateKeyLength scores every candidate key length from 1 to maxLen and
// returns the winner along with the full score table. Each candidate L
// partitions the working copy into L columns (every L-th letter from
// offset i) and is scored by the mean index of coincidence of its columns;
// the winner is the first strict maximum in ascending order, so a true
// length beats its multiples on ties.
//
// Candidates are scored concurrently; each goroutine writes its
// pre-assigned slot and the winner is selected by an ascending reduction
// afterward, so results are deterministic.
//
// maxLen below 1 returns a *errors.ValidationError. A working copy too
// short to populate every column yields zero-IC columns that bias the
// estimate toward short lengths; that is a property of the statistic, not
// an error.
func (a *Analyser) EstimateKeyLength(maxLen int) (int, LengthScores, error) {
	if maxLen < 1 {
		return 0, nil, &errors.ValidationError{
			Type:   "Analyser",
			Field:  "maxLen",
			Reason: "must be at least 1",
			Value:  maxLen,
		}
	}

	scores := make(LengthScores, maxLen)
	var wg sync.WaitGroup
	for length := 1; length <= maxLen; length++ {
		length := length
		wg.Add(1)
		go func() {
			defer wg.Done()
			scores[length-1] = LengthScore{
				Length:    length,
				AverageIC: averageIC(a.text, length),
			}
		}()
	}
	wg.Wait()

	best, _ := scores.Best()
	return best.Length, scores, nil
}

// RecoverKey recovers the key for a known or estimated key length. The
// working copy is partitioned exactly as in EstimateKeyLength; each column
// is a Caesar encryption of language-shaped text, so its shift is found by
// the chi-squared search over all 26 candidates. The key letter for a
// column is the alphabet symbol at its winning shift.
//
// Columns are scored concurrently with the same pre-indexed fan-out as the
// estimator. The returned metrics carry, per key position, the winning
// shift and score plus the complete shift score table.
//
// keyLength below 1 returns a *errors.ValidationError. Empty columns
// (keyLength beyond the text length) resolve to shift 0.
func (a *Analyser) RecoverKey(keyLength int) (cipher.Key, []ColumnMetric, error) {
	if keyLength < 1 {
		return "", nil, &errors.ValidationError{
			Type:   "Analyser",
			Field:  "keyLength",
			Reason: "must be at least 1",
			Value:  keyLength,
		}
	}

	cols := columns(a.text, keyLength)
	metrics := make([]ColumnMetric, keyLength)
	var wg sync.WaitGroup
	for i, col := range cols {
		i, col := i, col
		wg.Add(1)
		go func() {
			defer wg.Done()
			metrics[i] = scoreColumn(i, col, a.dist)
		}()
	}
	wg.Wait()

	letters := make([]byte, keyLength)
	for i, m := range metrics {
		letters[i] = m.KeyLetter()
	}
	key, err := cipher.ParseKey(string(letters))
	if err != nil {
		return "", nil, err
	}
	return key, metrics, nil
}

// Analyse runs the complete attack: estimate the key length, then recover
// the key at that length, and assemble the Report snapshot for external
// reporting collaborators.
func (a *Analyser) Analyse(maxLen int) (Report, error) {
	keyLength, scores, err := a.EstimateKeyLength(maxLen)
	if err != nil {
		return Report{}, err
	}

	key, metrics, err := a.RecoverKey(keyLength)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Language:     a.lang,
		KeyLength:    keyLength,
		Key:          key,
		LengthScores: scores,
		Columns:      metrics,
	}, nil
}
