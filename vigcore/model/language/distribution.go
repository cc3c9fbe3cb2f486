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

package language

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"cifra.dev/vigenere/vigcore/errors"
	"cifra.dev/vigenere/vigcore/model"
	"cifra.dev/vigenere/vigcore/model/alphabet"
	"gopkg.in/yaml.v3"
)

// DistributionSumTolerance is the maximum allowed deviation of a
// Distribution's total from 1.0.
//
// Published frequency tables are rounded to four decimal places, so their
// sums land near but rarely exactly on 1.0 (the built-in Portuguese table
// sums to 0.995). A tolerance of 0.02 accepts such rounding while still
// rejecting tables that are structurally wrong, for example one missing a
// high-frequency letter.
const DistributionSumTolerance = 0.02

// Distribution is an expected relative letter frequency table over the
// 26-letter alphabet. Entry i is the expected relative frequency of the
// letter alphabet.Letter(i).
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// A Distribution always covers the full alphabet by construction: the array
// representation makes "exactly 26 entries" a compile-time fact, and
// letters absent from a source table simply carry an expected frequency of
// zero. The chi-squared scorer skips zero-expected letters, so near-zero
// entries (Portuguese K, W, Y) behave sensibly.
//
// Invariants checked by Validate:
//   - every entry is non-negative and at most 1,
//   - the entries sum to 1.0 within DistributionSumTolerance.
//
// Distributions are immutable value types. Language.Frequencies returns a
// copy of the built-in tables, so callers cannot corrupt the shared
// reference data. The zero value (all entries zero) represents "no table"
// and fails validation.
type Distribution [alphabet.Size]float64

// Compile-time check that Distribution implements model.Model.
var _ model.Model = (*Distribution)(nil)

// Built-in expected relative frequency tables. Values follow the published
// per-language letter frequencies (Wikipedia), rounded to four decimals.
var (
	portugueseFrequencies = Distribution{
		0.1463, 0.0104, 0.0388, 0.0499, 0.1257, 0.0102, 0.0130, // A-G
		0.0078, 0.0618, 0.0039, 0.0002, 0.0278, 0.0474, 0.0505, // H-N
		0.1073, 0.0252, 0.0120, 0.0653, 0.0781, 0.0434, 0.0463, // O-U
		0.0167, 0.0001, 0.0021, 0.0001, 0.0047, // V-Z
	}

	englishFrequencies = Distribution{
		0.0817, 0.0149, 0.0278, 0.0425, 0.1270, 0.0223, 0.0202, // A-G
		0.0609, 0.0697, 0.0015, 0.0077, 0.0403, 0.0241, 0.0675, // H-N
		0.0751, 0.0193, 0.0010, 0.0599, 0.0633, 0.0906, 0.0276, // O-U
		0.0098, 0.0236, 0.0015, 0.0197, 0.0007, // V-Z
	}
)

func init() {
	// A mistyped table constant would silently skew every chi-squared
	// score; fail at process start instead.
	model.MustValidate(&portugueseFrequencies)
	model.MustValidate(&englishFrequencies)
}

// Frequencies returns the expected letter frequency Distribution for the
// language.
//
// The returned value is a copy; mutating it does not affect the shared
// built-in tables. Invalid Language values degrade to the DefaultLanguage
// table, consistent with the engine's fallback error model.
func (l Language) Frequencies() Distribution {
	switch l {
	case LanguageEnglish:
		return englishFrequencies
	case LanguagePortuguese:
		return portugueseFrequencies
	default:
		return DefaultLanguage.Frequencies()
	}
}

// Expected returns the expected relative frequency of the letter at
// alphabet index i. Out-of-range indices return 0, the same value an
// absent letter carries.
func (d Distribution) Expected(i int) float64 {
	if i < 0 || i >= alphabet.Size {
		return 0
	}
	return d[i]
}

// Sum returns the total of all 26 entries.
func (d Distribution) Sum() float64 {
	var total float64
	for _, f := range d {
		total += f
	}
	return total
}

// String returns the human-readable representation of the Distribution:
// every letter with its expected frequency, in alphabet order.
//
// Implements the fmt.Stringer interface and the model.Loggable contract's
// String() requirement.
func (d Distribution) String() string {
	var b strings.Builder
	b.WriteString("Distribution{")
	for i, f := range d {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%c:%.4f", alphabet.Letter(i), f)
	}
	b.WriteString("}")
	return b.String()
}

// Redacted returns a compact, log-safe representation.
//
// Frequency tables are public reference data, so nothing is masked; the
// redacted form is merely abbreviated (entry count and sum) to keep log
// lines readable.
func (d Distribution) Redacted() string {
	return fmt.Sprintf("Distribution{entries:%d, sum:%.4f}", alphabet.Size, d.Sum())
}

// TypeName returns "Distribution", the name of this type for error
// messages and debugging.
func (d Distribution) TypeName() string {
	return "Distribution"
}

// IsZero reports whether every entry of the Distribution is zero, meaning
// no table has been provided.
func (d Distribution) IsZero() bool {
	for _, f := range d {
		if f != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether this Distribution is exactly equal to another.
//
// Entries are compared as exact float64 values; this is intended for
// round-trip tests and table identity checks, not for approximate
// statistical comparison.
func (d Distribution) Equal(other Distribution) bool {
	return d == other
}

// Validate checks the Distribution invariants: every entry within [0, 1]
// and the total within DistributionSumTolerance of 1.0.
//
// Returns a *errors.ValidationError naming the offending letter or the
// "sum" pseudo-field. The zero value fails with the sum check.
func (d Distribution) Validate() error {
	for i, f := range d {
		if f < 0 || f > 1 {
			return &errors.ValidationError{
				Type:   d.TypeName(),
				Field:  string(alphabet.Letter(i)),
				Reason: fmt.Sprintf("frequency must be within [0, 1] (got %g)", f),
				Value:  f,
			}
		}
	}

	if diff := math.Abs(d.Sum() - 1.0); diff > DistributionSumTolerance {
		return &errors.ValidationError{
			Type:   d.TypeName(),
			Field:  "sum",
			Reason: fmt.Sprintf("entries must sum to 1.0 within %g (got %.4f)", DistributionSumTolerance, d.Sum()),
			Value:  d.Sum(),
		}
	}

	return nil
}

// asMap converts the Distribution to its serialized letter->frequency
// form. Go's encoders emit map keys in sorted order, so output is always
// alphabetical.
func (d Distribution) asMap() map[string]float64 {
	m := make(map[string]float64, alphabet.Size)
	for i, f := range d {
		m[string(alphabet.Letter(i))] = f
	}
	return m
}

// fromMap populates the Distribution from its serialized form. Missing
// letters default to zero expected frequency; unknown keys are rejected.
func (d *Distribution) fromMap(m map[string]float64) error {
	var parsed Distribution
	for k, f := range m {
		if len(k) != 1 {
			return fmt.Errorf("key %q is not a single letter", k)
		}
		idx := alphabet.Index(rune(k[0]))
		if idx < 0 {
			return fmt.Errorf("key %q is not an alphabet letter", k)
		}
		parsed[idx] = f
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the Distribution as a
// letter-keyed object:
//
//	{"A": 0.1463, "B": 0.0104, ..., "Z": 0.0047}
//
// Validation runs first; an invalid table refuses to marshal.
func (d Distribution) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return json.Marshal(d.asMap())
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Accepts a letter-keyed object; letters missing from the object carry
// zero expected frequency, matching the "absent letter" semantics of the
// chi-squared scorer. The decoded table is validated before the receiver
// is considered populated.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return &errors.UnmarshalError{Type: d.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := d.fromMap(m); err != nil {
		return &errors.UnmarshalError{Type: d.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := d.Validate(); err != nil {
		return &errors.UnmarshalError{Type: d.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Distribution as a
// letter-keyed mapping. Validation runs first.
func (d Distribution) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return d.asMap(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same semantics as
// UnmarshalJSON: missing letters default to zero, the result is validated.
func (d *Distribution) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]float64
	if err := node.Decode(&m); err != nil {
		return &errors.UnmarshalError{Type: d.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := d.fromMap(m); err != nil {
		return &errors.UnmarshalError{Type: d.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := d.Validate(); err != nil {
		return &errors.UnmarshalError{Type: d.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}
