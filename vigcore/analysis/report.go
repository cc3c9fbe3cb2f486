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
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"cifra.dev/vigenere/vigcore/errors"
	"cifra.dev/vigenere/vigcore/model"
	"cifra.dev/vigenere/vigcore/model/alphabet"
	"cifra.dev/vigenere/vigcore/model/cipher"
	"cifra.dev/vigenere/vigcore/model/language"
)

// LengthScore pairs a candidate key length with the average index of
// coincidence of the columns that length produces.
type LengthScore struct {
	// Length is the candidate key length, at least 1.
	Length int `json:"length" yaml:"length"`

	// AverageIC is the mean index of coincidence across the Length
	// columns, in [0, 1].
	AverageIC float64 `json:"averageIC" yaml:"averageIC"`
}

// Validate implements model.Validatable.
func (s LengthScore) Validate() error {
	if s.Length < 1 {
		return &errors.ValidationError{
			Type:   s.TypeName(),
			Field:  "Length",
			Reason: "must be at least 1",
			Value:  s.Length,
		}
	}
	if s.AverageIC < 0 || s.AverageIC > 1 {
		return &errors.ValidationError{
			Type:   s.TypeName(),
			Field:  "AverageIC",
			Reason: "must be between 0 and 1",
			Value:  s.AverageIC,
		}
	}
	return nil
}

// TypeName implements model.Identifiable.
func (s LengthScore) TypeName() string {
	return "LengthScore"
}

// IsZero implements model.ZeroCheckable.
func (s LengthScore) IsZero() bool {
	return s.Length == 0 && s.AverageIC == 0
}

// String implements model.Loggable.
func (s LengthScore) String() string {
	return fmt.Sprintf("LengthScore{Length:%d, AverageIC:%.5f}", s.Length, s.AverageIC)
}

// Redacted implements model.Loggable. Length scores carry no sensitive
// data, so the full representation is returned.
func (s LengthScore) Redacted() string {
	return s.String()
}

// Equal implements model.Comparable.
func (s LengthScore) Equal(other LengthScore) bool {
	return s == other
}

// MarshalJSON implements json.Marshaler. Validation runs first.
func (s LengthScore) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias LengthScore
	return json.Marshal(alias(s))
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded value.
func (s *LengthScore) UnmarshalJSON(data []byte) error {
	type alias LengthScore
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler. Validation runs first.
func (s LengthScore) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias LengthScore
	return alias(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded value.
func (s *LengthScore) UnmarshalYAML(node *yaml.Node) error {
	type alias LengthScore
	if err := node.Decode((*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

var _ model.Model = (*LengthScore)(nil)
var _ model.Comparable[LengthScore] = LengthScore{}

// LengthScores is the full score table produced by key-length estimation,
// ordered ascending by candidate length starting at 1.
type LengthScores []LengthScore

// Best returns the winning entry: the first strict maximum of AverageIC in
// ascending length order, so that when a length and its multiples tie, the
// shortest candidate wins. The second return value is false when the table
// is empty.
func (ls LengthScores) Best() (LengthScore, bool) {
	if len(ls) == 0 {
		return LengthScore{}, false
	}
	best := ls[0]
	for _, s := range ls[1:] {
		if s.AverageIC > best.AverageIC {
			best = s
		}
	}
	return best, true
}

// Validate checks every entry and that lengths ascend from 1 without gaps.
func (ls LengthScores) Validate() error {
	var errs error
	for i, s := range ls {
		if err := s.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("[%d]: %w", i, err))
		} else if s.Length != i+1 {
			errs = multierr.Append(errs, &errors.ValidationError{
				Type:   "LengthScores",
				Reason: fmt.Sprintf("entry %d has length %d, want %d", i, s.Length, i+1),
			})
		}
	}
	return errs
}

// ColumnMetric records the chi-squared search outcome for one key position.
type ColumnMetric struct {
	// Position is the 0-based key position this metric describes.
	Position int `json:"position" yaml:"position"`

	// BestShift is the winning Caesar shift in [0, 26).
	BestShift int `json:"bestShift" yaml:"bestShift"`

	// BestScore is the chi-squared score at BestShift.
	BestScore float64 `json:"bestScore" yaml:"bestScore"`

	// Scores holds the chi-squared score for every candidate shift.
	Scores [alphabet.Size]float64 `json:"scores" yaml:"scores"`
}

// KeyLetter returns the alphabet symbol at the winning shift.
func (c ColumnMetric) KeyLetter() byte {
	return alphabet.Letter(c.BestShift)
}

// Validate implements model.Validatable.
func (c ColumnMetric) Validate() error {
	if c.Position < 0 {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Position",
			Reason: "must not be negative",
			Value:  c.Position,
		}
	}
	if c.BestShift < 0 || c.BestShift >= alphabet.Size {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "BestShift",
			Reason: "must be between 0 and 25",
			Value:  c.BestShift,
		}
	}
	for i, score := range c.Scores {
		if score < 0 {
			return &errors.ValidationError{
				Type:   c.TypeName(),
				Field:  "Scores",
				Reason: fmt.Sprintf("score for shift %d must not be negative", i),
				Value:  score,
			}
		}
	}
	if c.BestScore != c.Scores[c.BestShift] {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "BestScore",
			Reason: "must equal the score recorded for BestShift",
			Value:  c.BestScore,
		}
	}
	return nil
}

// TypeName implements model.Identifiable.
func (c ColumnMetric) TypeName() string {
	return "ColumnMetric"
}

// IsZero implements model.ZeroCheckable.
func (c ColumnMetric) IsZero() bool {
	return c == ColumnMetric{}
}

// String implements model.Loggable. The per-shift table is summarized; the
// full 26 entries are available through serialization.
func (c ColumnMetric) String() string {
	return fmt.Sprintf("ColumnMetric{Position:%d, BestShift:%d, BestScore:%.4f}",
		c.Position, c.BestShift, c.BestScore)
}

// Redacted implements model.Loggable. A single column's winning shift
// exposes one key letter, so the shift and score are masked.
func (c ColumnMetric) Redacted() string {
	return fmt.Sprintf("ColumnMetric{Position:%d, BestShift:[REDACTED]}", c.Position)
}

// Equal implements model.Comparable.
func (c ColumnMetric) Equal(other ColumnMetric) bool {
	return c == other
}

// MarshalJSON implements json.Marshaler. Validation runs first.
func (c ColumnMetric) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type alias ColumnMetric
	return json.Marshal(alias(c))
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded value.
func (c *ColumnMetric) UnmarshalJSON(data []byte) error {
	type alias ColumnMetric
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler. Validation runs first.
func (c ColumnMetric) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type alias ColumnMetric
	return alias(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded value.
func (c *ColumnMetric) UnmarshalYAML(node *yaml.Node) error {
	type alias ColumnMetric
	if err := node.Decode((*alias)(c)); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

var _ model.Model = (*ColumnMetric)(nil)
var _ model.Comparable[ColumnMetric] = ColumnMetric{}

// Report is the complete read-only snapshot of one attack: the language
// assumed, the estimated key length with its full score table, the
// recovered key, and the per-column chi-squared metrics. It is the artifact
// handed to external reporting collaborators.
type Report struct {
	// Language is the language whose letter frequencies drove the attack.
	Language language.Language `json:"language" yaml:"language"`

	// KeyLength is the estimated key length.
	KeyLength int `json:"keyLength" yaml:"keyLength"`

	// Key is the recovered key, one letter per column.
	Key cipher.Key `json:"key" yaml:"key"`

	// LengthScores is the average IC per candidate length, ascending.
	LengthScores LengthScores `json:"lengthScores" yaml:"lengthScores"`

	// Columns holds one metric per key position, ascending by position.
	Columns []ColumnMetric `json:"columns" yaml:"columns"`
}

// Validate implements model.Validatable. All violations are reported, not
// just the first one found.
func (r Report) Validate() error {
	var errs error

	if err := r.Language.Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if r.KeyLength < 1 {
		errs = multierr.Append(errs, &errors.ValidationError{
			Type:   r.TypeName(),
			Field:  "KeyLength",
			Reason: "must be at least 1",
			Value:  r.KeyLength,
		})
	}
	if err := r.Key.Validate(); err != nil {
		errs = multierr.Append(errs, err)
	} else if r.Key.Len() != r.KeyLength {
		errs = multierr.Append(errs, &errors.ValidationError{
			Type:   r.TypeName(),
			Field:  "Key",
			Reason: "length must equal KeyLength",
		})
	}
	if err := r.LengthScores.Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if len(r.Columns) != r.KeyLength {
		errs = multierr.Append(errs, &errors.ValidationError{
			Type:   r.TypeName(),
			Field:  "Columns",
			Reason: "count must equal KeyLength",
			Value:  len(r.Columns),
		})
	}
	for i, c := range r.Columns {
		if err := c.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("columns[%d]: %w", i, err))
		} else if c.Position != i {
			errs = multierr.Append(errs, &errors.ValidationError{
				Type:   r.TypeName(),
				Field:  "Columns",
				Reason: fmt.Sprintf("entry %d records position %d", i, c.Position),
			})
		}
	}

	return errs
}

// TypeName implements model.Identifiable.
func (r Report) TypeName() string {
	return "Report"
}

// IsZero implements model.ZeroCheckable.
func (r Report) IsZero() bool {
	return r.Language == language.DefaultLanguage && r.KeyLength == 0 &&
		r.Key.IsZero() && len(r.LengthScores) == 0 && len(r.Columns) == 0
}

// String implements model.Loggable. Includes the full recovered key; use
// Redacted for production logging.
func (r Report) String() string {
	return fmt.Sprintf("Report{Language:%s, KeyLength:%d, Key:%s, LengthScores:%d, Columns:%d}",
		r.Language, r.KeyLength, r.Key, len(r.LengthScores), len(r.Columns))
}

// Redacted implements model.Loggable, masking the recovered key.
func (r Report) Redacted() string {
	return fmt.Sprintf("Report{Language:%s, KeyLength:%d, Key:%s, LengthScores:%d, Columns:%d}",
		r.Language, r.KeyLength, r.Key.Redacted(), len(r.LengthScores), len(r.Columns))
}

// Equal implements model.Comparable.
func (r Report) Equal(other Report) bool {
	if r.Language != other.Language || r.KeyLength != other.KeyLength || !r.Key.Equal(other.Key) {
		return false
	}
	if len(r.LengthScores) != len(other.LengthScores) || len(r.Columns) != len(other.Columns) {
		return false
	}
	for i := range r.LengthScores {
		if r.LengthScores[i] != other.LengthScores[i] {
			return false
		}
	}
	for i := range r.Columns {
		if r.Columns[i] != other.Columns[i] {
			return false
		}
	}
	return true
}

// Clone implements model.Cloneable, deep-copying the score and metric
// slices so the snapshot shares no backing storage with the original.
func (r Report) Clone() Report {
	clone := r
	clone.LengthScores = make(LengthScores, len(r.LengthScores))
	copy(clone.LengthScores, r.LengthScores)
	clone.Columns = make([]ColumnMetric, len(r.Columns))
	copy(clone.Columns, r.Columns)
	return clone
}

// MarshalJSON implements json.Marshaler. Validation runs first, so an
// inconsistent report never reaches a serialized artifact.
func (r Report) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type alias Report
	return json.Marshal(alias(r))
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded value.
func (r *Report) UnmarshalJSON(data []byte) error {
	type alias Report
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler. Validation runs first.
func (r Report) MarshalYAML() (any, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type alias Report
	return alias(r), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded value.
func (r *Report) UnmarshalYAML(node *yaml.Node) error {
	type alias Report
	if err := node.Decode((*alias)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

var _ model.Model = (*Report)(nil)
var _ model.Comparable[Report] = Report{}
var _ model.Cloneable[Report] = Report{}
