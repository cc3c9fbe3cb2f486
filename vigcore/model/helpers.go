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

package model

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not just the first one.
//
// Each model's Validate method is invoked in order. Failures are wrapped
// with the model's position in the slice and its type name, then combined
// into a single error using multierr, so callers see every invalid column
// metric or score entry in one pass rather than fixing them one at a time.
// The function always processes the entire slice.
//
// Empty slices are valid and return nil.
//
// Example usage for batch validation of per-column metrics:
//
//	if err := model.ValidateAll(report.Columns); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	var combined error

	for i, m := range models {
		if err := m.Validate(); err != nil {
			combined = multierr.Append(combined, fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return combined
}

// FilterZero returns a new slice containing only non-zero models, removing
// all instances where IsZero reports true.
//
// The returned slice is always a new allocation and never shares backing
// storage with the input. If the input is empty or nil, or if every model
// is zero, FilterZero returns an empty non-nil slice.
//
// Callers SHOULD use FilterZero before serializing collections so that
// empty placeholder values do not appear in reports. The function does not
// validate models; it only checks for zero values.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// This is intended for test fixtures and package initialization, where an
// invalid value indicates a programming error that should fail loudly and
// immediately. The built-in frequency distributions are checked with
// MustValidate at process start, so a mistyped table constant cannot
// silently skew every chi-squared score afterwards.
//
// Callers MUST NOT use MustValidate on values derived from external input;
// parse and validate those explicitly.
//
// Example usage in a test:
//
//	key := model.MustValidate(fixtureKey)
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default but can optionally include full details when
// explicitly requested.
//
// When unsafe is false (the production default), SafeString returns the
// model's Redacted form, masking sensitive fields such as cipher key
// material. When unsafe is true, it returns the full String form; callers
// MUST only do so in controlled debugging scenarios.
//
// Keeping the choice at a single, explicit call site makes logging behavior
// easy to audit:
//
//	log.Printf("attack finished: %s", model.SafeString(report, false))
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating it.
//
// If validation fails, ToJSON returns an error wrapping the validation
// failure with the model's type name, and no marshaling is attempted. This
// enforces the contract that only valid artifacts reach external reporting
// collaborators.
//
// Example:
//
//	data, err := model.ToJSON(report)
//	if err != nil {
//	    return err
//	}
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating it.
//
// Behaves like ToJSON with yaml.Marshal: validation failures surface before
// any encoding happens, and the model's own MarshalYAML is respected.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result.
//
// The provided pointer receives the unmarshaled value. If decoding fails,
// or if the decoded value fails validation, FromJSON returns an error and
// the state of *m is undefined; callers MUST NOT use it.
//
// Example:
//
//	var report analysis.Report
//	if err := model.FromJSON(data, &report); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result.
//
// Behaves like FromJSON with yaml.Unmarshal. Configuration-shaped inputs
// (language tags, custom frequency tables) typically arrive as YAML.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model via a JSON round trip.
//
// The serialize-then-deserialize approach guarantees independence from the
// original for nested slices and maps without type-specific copy logic, at
// the cost of encoding overhead. Types on hot paths SHOULD implement
// Cloneable[T] with hand-written copies instead; for artifact snapshots
// taken once per attack, the generic version is sufficient.
//
// Callers MUST check the returned error; on failure the returned model is
// the zero value and MUST NOT be used.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by comparing their JSON
// representations byte for byte.
//
// If either value fails to marshal, Equal returns false rather than
// guessing. The comparison covers exported fields only and respects custom
// MarshalJSON implementations; types needing cheaper or more precise
// comparison SHOULD implement Comparable[T] directly, as the enum and
// string model types in this repository do.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
