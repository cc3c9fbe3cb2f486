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

// Package model defines the contracts that all vigenere domain types MUST
// implement to ensure consistency, type safety, and proper behavior across
// the library.
//
// Every domain type representing cipher or analysis entities (such as
// Language, Distribution, Key, LengthScore, ColumnMetric, Report) SHOULD
// implement the Model interface or its constituent parts (Validatable,
// Serializable, Loggable, Identifiable, ZeroCheckable). These interfaces
// establish a common contract for validation, serialization, logging, and
// identity that enables generic operations and guarantees safety at compile
// time.
//
// The contracts prioritize data integrity and debuggability. Validation
// ensures that invalid states (an empty cipher key, a frequency table that
// does not sum to one, a column metric with an out-of-range shift) cannot be
// serialized or handed to collaborators unnoticed. Serialization provides
// round-trip guarantees for the analysis artifacts that external reporting
// tools consume. Loggable protects sensitive values, recovered cipher keys
// in particular, from accidental exposure in logs.
//
// Unless explicitly documented otherwise, implementations are immutable
// value types and therefore safe for concurrent reads. Callers MUST
// synchronize any concurrent writes to mutable instances (in practice, only
// unmarshaling mutates a model value).
//
// Types implementing Model can be used with the generic helper functions in
// this package, such as ValidateAll, FilterZero, ToJSON, ToYAML, Clone, and
// Equal. These helpers rely on the Model contract and fail at compile time
// when applied to types that do not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for vigenere domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and full
// string representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented (the
// unmarshal methods are the documented exception). Concurrent reads are
// safe; concurrent writes require external synchronization.
//
// Example implementation sketch:
//
//	type Key string
//
//	func (k Key) Validate() error   { ... }
//	func (k Key) TypeName() string  { return "Key" }
//	func (k Key) IsZero() bool      { return k == "" }
//	func (k Key) Redacted() string  { return "L***" }
//	func (k Key) String() string    { return string(k) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Key)(nil) // compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// The Validate method MUST check all invariants of the type: required
// values present (a Key has at least one letter), ranges respected (a shift
// lies in [0, 26)), cross-field consistency (a Report carries exactly one
// ColumnMetric per key position), and nested objects valid (a Report's Key
// and LengthScores validate recursively). It MUST return nil if and only if
// the instance is fully valid, and a descriptive error otherwise; prefer
// specific messages such as "Key must contain only alphabetic characters"
// over generic ones.
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT perform I/O.
//
// Callers SHOULD invoke Validate at boundaries: after unmarshaling JSON or
// YAML, after constructing instances from user input, and before handing
// artifacts to external reporting collaborators. The marshal helpers in
// this package do so automatically.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML. All model types MUST support both
// formats: the analysis artifacts (score tables, column metrics, reports)
// are consumed by external reporting collaborators as JSON payloads or YAML
// documents, and the cipher configuration types (Language, Key) round-trip
// through the same formats.
//
// Implementations MUST call Validate before marshaling and after
// unmarshaling, so that invalid values neither leak into serialized output
// nor enter the system through external input. A value serialized to JSON
// and then deserialized MUST equal the original value, and the same MUST
// hold for YAML.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and require exclusive access.
//
// Implementations SHOULD use the type-alias pattern to avoid infinite
// recursion:
//
//	func (m Report) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
//	    }
//	    type report Report
//	    return json.Marshal(report(m))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging.
//
// The Redacted method returns a representation suitable for production
// logging. Recovered or configured cipher keys are sensitive (logging the
// key of a message that a caller is attacking or protecting defeats the
// purpose of the exercise), so Key and every artifact embedding one MUST
// mask the key material while preserving enough shape for debugging (for
// example, "L***" for a key beginning with L). Statistical values (IC
// scores, chi-squared tables, language tags) are not sensitive and MAY be
// shown in full.
//
// The String method returns a complete human-readable representation that
// MAY include sensitive data. It is intended for development, debugging,
// and test assertions; production logging MUST use Redacted instead.
//
// Both methods MUST be fast, MUST NOT mutate the receiver, and MUST be safe
// to call concurrently. Nested Loggable values SHOULD be rendered via their
// own Redacted method inside Redacted output.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging
	// in production, with sensitive fields (cipher key material) masked.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	Redacted() string

	// String returns a human-readable representation of the instance. It
	// MAY include sensitive data and MUST NOT be used for production
	// logging; use Redacted instead.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The type name returned by TypeName MUST be constant for a given type,
// unique within the vigenere domain, in CamelCase, and without a package
// prefix (for example, "Key", "Distribution", "ColumnMetric"). Type names
// appear in error messages (the errors package embeds them in its stable
// formats), in logs, and in test diagnostics.
//
// TypeName MUST be fast, MUST NOT allocate, and SHOULD return a string
// constant.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// An instance is zero when it carries no meaningful data: an empty Key, a
// Distribution with all frequencies zero, a Report with no recovered key
// and no scores. IsZero MUST return true if and only if the instance is
// semantically empty. The zero state usually fails validation; it exists as
// a sentinel for "not provided" in optional fields and freshly declared
// variables.
//
// IsZero MUST be fast, deterministic, and free of side effects.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions, or selection logic.
//
// The Equal method MUST be reflexive, symmetric, transitive, and
// consistent. It SHOULD compare all semantically significant fields and
// ignore internal caches. Nested models SHOULD be compared with their own
// Equal methods where available.
//
// Equal MUST NOT mutate either operand and MUST be safe to call
// concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional; most vigenere model types are
// immutable values for which assignment already behaves like a copy, but
// types holding slices (a Report's score table and column metrics) SHOULD
// implement it so callers can snapshot artifacts without sharing backing
// arrays.
//
// The Clone method MUST create a deep copy: modifying the clone MUST NOT
// affect the original, and vice versa. The clone MUST be valid whenever the
// original is.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance sharing no references
	// with the original.
	Clone() T
}
