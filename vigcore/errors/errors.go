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

// Package errors provides reusable error types shared by the vigcore model
// and analysis packages.
//
// The cipher and analyser surfaces produce a small, closed set of failure
// kinds: textual input that cannot be interpreted (an unknown language tag),
// a value that violates a model invariant (an empty or non-alphabetic key,
// a non-positive search bound), and serialization guards that refuse to emit
// or accept invalid model values. Centralizing these types gives every
// package the same error handling story and lets callers distinguish the
// kinds by type assertion rather than by string matching.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a typed value fails, for example
//     an unrecognized language tag passed to language.ParseLanguage.
//
//   - ValidationError
//     Returned when a model value violates an invariant: a Key that is
//     empty or contains non-alphabetic characters, a Distribution whose
//     frequencies do not sum to one, or an analysis bound below one.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value. Used in
//     MarshalJSON / MarshalYAML / MarshalText implementations to stop
//     invalid values from leaking into serialized reports.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     malformed input or a constraint violation after decoding.
//
// All messages carry the stable "vigcore:" prefix. The message formats are
// part of the package contract; callers MAY rely on them for diagnostics but
// SHOULD prefer type assertions for programmatic handling.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed (for example, "Language"),
// and Value contains the exact string that could not be interpreted. Callers
// MAY pattern-match on Type to translate errors into friendlier messages,
// or ignore the error entirely and fall back to a default value, as
// language.LanguageOrDefault does.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example,
	// "Language").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"vigcore: invalid {Type} value: {Value}"
//
// For example:
//
//	"vigcore: invalid Language value: klingon"
func (e *ParseError) Error() string {
	return "vigcore: invalid " + e.Type + " value: " + e.Value
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Key", "Distribution", "Report"), Field optionally identifies which field
// failed, Reason explains the violation in human-readable terms, and Value
// optionally carries the offending value. For single-valued types such as
// Key, Field is left empty and the error applies to the whole value.
//
// Validation failures surface immediately at construction (ParseKey,
// NewAnalyser bounds) or at serialization boundaries; they are programming
// or input errors, never transient conditions, and are not retried.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation
	// failed.
	Reason string

	// Value optionally contains the invalid value. May be nil when the
	// value is not useful for diagnostics (or is sensitive, as cipher key
	// material can be).
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"vigcore: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"vigcore: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"vigcore: invalid Key: must contain only alphabetic characters"
//	"vigcore: invalid Report.Columns: count must equal KeyLength"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "vigcore: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "vigcore: invalid " + e.Type + ": " + e.Reason
}

// MarshalError is returned when marshaling a typed value fails because the
// value lies outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example,
// "Language"), and Value contains the underlying numeric value that was
// rejected. A MarshalError almost always indicates a programming error,
// such as a Language produced by an unchecked numeric cast.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that does not
	// correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"vigcore: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "vigcore: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload (typically a JSON fragment or YAML scalar), and
// Reason describes what went wrong: a decode error, an unknown enum value,
// or a post-decode validation failure.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal. Callers MAY log or
	// redact it depending on size and sensitivity.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"vigcore: cannot unmarshal {Type}: {Reason}"
//
// Data is intentionally omitted from the formatted message; callers can log
// it separately when appropriate.
func (e *UnmarshalError) Error() string {
	return "vigcore: cannot unmarshal " + e.Type + ": " + e.Reason
}
