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

// Package language defines the closed set of reference languages supported
// by the cryptanalysis engine and their expected letter frequency
// distributions.
//
// A Language selects which Distribution the chi-squared key recoverer
// scores candidate decryptions against. The set is closed: Portuguese and
// English are built in, Portuguese being the default. Because cryptanalysis
// confidence is inherently probabilistic, an unrecognized language tag is
// not a fatal condition: LanguageOrDefault degrades to the default table
// rather than failing, while ParseLanguage reports the problem for callers
// that want to surface it.
package language

import (
	"encoding/json"

	"cifra.dev/vigenere/vigcore/errors"
	"cifra.dev/vigenere/vigcore/model"
	"gopkg.in/yaml.v3"
)

// Language identifies a reference language for frequency analysis.
//
// The value selects the expected letter frequency Distribution used by the
// chi-squared goodness-of-fit test during key recovery. Choosing the wrong
// language does not break the attack mechanically (every shift still gets
// a score) but it degrades the statistics, so callers SHOULD pass the
// language the plaintext is believed to be written in.
//
// The zero value is LanguagePortuguese, which doubles as the fallback for
// unrecognized tags (see LanguageOrDefault).
type Language int

const (
	// LanguagePortuguese selects the Portuguese reference frequency table.
	//
	// This is the default language: the zero value of Language, the
	// fallback of LanguageOrDefault, and the table used by an Analyser
	// constructed with an invalid Language value.
	LanguagePortuguese Language = iota

	// LanguageEnglish selects the English reference frequency table.
	LanguageEnglish
)

// DefaultLanguage is the language used when no valid selection is
// available. Unrecognized tags degrade here rather than failing, because a
// frequency attack with a mismatched table is still a meaningful (if
// weaker) attack.
const DefaultLanguage = LanguagePortuguese

// String constants for Language values used in serialization, parsing, and
// human-facing output.
//
// The short forms are ISO 639-1 tags and form the stable external
// representation of Language; they MAY be persisted in configuration files
// and JSON/YAML documents. Changing them is a breaking change for any
// consumer relying on textual configuration.
const (
	LanguagePortugueseStr = "pt"
	LanguageEnglishStr    = "en"
)

// ParseLanguage converts a textual representation into a Language value.
//
// The function accepts a small, case-insensitive vocabulary: the ISO tags
// and the English names of the supported languages.
//
//	"pt", "Pt", "PT", "portuguese", "Portuguese", "PORTUGUESE" -> LanguagePortuguese
//	"en", "En", "EN", "english",    "English",    "ENGLISH"    -> LanguageEnglish
//
// Any other input is invalid and yields a *errors.ParseError carrying the
// original string. Callers that prefer the non-failing fallback behavior
// SHOULD use LanguageOrDefault instead.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case LanguagePortugueseStr, "Pt", "PT", "portuguese", "Portuguese", "PORTUGUESE":
		return LanguagePortuguese, nil
	case LanguageEnglishStr, "En", "EN", "english", "English", "ENGLISH":
		return LanguageEnglish, nil
	default:
		return DefaultLanguage, &errors.ParseError{Type: "Language", Value: s}
	}
}

// LanguageOrDefault converts a textual representation into a Language,
// falling back to DefaultLanguage when the tag is unrecognized.
//
// This is the lenient entry point matching the engine's error model:
// an unknown language tag is a soft condition handled by a defined
// fallback, never a fatal one.
func LanguageOrDefault(s string) Language {
	lang, err := ParseLanguage(s)
	if err != nil {
		return DefaultLanguage
	}
	return lang
}

// String returns the canonical string representation of the Language.
//
// The returned value is the lowercase ISO tag:
//
//	LanguagePortuguese -> "pt"
//	LanguageEnglish    -> "en"
//
// If the Language is not one of the defined constants, String returns
// "unknown". Callers needing to guarantee a valid tag SHOULD call Valid
// first, or treat "unknown" as an indicator of a programming error.
func (l Language) String() string {
	switch l {
	case LanguagePortuguese:
		return LanguagePortugueseStr
	case LanguageEnglish:
		return LanguageEnglishStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Language is one of the defined constants.
//
// Useful after deserialization or numeric casts; code assuming a
// well-formed Language SHOULD call Valid before indexing frequency tables
// directly. The engine itself tolerates invalid values by degrading to
// DefaultLanguage.
func (l Language) Valid() bool {
	return l == LanguagePortuguese || l == LanguageEnglish
}

// TypeName returns "Language", the name of the type for error messages and
// debugging.
//
// This method implements part of the model.Model interface.
func (l Language) TypeName() string {
	return "Language"
}

// Redacted returns the same representation as String().
//
// Language tags carry no sensitive information, so the redacted form is
// identical to the regular string form. Implements part of model.Model.
func (l Language) Redacted() string {
	return l.String()
}

// IsZero reports whether the Language has its zero value.
//
// The zero value is LanguagePortuguese, which is a valid Language (it is
// the default), so IsZero returning true does not indicate an error
// condition.
func (l Language) IsZero() bool {
	return l == LanguagePortuguese
}

// Equal reports whether this Language equals another value.
//
// Accepts Language or *Language via type assertion; anything else compares
// unequal. Implements part of the model.Model interface.
func (l Language) Equal(other any) bool {
	switch v := other.(type) {
	case Language:
		return l == v
	case *Language:
		if v == nil {
			return false
		}
		return l == *v
	default:
		return false
	}
}

// Validate checks whether the Language is one of the defined constants,
// returning a *errors.ValidationError otherwise.
//
// This method implements part of the model.Model interface and is called
// automatically by the marshal helpers.
func (l Language) Validate() error {
	if !l.Valid() {
		return &errors.ValidationError{
			Type:   "Language",
			Reason: "unknown Language value",
			Value:  int(l),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Language.
//
// A valid Language serializes as its ISO tag string (for example, "pt").
// Invalid values produce a *errors.MarshalError and no output, so
// unchecked numeric casts cannot leak into serialized reports.
func (l Language) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Language", Value: int(l)}
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Language.
//
// Accepts both string and numeric JSON representations:
//
//   - String: any vocabulary accepted by ParseLanguage.
//   - Number: 0 (LanguagePortuguese), 1 (LanguageEnglish), for
//     compatibility with configurations storing enum values as integers.
//
// Inputs that parse to no valid Language yield a *errors.UnmarshalError or
// the underlying *errors.ParseError.
func (l *Language) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Language", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Language", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseLanguage(s)
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Language", Data: data, Reason: err.Error()}
	}
	*l = Language(i)
	if !l.Valid() {
		return &errors.UnmarshalError{Type: "Language", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Language.
//
// A valid Language serializes as its ISO tag; invalid values produce a
// *errors.MarshalError.
func (l Language) MarshalYAML() (any, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Language", Value: int(l)}
	}
	return l.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Language.
//
// Accepts the string vocabulary of ParseLanguage; on failure returns the
// underlying *errors.ParseError.
func (l *Language) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Language", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseLanguage(str)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Language.
//
// Textual form is the same ISO tag as String(). Invalid values produce a
// *errors.MarshalError.
func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "Language", Value: int(l)}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Language.
//
// Accepts the same vocabulary as ParseLanguage, which is the single source
// of truth for the mapping. On failure returns the underlying
// *errors.ParseError.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Compile-time check that Language implements model.Model interface.
var _ model.Model = (*Language)(nil)
