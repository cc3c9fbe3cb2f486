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

// Package cipher implements the Vigenère polyalphabetic substitution
// cipher over the 26-letter uppercase alphabet.
//
// The package defines two types: Key, a validated, uppercase-normalized
// sequence of letters, and Cipher, the stateless encrypt/decrypt primitive
// built on a Key. Only ASCII letters participate in cipher arithmetic;
// everything else (spaces, punctuation, digits, accented characters) passes
// through unchanged without consuming a key position.
package cipher

import (
	"encoding/json"
	"fmt"
	"strings"

	"cifra.dev/vigenere/vigcore/errors"
	"cifra.dev/vigenere/vigcore/model"
	"cifra.dev/vigenere/vigcore/model/alphabet"
	"gopkg.in/yaml.v3"
)

// Key represents a Vigenère cipher key: a non-empty sequence of letters.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// Keys are case-insensitive. ParseKey normalizes input to uppercase, and
// Equal compares case-insensitively, so "lemon", "Lemon" and "LEMON" all
// denote the same key. Construction fails with a *errors.ValidationError
// when the input is empty or contains any non-alphabetic character; there
// is no lenient fallback, because a malformed key is a caller bug, not a
// probabilistic condition.
//
// Key material is sensitive: a Key is either the secret protecting a
// message or the product of a successful attack. Redacted masks everything
// but the first letter, and every artifact embedding a Key MUST log it via
// Redacted.
//
// The zero value of Key (empty string) represents "no key" and fails
// validation.
type Key string

// Compile-time check that Key implements model.Model.
var _ model.Model = (*Key)(nil)

// ParseKey parses a string into a validated, uppercase-normalized Key.
//
// The input MUST be non-empty and consist solely of ASCII letters of
// either case. On success the returned Key is the uppercase form of the
// input; on failure ParseKey returns an empty Key and a
// *errors.ValidationError describing the violation.
//
// Example:
//
//	key, err := cipher.ParseKey("lemon")
//	// key == "LEMON", err == nil
//
//	_, err = cipher.ParseKey("L3M0N!")
//	// err: "vigcore: invalid Key: must contain only alphabetic characters (A-Z or a-z)"
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToUpper(s))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// String returns the key material in full.
//
// This method implements fmt.Stringer and the model.Loggable contract's
// String() requirement. It MUST NOT be used for production logging; use
// Redacted instead.
func (k Key) String() string {
	return string(k)
}

// Redacted returns a log-safe representation of the Key: the first letter
// followed by "***", or "[empty]" for the zero value.
//
// The single exposed letter preserves enough shape to correlate log
// entries (and matches how partially recovered keys are discussed) without
// revealing the key. The key length is deliberately not exposed either, so
// the mask is the same three stars regardless of Len.
//
// Examples:
//
//	Key("LEMON").Redacted() // "L***"
//	Key("").Redacted()      // "[empty]"
func (k Key) Redacted() string {
	if k == "" {
		return "[empty]"
	}
	return string(k[0]) + "***"
}

// TypeName returns "Key", the name of this type for error messages and
// debugging.
func (k Key) TypeName() string {
	return "Key"
}

// IsZero reports whether the Key is empty, meaning no key has been
// provided.
func (k Key) IsZero() bool {
	return k == ""
}

// Len returns the number of letters in the Key.
func (k Key) Len() int {
	return len(k)
}

// ShiftAt returns the Caesar shift contributed by key position i, taken
// cyclically: for a key of length L, position i uses letter i mod L.
//
// The shift of a key letter is its alphabet index (A contributes 0, B
// contributes 1, ...). Calling ShiftAt on a zero Key panics; callers
// obtain keys through ParseKey, which never returns one.
func (k Key) ShiftAt(i int) int {
	return alphabet.Index(rune(k[i%len(k)]))
}

// Equal reports whether this Key equals another, comparing
// case-insensitively since keys are case-insensitive by definition.
func (k Key) Equal(other Key) bool {
	return strings.EqualFold(string(k), string(other))
}

// Validate checks the Key invariants: non-empty and composed solely of
// ASCII letters.
//
// Returns nil for a valid Key, or a *errors.ValidationError with a
// specific reason. The offending value is intentionally omitted from the
// error, since key material must not leak through error messages into
// logs.
func (k Key) Validate() error {
	if k == "" {
		return &errors.ValidationError{
			Type:   k.TypeName(),
			Reason: "must not be empty",
		}
	}
	if !alphabet.Contains(string(k)) {
		return &errors.ValidationError{
			Type:   k.TypeName(),
			Reason: "must contain only alphabetic characters (A-Z or a-z)",
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Key.
//
// A valid Key serializes as a JSON string. Invalid keys refuse to marshal,
// returning the validation error.
func (k Key) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", k.TypeName(), err)
	}
	return json.Marshal(string(k))
}

// UnmarshalJSON implements json.Unmarshaler for Key.
//
// The decoded string is routed through ParseKey, so lowercase input is
// normalized to uppercase and invalid input yields a *errors.UnmarshalError.
func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: k.TypeName(), Data: data, Reason: err.Error()}
	}
	parsed, err := ParseKey(s)
	if err != nil {
		return &errors.UnmarshalError{Type: k.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	*k = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Key with the same validate-
// before-marshal guard as MarshalJSON.
func (k Key) MarshalYAML() (any, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", k.TypeName(), err)
	}
	return string(k), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Key, routing the decoded
// scalar through ParseKey.
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: k.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKey(s)
	if err != nil {
		return &errors.UnmarshalError{Type: k.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Key.
func (k Key) MarshalText() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", k.TypeName(), err)
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Key, routing the
// input through ParseKey.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
