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

// Package alphabet defines the fixed 26-symbol uppercase Latin alphabet
// shared by the cipher and the analyser, together with its modular index
// arithmetic.
//
// The alphabet is a process-wide constant establishing a bijection between
// the letters A..Z and the indices 0..25 with modulus 26. Only ASCII
// letters participate in cipher arithmetic; accented and non-Latin letters
// are treated like punctuation throughout the library.
package alphabet

// Letters is the ordered sequence of alphabet symbols. Letters[i] is the
// letter at index i.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of symbols in the alphabet and the modulus of all
// index arithmetic.
const Size = 26

// IsLetter reports whether r is an ASCII letter of either case.
//
// Exactly the characters for which IsLetter returns true participate in
// cipher arithmetic and consume key positions; everything else passes
// through the cipher verbatim and is stripped by the analyser.
func IsLetter(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

// Index returns the 0-based alphabet index of r, accepting either case.
// It returns -1 when r is not an ASCII letter.
func Index(r rune) int {
	switch {
	case 'A' <= r && r <= 'Z':
		return int(r - 'A')
	case 'a' <= r && r <= 'z':
		return int(r - 'a')
	default:
		return -1
	}
}

// Letter returns the alphabet symbol at index i modulo Size.
//
// Negative indices are supported: Letter(-1) is 'Z'. This makes the
// subtraction in Caesar and Vigenère decryption safe without the caller
// re-normalizing.
func Letter(i int) byte {
	i %= Size
	if i < 0 {
		i += Size
	}
	return Letters[i]
}

// Contains reports whether s is non-empty and consists solely of ASCII
// letters. It is the alphabet-membership test behind key validation.
func Contains(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// Filter returns the working copy of s used by statistical analysis:
// ASCII letters only, folded to uppercase, everything else removed.
//
// This differs from the cipher, which preserves non-letters; the analyser
// operates exclusively on filtered text.
func Filter(s string) string {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if idx := Index(r); idx >= 0 {
			buf = append(buf, Letters[idx])
		}
	}
	return string(buf)
}
