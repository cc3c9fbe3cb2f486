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

package cipher

import (
	"strings"

	"cifra.dev/vigenere/vigcore/model/alphabet"
)

// Cipher is a Vigenère encryption/decryption primitive bound to a Key.
//
// A Cipher is stateless beyond its key: Encrypt and Decrypt are pure
// functions of (text, key), safe for concurrent use, and produce no side
// effects. Construction validates the key once, so a non-nil Cipher always
// holds a valid Key.
//
// Keystream alignment: the key repeats cyclically, advancing one position
// only when the current input character is an ASCII letter. Non-alphabetic
// characters are copied to the output verbatim and do not consume a key
// position. Output letters are always uppercase; input case is normalized
// away, so the operation is not case-preserving.
//
// Round-trip guarantee: for any valid key k and text t,
// Decrypt(Encrypt(t)) equals t with all letters upper-cased and all other
// characters unchanged.
type Cipher struct {
	key Key
}

// New creates a Cipher from raw key text.
//
// The key is parsed and validated via ParseKey; empty or non-alphabetic
// input yields a nil Cipher and a *errors.ValidationError.
//
// Example:
//
//	c, err := cipher.New("LEMON")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Encrypt("ATTACKATDAWN")) // Output: LXFOPVEFRNHR
func New(key string) (*Cipher, error) {
	k, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{key: k}, nil
}

// NewFromKey creates a Cipher from an existing Key value, re-validating it
// so that hand-constructed Key values cannot bypass the invariants.
func NewFromKey(key Key) (*Cipher, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return &Cipher{key: Key(strings.ToUpper(string(key)))}, nil
}

// Key returns the cipher's validated key.
func (c *Cipher) Key() Key {
	return c.key
}

// Encrypt encrypts plaintext with the cipher's key.
//
// Each alphabetic character p at key position k becomes
// alphabet.Letter((index(p) + shift(k)) mod 26); non-alphabetic characters
// pass through verbatim without advancing the key.
func (c *Cipher) Encrypt(plaintext string) string {
	return c.transform(plaintext, false)
}

// Decrypt decrypts ciphertext with the cipher's key, inverting Encrypt:
// alphabet.Letter((index(c) - shift(k) + 26) mod 26) per letter, with
// non-alphabetic characters passed through verbatim.
func (c *Cipher) Decrypt(ciphertext string) string {
	return c.transform(ciphertext, true)
}

func (c *Cipher) transform(text string, decrypt bool) string {
	var b strings.Builder
	b.Grow(len(text))

	keyPos := 0
	for _, r := range text {
		idx := alphabet.Index(r)
		if idx < 0 {
			b.WriteRune(r)
			continue
		}
		shift := c.key.ShiftAt(keyPos)
		if decrypt {
			shift = -shift
		}
		b.WriteByte(alphabet.Letter(idx + shift))
		keyPos++
	}
	return b.String()
}
