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
	"testing"

	"cifra.dev/vigenere/vigcore/errors"
	"cifra.dev/vigenere/vigcore/model/cipher"
	"cifra.dev/vigenere/vigcore/model/language"
)

// englishCorpus is long enough (811 letters) for the statistics to settle.
const englishCorpus = "It was a bright cold day in April and the clocks were striking thirteen " +
	"Winston Smith his chin nuzzled into his breast in an effort to escape the vile wind " +
	"slipped quickly through the glass doors of Victory Mansions though not quickly enough " +
	"to prevent a swirl of gritty dust from entering along with him The hallway smelt of " +
	"boiled cabbage and old rag mats At one end of it a coloured poster too large for indoor " +
	"display had been tacked to the wall It depicted simply an enormous face more than a " +
	"metre wide the face of a man of about forty five with a heavy black moustache and " +
	"ruggedly handsome features Winston made for the stairs It was no use trying the lift " +
	"Even at the best of times it was seldom working and at present the electric current " +
	"was cut off during daylight hours It was part of the economy drive in preparation for " +
	"Hate Week The flat was seven flights up and Winston who was thirty nine and had a " +
	"varicose ulcer above his right ankle went slowly resting several times on the way"

// portugueseCorpus carries 620 letters of accent-free Portuguese prose.
const portugueseCorpus = "No meio do caminho tinha uma pedra tinha uma pedra no meio do caminho era uma vez um " +
	"pais tropical abencoado por deus e bonito por natureza a lingua portuguesa e falada por milhoes " +
	"de pessoas em varios continentes do mundo sendo a lingua oficial de paises como brasil portugal " +
	"angola mocambique cabo verde guine bissau sao tome e principe e timor leste a literatura " +
	"brasileira conta com grandes nomes como machado de assis clarice lispector guimaraes rosa e " +
	"carlos drummond de andrade que escreveram obras fundamentais para a cultura do pais alem disso " +
	"a musica popular brasileira encanta o mundo com seus ritmos e melodias que misturam influencias " +
	"africanas europeias e indigenas formando uma identidade cultural unica e rica em diversidade"

func encrypt(t *testing.T, key, plaintext string) string {
	t.Helper()
	c, err := cipher.New(key)
	if err != nil {
		t.Fatalf("cipher.New(%q) error = %v", key, err)
	}
	return c.Encrypt(plaintext)
}

func TestNewAnalyser_WorkingCopy(t *testing.T) {
	a := NewAnalyser("Ab c. 12 xY!", language.LanguageEnglish)
	if got := a.WorkingCopy(); got != "ABCXY" {
		t.Errorf("WorkingCopy() = %q, want %q", got, "ABCXY")
	}
	if got := a.Language(); got != language.LanguageEnglish {
		t.Errorf("Language() = %v, want %v", got, language.LanguageEnglish)
	}
}

func TestNewAnalyser_UnknownLanguageFallsBack(t *testing.T) {
	a := NewAnalyser("ABC", language.Language(99))
	if got := a.Language(); got != language.DefaultLanguage {
		t.Errorf("Language() = %v, want default %v", got, language.DefaultLanguage)
	}
}

func TestEstimateKeyLength_English(t *testing.T) {
	ct := encrypt(t, "OBLIVION", englishCorpus)
	a := NewAnalyser(ct, language.LanguageEnglish)

	if got := len(a.WorkingCopy()); got != 811 {
		t.Fatalf("WorkingCopy() has %d letters, want 811", got)
	}

	got, scores, err := a.EstimateKeyLength(20)
	if err != nil {
		t.Fatalf("EstimateKeyLength() error = %v", err)
	}
	if got != 8 {
		t.Errorf("EstimateKeyLength() = %d, want 8", got)
	}
	if len(scores) != 20 {
		t.Errorf("len(scores) = %d, want 20", len(scores))
	}
	if err := scores.Validate(); err != nil {
		t.Errorf("scores.Validate() error = %v", err)
	}
	best, ok := scores.Best()
	if !ok || best.Length != got {
		t.Errorf("scores.Best() = %+v, %v; want length %d", best, ok, got)
	}
}

func TestEstimateKeyLength_Portuguese(t *testing.T) {
	ct := encrypt(t, "SENHA", portugueseCorpus)
	a := NewAnalyser(ct, language.LanguagePortuguese)

	if got := len(a.WorkingCopy()); got != 620 {
		t.Fatalf("WorkingCopy() has %d letters, want 620", got)
	}

	got, _, err := a.EstimateKeyLength(20)
	if err != nil {
		t.Fatalf("EstimateKeyLength() error = %v", err)
	}
	if got != 5 {
		t.Errorf("EstimateKeyLength() = %d, want 5", got)
	}
}

func TestEstimateKeyLength_InvalidBound(t *testing.T) {
	a := NewAnalyser("ABC", language.LanguageEnglish)

	for _, maxLen := range []int{0, -1} {
		_, _, err := a.EstimateKeyLength(maxLen)
		if err == nil {
			t.Errorf("EstimateKeyLength(%d) = nil error, want error", maxLen)
			continue
		}
		if _, ok := err.(*errors.ValidationError); !ok {
			t.Errorf("EstimateKeyLength(%d) error type = %T, want *errors.ValidationError", maxLen, err)
		}
	}
}

func TestEstimateKeyLength_TieResolvesToShortest(t *testing.T) {
	// All-same-letter text scores IC 1 at every length; the first strict
	// maximum in ascending order is length 1.
	a := NewAnalyser("AAAAAAAAAAAAAAAA", language.LanguageEnglish)
	got, _, err := a.EstimateKeyLength(8)
	if err != nil {
		t.Fatalf("EstimateKeyLength() error = %v", err)
	}
	if got != 1 {
		t.Errorf("EstimateKeyLength() = %d, want 1", got)
	}
}

func TestRecoverKey_English(t *testing.T) {
	ct := encrypt(t, "OBLIVION", englishCorpus)
	a := NewAnalyser(ct, language.LanguageEnglish)

	key, metrics, err := a.RecoverKey(8)
	if err != nil {
		t.Fatalf("RecoverKey() error = %v", err)
	}
	if key != cipher.Key("OBLIVION") {
		t.Errorf("RecoverKey() = %q, want OBLIVION", key)
	}
	if len(metrics) != 8 {
		t.Fatalf("len(metrics) = %d, want 8", len(metrics))
	}
	for i, m := range metrics {
		if m.Position != i {
			t.Errorf("metrics[%d].Position = %d, want %d", i, m.Position, i)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("metrics[%d].Validate() error = %v", i, err)
		}
	}
}

func TestRecoverKey_Portuguese(t *testing.T) {
	ct := encrypt(t, "SENHA", portugueseCorpus)
	a := NewAnalyser(ct, language.LanguagePortuguese)

	key, _, err := a.RecoverKey(5)
	if err != nil {
		t.Fatalf("RecoverKey() error = %v", err)
	}
	if key != cipher.Key("SENHA") {
		t.Errorf("RecoverKey() = %q, want SENHA", key)
	}
}

func TestRecoverKey_InvalidLength(t *testing.T) {
	a := NewAnalyser("ABC", language.LanguageEnglish)

	_, _, err := a.RecoverKey(0)
	if err == nil {
		t.Fatal("RecoverKey(0) = nil error, want error")
	}
	if _, ok := err.(*errors.ValidationError); !ok {
		t.Errorf("RecoverKey(0) error type = %T, want *errors.ValidationError", err)
	}
}

func TestRecoverKey_DecryptsBackToPlaintext(t *testing.T) {
	ct := encrypt(t, "OBLIVION", englishCorpus)
	a := NewAnalyser(ct, language.LanguageEnglish)

	key, _, err := a.RecoverKey(8)
	if err != nil {
		t.Fatalf("RecoverKey() error = %v", err)
	}
	c, err := cipher.NewFromKey(key)
	if err != nil {
		t.Fatalf("cipher.NewFromKey() error = %v", err)
	}
	want := encrypt(t, "A", englishCorpus) // identity key uppercases only
	if got := c.Decrypt(ct); got != want {
		t.Errorf("Decrypt with recovered key differs from plaintext")
	}
}

func TestAnalyse_EndToEnd(t *testing.T) {
	tests := []struct {
		name    string
		lang    language.Language
		key     string
		corpus  string
		wantLen int
	}{
		{"english corpus", language.LanguageEnglish, "OBLIVION", englishCorpus, 8},
		{"portuguese corpus", language.LanguagePortuguese, "SENHA", portugueseCorpus, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := encrypt(t, tt.key, tt.corpus)
			a := NewAnalyser(ct, tt.lang)

			report, err := a.Analyse(20)
			if err != nil {
				t.Fatalf("Analyse() error = %v", err)
			}
			if report.KeyLength != tt.wantLen {
				t.Errorf("KeyLength = %d, want %d", report.KeyLength, tt.wantLen)
			}
			if report.Key != cipher.Key(tt.key) {
				t.Errorf("Key = %q, want %q", report.Key, tt.key)
			}
			if report.Language != tt.lang {
				t.Errorf("Language = %v, want %v", report.Language, tt.lang)
			}
			if len(report.LengthScores) != 20 {
				t.Errorf("len(LengthScores) = %d, want 20", len(report.LengthScores))
			}
			if len(report.Columns) != tt.wantLen {
				t.Errorf("len(Columns) = %d, want %d", len(report.Columns), tt.wantLen)
			}
			if err := report.Validate(); err != nil {
				t.Errorf("report.Validate() error = %v", err)
			}
		})
	}
}

func TestAnalyse_InvalidBound(t *testing.T) {
	a := NewAnalyser("ABC", language.LanguageEnglish)
	if _, err := a.Analyse(0); err == nil {
		t.Error("Analyse(0) = nil error, want error")
	}
}

func TestAnalyser_ConcurrentUse(t *testing.T) {
	ct := encrypt(t, "SENHA", portugueseCorpus)
	a := NewAnalyser(ct, language.LanguagePortuguese)

	done := make(chan cipher.Key, 4)
	for i := 0; i < 4; i++ {
		go func() {
			report, err := a.Analyse(20)
			if err != nil {
				done <- ""
				return
			}
			done <- report.Key
		}()
	}
	for i := 0; i < 4; i++ {
		if got := <-done; got != cipher.Key("SENHA") {
			t.Errorf("concurrent Analyse() key = %q, want SENHA", got)
		}
	}
}
