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

package model_test

import (
	"strings"
	"testing"

	"cifra.dev/vigenere/vigcore/model"
)

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		models  []*AttackRecord
		wantErr bool
		// substrings the combined error must mention
		wantIn []string
	}{
		{
			name:    "empty slice",
			models:  nil,
			wantErr: false,
		},
		{
			name: "all valid",
			models: []*AttackRecord{
				{Label: "orwell", Corpus: "ITWAS"},
				{Label: "drummond", Corpus: "NOMEIO"},
			},
			wantErr: false,
		},
		{
			name: "single invalid",
			models: []*AttackRecord{
				{Label: "orwell", Corpus: "ITWAS"},
				{Corpus: "NOMEIO"},
			},
			wantErr: true,
			wantIn:  []string{"model[1]", "AttackRecord"},
		},
		{
			name: "multiple invalid reports all",
			models: []*AttackRecord{
				{},
				{Label: "orwell", Corpus: "ITWAS"},
				{Label: "drummond"},
			},
			wantErr: true,
			wantIn:  []string{"model[0]", "model[2]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			for _, sub := range tt.wantIn {
				if !strings.Contains(err.Error(), sub) {
					t.Errorf("ValidateAll() error %q should mention %q", err, sub)
				}
			}
		})
	}
}

func TestFilterZero(t *testing.T) {
	models := []*AttackRecord{
		{},
		{Label: "orwell", Corpus: "ITWAS"},
		{},
		{Label: "drummond", Corpus: "NOMEIO"},
	}

	filtered := model.FilterZero(models)

	if len(filtered) != 2 {
		t.Fatalf("FilterZero() returned %d models, want 2", len(filtered))
	}
	if filtered[0].Label != "orwell" || filtered[1].Label != "drummond" {
		t.Errorf("FilterZero() = %+v, order not preserved", filtered)
	}
}

func TestFilterZero_AllZero(t *testing.T) {
	filtered := model.FilterZero([]*AttackRecord{{}, {}})
	if filtered == nil {
		t.Fatal("FilterZero() = nil, want empty non-nil slice")
	}
	if len(filtered) != 0 {
		t.Errorf("FilterZero() returned %d models, want 0", len(filtered))
	}
}

func TestMustValidate(t *testing.T) {
	valid := &AttackRecord{Label: "orwell", Corpus: "ITWAS"}

	got := model.MustValidate(valid)
	if got != valid {
		t.Errorf("MustValidate() = %+v, want %+v", got, valid)
	}
}

func TestMustValidate_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustValidate() should panic on invalid model")
		}
	}()
	model.MustValidate(&AttackRecord{})
}

func TestSafeString(t *testing.T) {
	m := &AttackRecord{Label: "orwell", Corpus: "ITWAS", Key: "OBLIVION"}

	safe := model.SafeString(m, false)
	if strings.Contains(safe, "OBLIVION") {
		t.Errorf("SafeString(unsafe=false) = %q leaks key material", safe)
	}

	unsafe := model.SafeString(m, true)
	if !strings.Contains(unsafe, "OBLIVION") {
		t.Errorf("SafeString(unsafe=true) = %q should include full details", unsafe)
	}
}

func TestToJSON_FromJSON(t *testing.T) {
	orig := AttackRecord{Label: "orwell", Corpus: "ITWAS", Key: "OBLIVION"}

	data, err := model.ToJSON(&orig)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded AttackRecord
	decodedPtr := &decoded
	if err := model.FromJSON(data, &decodedPtr); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if decoded != orig {
		t.Errorf("FromJSON() = %+v, want %+v", decoded, orig)
	}
}

func TestToJSON_RejectsInvalid(t *testing.T) {
	if _, err := model.ToJSON(&AttackRecord{}); err == nil {
		t.Error("ToJSON() should fail on invalid model")
	}
}

func TestToYAML_FromYAML(t *testing.T) {
	orig := AttackRecord{Label: "drummond", Corpus: "NOMEIO", Key: "SENHA"}

	data, err := model.ToYAML(&orig)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var decoded AttackRecord
	decodedPtr := &decoded
	if err := model.FromYAML(data, &decodedPtr); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if decoded != orig {
		t.Errorf("FromYAML() = %+v, want %+v", decoded, orig)
	}
}

func TestToYAML_RejectsInvalid(t *testing.T) {
	if _, err := model.ToYAML(&AttackRecord{}); err == nil {
		t.Error("ToYAML() should fail on invalid model")
	}
}

func TestFromJSON_RejectsInvalidPayload(t *testing.T) {
	var decoded AttackRecord
	decodedPtr := &decoded
	if err := model.FromJSON([]byte(`{"Corpus":"ITWAS"}`), &decodedPtr); err == nil {
		t.Error("FromJSON() should fail when decoded model is invalid")
	}
	if err := model.FromJSON([]byte(`{not json`), &decodedPtr); err == nil {
		t.Error("FromJSON() should fail on malformed input")
	}
}

func TestClone(t *testing.T) {
	orig := &AttackRecord{Label: "orwell", Corpus: "ITWAS", Key: "OBLIVION"}

	clone, err := model.Clone(orig)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if *clone != *orig {
		t.Errorf("Clone() = %+v, want %+v", clone, orig)
	}

	// Mutating the clone must not touch the original.
	clone.Key = "MELON"
	if orig.Key != "OBLIVION" {
		t.Error("mutating clone changed the original")
	}
}

func TestClone_FailsOnInvalid(t *testing.T) {
	if _, err := model.Clone(&AttackRecord{}); err == nil {
		t.Error("Clone() should fail when the model cannot marshal")
	}
}

func TestEqual(t *testing.T) {
	a := &AttackRecord{Label: "orwell", Corpus: "ITWAS"}
	b := &AttackRecord{Label: "orwell", Corpus: "ITWAS"}
	c := &AttackRecord{Label: "orwell", Corpus: "NOMEIO"}

	if !model.Equal(a, b) {
		t.Error("Equal() = false for identical models")
	}
	if model.Equal(a, c) {
		t.Error("Equal() = true for differing models")
	}
}

func TestEqual_InvalidModelsNotEqual(t *testing.T) {
	// Invalid models fail to marshal; Equal reports false rather than guessing.
	if model.Equal(&AttackRecord{}, &AttackRecord{}) {
		t.Error("Equal() = true for unmarshalable models, want false")
	}
}
