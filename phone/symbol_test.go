package phone

import "testing"

func TestAllSymbols(t *testing.T) {
	all := AllSymbols()
	if len(all) != 41 {
		t.Fatalf("len(AllSymbols()) = %d, want 41", len(all))
	}
	seen := make(map[Symbol]bool, len(all))
	for _, s := range all {
		if seen[s] {
			t.Errorf("duplicate symbol %q", s)
		}
		seen[s] = true
		if !IsSymbol(rune(s)) {
			t.Errorf("IsSymbol(%q) = false", s)
		}
	}
}

func TestIsVowel(t *testing.T) {
	nVowels := 0
	for _, s := range AllSymbols() {
		if IsVowel(rune(s)) {
			nVowels++
		}
	}
	if nVowels != 7 {
		t.Errorf("inventory has %d vowels, want 7", nVowels)
	}

	for _, r := range "ieE3auo" {
		if !IsVowel(r) {
			t.Errorf("IsVowel(%q) = false", r)
		}
	}
	for _, r := range "kS7!xA " {
		if IsVowel(r) {
			t.Errorf("IsVowel(%q) = true", r)
		}
	}
}

func TestValidForm(t *testing.T) {
	tests := []struct {
		form string
		want bool
	}{
		{"", true},
		{"zuma", true},
		{"trEd", true},
		{"7ai3n", true},
		{"on~i", true},          // combined sound
		{"k\"ana", true},        // modified sound
		{"mok$o", true},
		{"hEd mEn", true},       // space-separated compound
		{"stein", true},
		{"tʃa", false},          // IPA, not ASJPcode
		{"ha-nd", false},
		{"Atem", false},         // 'A' is not in the inventory
	}
	for _, tt := range tests {
		if got := ValidForm(tt.form); got != tt.want {
			t.Errorf("ValidForm(%q) = %v, want %v", tt.form, got, tt.want)
		}
	}
}
