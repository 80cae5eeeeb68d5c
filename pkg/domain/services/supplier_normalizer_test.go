package services

import "testing"

func TestSupplierNormalizer_Normalize(t *testing.T) {
	normalizer := NewSupplierNormalizer(DefaultSuffixTokens())

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Acme", "ACME"},
		{"inc suffix", "Acme Inc", "ACME"},
		{"inc suffix with period", "Acme Inc.", "ACME"},
		{"llc suffix lowercase", "acme llc", "ACME"},
		{"corporation suffix", "Acme CORPORATION", "ACME"},
		{"comma before suffix", "Acme, Inc", "ACME"},
		{"extra whitespace", "  Acme   Machining  ", "ACME MACHINING"},
		{"suffix mid-cleanup leaves rest intact", "Hoth Precision Corp", "HOTH PRECISION"},
		{"token inside a word is kept", "Cochran Machining", "COCHRAN MACHINING"},
		{"empty string", "", ""},
		{"only suffix", "LLC", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizer.Normalize(tc.input)
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSupplierNormalizer_SuffixAndCaseInsensitive(t *testing.T) {
	normalizer := NewSupplierNormalizer(DefaultSuffixTokens())

	variants := []string{"Acme Inc", "ACME", "acme llc", "Acme, Corp.", "acme"}
	want := normalizer.Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := normalizer.Normalize(v); got != want {
			t.Errorf("Expected %q and %q to normalize identically, got %q vs %q", variants[0], v, want, got)
		}
	}
}

func TestSupplierNormalizer_Idempotent(t *testing.T) {
	normalizer := NewSupplierNormalizer(DefaultSuffixTokens())

	inputs := []string{"Acme Inc", "  kessel  metals co. ", "ORBITAL-FAB, LLC", "", "plain name"}
	for _, input := range inputs {
		once := normalizer.Normalize(input)
		twice := normalizer.Normalize(once)
		if once != twice {
			t.Errorf("Expected idempotent normalization of %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSupplierNormalizer_ConfigurableTokens(t *testing.T) {
	normalizer := NewSupplierNormalizer([]string{"GMBH", "AG"})

	if got := normalizer.Normalize("Mustafar Metall GmbH"); got != "MUSTAFAR METALL" {
		t.Errorf("Expected custom token to be stripped, got %q", got)
	}
	// Default tokens are not stripped when a custom set is supplied.
	if got := normalizer.Normalize("Acme Inc"); got != "ACME INC" {
		t.Errorf("Expected INC to pass through with custom token set, got %q", got)
	}

	empty := NewSupplierNormalizer(nil)
	if got := empty.Normalize("Acme  Inc"); got != "ACME INC" {
		t.Errorf("Expected no suffix stripping with empty token set, got %q", got)
	}
}
