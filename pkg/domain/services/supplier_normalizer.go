package services

import (
	"regexp"
	"strings"
)

// SupplierNormalizer canonicalizes free-text supplier names into a stable
// join key. Two raw names differing only by case, punctuation, or a
// recognized corporate suffix normalize identically.
type SupplierNormalizer struct {
	suffixPattern *regexp.Regexp
	spacePattern  *regexp.Regexp
}

// DefaultSuffixTokens returns the standard set of corporate-suffix tokens
// stripped during normalization.
func DefaultSuffixTokens() []string {
	return []string{"INC", "LLC", "CO", "COMPANY", "CORP", "CORPORATION"}
}

// NewSupplierNormalizer creates a normalizer that strips the given suffix
// tokens. Tokens are matched case-insensitively as whole words. An empty
// token list disables suffix stripping but keeps case folding and
// whitespace collapsing.
func NewSupplierNormalizer(suffixTokens []string) *SupplierNormalizer {
	n := &SupplierNormalizer{
		spacePattern: regexp.MustCompile(`\s+`),
	}

	var escaped []string
	for _, token := range suffixTokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		escaped = append(escaped, regexp.QuoteMeta(strings.ToUpper(token)))
	}
	if len(escaped) > 0 {
		n.suffixPattern = regexp.MustCompile(`\b(` + strings.Join(escaped, "|") + `)\b`)
	}

	return n
}

// Normalize returns the canonical key for a raw supplier name. It is
// deterministic, total, and idempotent: unmapped suffixes pass through
// unchanged and an already-canonical name maps to itself.
func (n *SupplierNormalizer) Normalize(name string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(name))
	if n.suffixPattern != nil {
		cleaned = n.suffixPattern.ReplaceAllString(cleaned, "")
	}
	cleaned = n.spacePattern.ReplaceAllString(cleaned, " ")
	return strings.Trim(cleaned, " ,.-")
}
