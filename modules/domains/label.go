package domains

import (
	"fmt"
	"strings"
)

// genericWords are business-entity words stripped from candidate names
// before probing, in both supported languages.
var genericWords = []string{
	"شركة",
	"مؤسسة",
	"مجموعة",
	"company",
	"group",
	"corp",
}

// transliterations maps known Arabic business terms to English equivalents.
// Applied as ordered literal substring replacements.
var transliterations = []struct {
	arabic  string
	english string
}{
	{"تقنية", "tech"},
	{"الابتكار", "innovation"},
	{"الرائد", "leader"},
	{"الرقمي", "digital"},
	{"سمارت", "smart"},
	{"سولوشن", "solution"},
	{"تكنولوجيا", "technology"},
	{"حلول", "solutions"},
}

// Normalize reduces a free-text candidate name to a bare DNS label.
// Unrecognized non-ASCII residue is replaced by a synthetic label of the
// form "company" plus a random three-digit number.
func (c *Checker) Normalize(name string) string {
	label := strings.ToLower(name)
	label = strings.ReplaceAll(label, " ", "")
	for _, word := range genericWords {
		label = strings.ReplaceAll(label, word, "")
	}
	label = strings.TrimSpace(label)

	if isASCII(label) {
		return label
	}

	for _, tr := range transliterations {
		label = strings.ReplaceAll(label, tr.arabic, tr.english)
	}
	if isASCII(label) {
		return label
	}

	return fmt.Sprintf("company%d", 100+c.intn(900))
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
