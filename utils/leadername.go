package utils

import (
	"strings"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLeaderName canonicalizes a declared leader name so that
// "monkey d. luffy", "Monkey D. Luffy" and accented spellings all group
// together in leader statistics.
func NormalizeLeaderName(name string) string {
	name = unidecode.Unidecode(strings.TrimSpace(name))
	name = strings.Join(strings.Fields(name), " ")
	// a Caser is stateful, so build one per call
	return cases.Title(language.English).String(strings.ToLower(name))
}
