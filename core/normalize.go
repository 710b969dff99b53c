package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tyaso777/monthly-file-diff/schema"
)

// NormalizeRelPath derives the period-independent identity key for a file.
// It replaces the first non-overlapping occurrence of the period's four-digit
// year, two-digit month and two-digit day with the corresponding placeholder,
// in that fixed order. Only tokens present in the original template are
// substituted back. Matching is substring-exact; a path without any token
// keys under its own literal text.
//
// Backslashes are normalized to forward slashes first so Windows-style
// relative paths group with their slash-separated equivalents.
func NormalizeRelPath(relPath string, p schema.Period, ph Placeholders) string {
	key := strings.ReplaceAll(relPath, `\`, "/")
	if ph.Year {
		key = strings.Replace(key, strconv.Itoa(p.Year), YearToken, 1)
	}
	if ph.Month {
		key = strings.Replace(key, fmt.Sprintf("%02d", int(p.Month)), MonthToken, 1)
	}
	if ph.Day && p.HasDay() {
		key = strings.Replace(key, fmt.Sprintf("%02d", p.Day), DayToken, 1)
	}
	return key
}
