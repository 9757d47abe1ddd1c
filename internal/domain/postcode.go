package domain

import (
	"sort"
	"strings"
)

// OutwardCode derives the area key of a UK-style postcode.
//
// With a space the outward code is everything before the first space ("S1 2AB" -> "S1").
// Without one, everything from the first digit onward is dropped, so "S12AB" yields "S".
// This is a heuristic, not a postcode validator; it never fails.
func OutwardCode(raw string) string {
	pc := strings.ToUpper(strings.TrimSpace(raw))
	if i := strings.IndexByte(pc, ' '); i >= 0 {
		return pc[:i]
	}
	if i := strings.IndexFunc(pc, isDigit); i >= 0 {
		return pc[:i]
	}
	return pc
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// NormalizeArea trims and uppercases an area key.
func NormalizeArea(area string) string {
	return strings.ToUpper(strings.TrimSpace(area))
}

// NormalizeAreas normalizes keys, drops empty ones and removes duplicates.
// The result is sorted.
func NormalizeAreas(areas []string) []string {
	seen := make(map[string]struct{}, len(areas))
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		a = NormalizeArea(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// ParseAreaList splits the comma-separated area form ("s1, S2,,S35") into normalized keys.
func ParseAreaList(csv string) []string {
	return NormalizeAreas(strings.Split(csv, ","))
}
