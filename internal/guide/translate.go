package guide

import (
	"regexp"
	"strings"

	"github.com/kogoapp/kogo-server/internal/models"
)

var koreanRe = regexp.MustCompile(`[\x{AC00}-\x{D7A3}]`)

// Phrase dictionary for the common transit/direction vocabulary. Applied in
// order, each entry replacing every occurrence, so multi-character phrases
// must come before their substrings (정류장 before 역, 출구 before 구...).
var phraseDict = []struct{ ko, en string }{
	{"출발", "Depart"},
	{"도착", "Arrive"},
	{"직진", "Go straight"},
	{"우회전", "Turn right"},
	{"좌회전", "Turn left"},
	{"유턴", "Make a U-turn"},
	{"진입", "Enter"},
	{"종료", "End"},
	{"오른쪽", "right"},
	{"왼쪽", "left"},
	{"정류장", "Bus Stop"},
	{"정류소", "Bus Stop"},
	{"출구", "Exit"},
	{"역", "Station"},
	{"지하철", "Subway"},
	{"버스", "Bus"},
	{"도보", "Walk"},
	{"이동", "Go"},
	{"약 ", "About "},
	{"미터", "m"},
	{"킬로", "km"},
}

var (
	exitNumRe = regexp.MustCompile(`(?i)(?:출구|Exit)\s*(\d+)`)
	stopNumRe = regexp.MustCompile(`(?i)(?:정류장|Bus Stop)\s*#?(\d+)`)
	busNumRe  = regexp.MustCompile(`(?i)(?:버스|Bus)\s*(\d+)`)
)

// Translate maps a Korean guide instruction to English via the phrase
// dictionary and normalizes numbered landmarks (출구 8 → Exit 8, 정류장 02123
// → Bus Stop #02123). Text without Korean characters passes through as is.
func Translate(text string) string {
	if text == "" {
		return "Continue."
	}
	if !koreanRe.MatchString(text) {
		return text
	}

	out := text
	for _, p := range phraseDict {
		out = strings.ReplaceAll(out, p.ko, p.en)
	}

	out = exitNumRe.ReplaceAllString(out, "Exit $1")
	out = stopNumRe.ReplaceAllString(out, "Bus Stop #$1")
	out = busNumRe.ReplaceAllString(out, "Bus #$1")

	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}
	return out
}

var highlightRe = regexp.MustCompile(`(?i)\b(Exit\s*\d+|Bus\s*Stop\s*#?\d+|Bus\s*#?\d+|Station\s*\d*|#\d+)`)

// Highlight splits an instruction into ordered segments, tagging the landmark
// tokens the pattern matches. A string with no match comes back as a single
// non-highlighted segment.
func Highlight(text string) []models.GuideSegment {
	var parts []models.GuideSegment
	last := 0
	for _, loc := range highlightRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			parts = append(parts, models.GuideSegment{Text: text[last:loc[0]]})
		}
		parts = append(parts, models.GuideSegment{Text: text[loc[0]:loc[1]], Highlight: true})
		last = loc[1]
	}
	if last < len(text) {
		parts = append(parts, models.GuideSegment{Text: text[last:]})
	}
	if len(parts) == 0 {
		parts = append(parts, models.GuideSegment{Text: text})
	}
	return parts
}
