package password

import (
	"strings"
	"unicode/utf16"
)

// MaxScore is the highest score Score can return.
const MaxScore = 5

// Length thresholds that each add one point.
const (
	MinLength      = 6
	ExtendedLength = 10
)

// Score rates p from 0 to MaxScore. An empty password scores 0; otherwise
// one point is awarded for each of: length >= MinLength, length >=
// ExtendedLength, an ASCII uppercase letter, an ASCII digit, and any
// character outside [A-Za-z0-9].
//
// Length is counted in UTF-16 code units.
func Score(p string) int {
	if p == "" {
		return 0
	}

	c := check(p)
	score := 0
	for _, ok := range []bool{c.Length, c.ExtendedLength, c.Upper, c.Digit, c.Symbol} {
		if ok {
			score++
		}
	}
	return score
}

// Checks records which scoring criteria a password satisfies.
type Checks struct {
	Length         bool `json:"length"`
	ExtendedLength bool `json:"extended_length"`
	Upper          bool `json:"upper"`
	Digit          bool `json:"digit"`
	Symbol         bool `json:"symbol"`
}

func check(p string) Checks {
	var c Checks
	n := Length(p)
	c.Length = n >= MinLength
	c.ExtendedLength = n >= ExtendedLength
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= '0' && r <= '9':
			c.Digit = true
		case r >= 'a' && r <= 'z':
		default:
			c.Symbol = true
		}
	}
	return c
}

// Length counts p in UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice.
func Length(p string) int {
	n := 0
	for _, r := range p {
		if utf16.RuneLen(r) == 2 {
			n += 2
			continue
		}
		n++
	}
	return n
}

// Label returns the display label for a score.
func Label(score int) string {
	switch score {
	case 0:
		return ""
	case 1:
		return "Very Weak"
	case 2:
		return "Weak"
	case 3:
		return "Fair"
	case 4:
		return "Good"
	case 5:
		return "Strong"
	default:
		return "Weak"
	}
}

// Tone is the color band of the strength meter.
type Tone string

const (
	ToneRed    Tone = "red"
	ToneOrange Tone = "orange"
	ToneGreen  Tone = "green"
)

// ToneFor maps a score onto the meter color: 0-1 red, 2-3 orange, 4-5 green.
func ToneFor(score int) Tone {
	switch {
	case score <= 1:
		return ToneRed
	case score <= 3:
		return ToneOrange
	default:
		return ToneGreen
	}
}

// Percent is the filled share of the strength meter.
func Percent(score int) int {
	if score <= 0 {
		return 0
	}
	if score >= MaxScore {
		return 100
	}
	return score * 100 / MaxScore
}

// Meter renders a fixed-width text bar for score.
func Meter(score, width int) string {
	if width <= 0 {
		return ""
	}
	filled := Percent(score) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Assessment bundles everything a UI needs to render password strength.
type Assessment struct {
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Label  string `json:"label"`
	Tone   Tone   `json:"tone"`
	Checks Checks `json:"checks"`
}

// Assess scores p and derives its label, tone and per-criterion checks.
func Assess(p string) Assessment {
	score := Score(p)
	a := Assessment{
		Score: score,
		Max:   MaxScore,
		Label: Label(score),
		Tone:  ToneFor(score),
	}
	if p != "" {
		a.Checks = check(p)
	}
	return a
}
