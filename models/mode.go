package models

import "strings"

// Mode is the vocabulary constraint applied to a generated comment
type Mode string

const (
	ModeNormal      Mode = "normal"
	ModeConstrained Mode = "constrained"
	ModeAcademic    Mode = "academic"
)

// Modes lists every known mode in display order
var Modes = []Mode{ModeNormal, ModeConstrained, ModeAcademic}

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	switch m {
	case ModeNormal, ModeConstrained, ModeAcademic:
		return true
	}
	return false
}

// ParseMode maps s onto a known mode, falling back to normal
func ParseMode(s string) Mode {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m
	}
	return ModeNormal
}
