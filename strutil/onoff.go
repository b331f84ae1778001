package strutil

import "strings"

// OnOff is the result of parsing an on/off/toggle command word.
type OnOff int

const (
	ParseNone OnOff = iota
	ParseOn
	ParseOff
	ParseToggle
)

// ParseOnOff matches s case-insensitively against the customary command
// words. Custom on/off words, when non-empty, are matched in addition to the
// defaults.
func ParseOnOff(s string, on, off string) OnOff {
	switch {
	case strings.EqualFold(s, "toggle"):
		return ParseToggle
	case strings.EqualFold(s, "on"), on != "" && strings.EqualFold(s, on):
		return ParseOn
	case strings.EqualFold(s, "off"), off != "" && strings.EqualFold(s, off):
		return ParseOff
	}
	return ParseNone
}
