// seehuhn.de/go/dxf - a library for reading DXF drawing files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package mtext converts the text of TEXT and MTEXT entities to plain text.
//
// MTEXT values contain inline formatting codes, for example
// "{\fArial|b1;Bold} text\Pnext line".  [Strip] removes these codes,
// [DecodeSpecial] replaces the %%-codes and \U+XXXX escapes by the
// corresponding characters, and [Plain] does both.  TEXT values carry no
// formatting codes and are converted with [Decode].
package mtext

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	unicodeRegexp   = regexp.MustCompile(`\\U\+([0-9A-Fa-f]{4})`)
	paragraphRegexp = regexp.MustCompile(`\\P`)
	groupRegexp     = regexp.MustCompile(`\{\\[^;]*;([^}]*)}`)
	controlRegexp   = regexp.MustCompile(`\\[A-Za-z][^;]*;`)
	braceRegexp     = regexp.MustCompile(`[{}]`)
)

// Strip removes the inline formatting codes from an MTEXT value.
//
// Paragraph breaks (\P) become newlines, formatted groups {\X...;text} are
// replaced by their text, other control sequences of the form \X...; are
// removed, and finally all remaining braces are dropped.
func Strip(s string) string {
	if !strings.ContainsAny(s, `\{}`) {
		return s
	}
	s = paragraphRegexp.ReplaceAllLiteralString(s, "\n")
	s = groupRegexp.ReplaceAllString(s, "$1")
	s = controlRegexp.ReplaceAllLiteralString(s, "")
	s = braceRegexp.ReplaceAllLiteralString(s, "")
	return s
}

var special = strings.NewReplacer(
	"%%%", "%",
	"%%d", "°", "%%D", "°",
	"%%p", "±", "%%P", "±",
	"%%c", "⌀", "%%C", "⌀",
	"%%u", "", "%%U", "",
	"%%o", "", "%%O", "",
)

// DecodeSpecial replaces the special character codes %%d (degree sign),
// %%p (plus-minus sign), %%c (diameter sign) and %%% (percent sign) as well
// as \U+XXXX escapes by the corresponding characters.  The underline and
// overline toggles %%u and %%o are removed.
func DecodeSpecial(s string) string {
	if strings.Contains(s, `\U+`) {
		s = unicodeRegexp.ReplaceAllStringFunc(s, func(m string) string {
			r, err := strconv.ParseUint(m[3:], 16, 32)
			if err != nil || r > 0x10FFFF || r >= 0xD800 && r < 0xE000 {
				return m
			}
			return string(rune(r))
		})
	}
	if strings.Contains(s, "%%") {
		s = special.Replace(s)
	}
	return s
}

// Plain converts an MTEXT value to plain text.
// The result is in Unicode normalization form NFC.
func Plain(s string) string {
	// \U+ escapes must be decoded before the control sequences are removed.
	s = DecodeSpecial(s)
	s = Strip(s)
	return norm.NFC.String(s)
}

// Decode converts a TEXT or ATTRIB value to plain text.  Special character
// codes are replaced, braces and backslashes are kept as they are.
// The result is in Unicode normalization form NFC.
func Decode(s string) string {
	return norm.NFC.String(DecodeSpecial(s))
}
