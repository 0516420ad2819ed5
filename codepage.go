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

package dxf

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codePages maps $DWGCODEPAGE values to character encodings.
var codePages = map[string]*charmap.Charmap{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"DOS437":    charmap.CodePage437,
	"DOS850":    charmap.CodePage850,
	"DOS852":    charmap.CodePage852,
	"DOS855":    charmap.CodePage855,
	"DOS860":    charmap.CodePage860,
	"DOS863":    charmap.CodePage863,
	"DOS865":    charmap.CodePage865,
	"DOS866":    charmap.CodePage866,
	"ISO8859-1": charmap.ISO8859_1,
	"ISO8859-2": charmap.ISO8859_2,
	"ISO8859-5": charmap.ISO8859_5,
	"ISO8859-7": charmap.ISO8859_7,
	"ISO8859-9": charmap.ISO8859_9,
}

// decoderFor returns the decoder for a $DWGCODEPAGE value.
// Unknown code pages are decoded as Windows-1252.
func decoderFor(codePage string) *encoding.Decoder {
	if cm, ok := codePages[strings.ToUpper(strings.TrimSpace(codePage))]; ok {
		return cm.NewDecoder()
	}
	return charmap.Windows1252.NewDecoder()
}

// sniffCodePage finds the value of $DWGCODEPAGE without tokenizing the
// whole file.  The empty string is returned if the variable is not found
// within the HEADER section.
func sniffCodePage(data []byte) string {
	lines := bytes.Split(data, []byte("\n"))
	for i := 0; i+1 < len(lines); i += 2 {
		code := string(bytes.TrimSpace(lines[i]))
		value := string(bytes.TrimSpace(lines[i+1]))
		if code == "0" && value == "ENDSEC" {
			return ""
		}
		if code != "9" || value != "$DWGCODEPAGE" {
			continue
		}
		if i+3 < len(lines) && string(bytes.TrimSpace(lines[i+2])) == "3" {
			return string(bytes.TrimSpace(lines[i+3]))
		}
		return ""
	}
	return ""
}

// decodeBytes converts the raw bytes of a DXF file to a string.  Valid
// UTF-8 input is used unchanged.  Otherwise the text is decoded using the
// code page given in the file header.
func decodeBytes(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	out, err := decoderFor(sniffCodePage(data)).Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}
