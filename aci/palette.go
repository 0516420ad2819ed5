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


package aci

// palette holds the red, green and blue components of the 256 colour
// indices.  Index 0 (by block) is shown as black, 7 is white.
var palette = [256][3]uint8{
	{0x00, 0x00, 0x00}, {0xff, 0x00, 0x00}, {0xff, 0xff, 0x00}, {0x00, 0xff, 0x00}, // 0-3
	{0x00, 0xff, 0xff}, {0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0xff, 0xff, 0xff}, // 4-7
	{0x41, 0x41, 0x41}, {0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0xff, 0xaa, 0xaa}, // 8-11
	{0xbd, 0x00, 0x00}, {0xbd, 0x7e, 0x7e}, {0x81, 0x00, 0x00}, {0x81, 0x56, 0x56}, // 12-15
	{0x68, 0x00, 0x00}, {0x68, 0x45, 0x45}, {0x4f, 0x00, 0x00}, {0x4f, 0x35, 0x35}, // 16-19
	{0xff, 0x3f, 0x00}, {0xff, 0xbf, 0xaa}, {0xbd, 0x2e, 0x00}, {0xbd, 0x8d, 0x7e}, // 20-23
	{0x81, 0x1f, 0x00}, {0x81, 0x60, 0x56}, {0x68, 0x19, 0x00}, {0x68, 0x4e, 0x45}, // 24-27
	{0x4f, 0x13, 0x00}, {0x4f, 0x3b, 0x35}, {0xff, 0x7f, 0x00}, {0xff, 0xd4, 0xaa}, // 28-31
	{0xbd, 0x5e, 0x00}, {0xbd, 0x9d, 0x7e}, {0x81, 0x40, 0x00}, {0x81, 0x6b, 0x56}, // 32-35
	{0x68, 0x34, 0x00}, {0x68, 0x56, 0x45}, {0x4f, 0x27, 0x00}, {0x4f, 0x42, 0x35}, // 36-39
	{0xff, 0xbf, 0x00}, {0xff, 0xea, 0xaa}, {0xbd, 0x8d, 0x00}, {0xbd, 0xad, 0x7e}, // 40-43
	{0x81, 0x60, 0x00}, {0x81, 0x76, 0x56}, {0x68, 0x4e, 0x00}, {0x68, 0x5f, 0x45}, // 44-47
	{0x4f, 0x3b, 0x00}, {0x4f, 0x49, 0x35}, {0xff, 0xff, 0x00}, {0xff, 0xff, 0xaa}, // 48-51
	{0xbd, 0xbd, 0x00}, {0xbd, 0xbd, 0x7e}, {0x81, 0x81, 0x00}, {0x81, 0x81, 0x56}, // 52-55
	{0x68, 0x68, 0x00}, {0x68, 0x68, 0x45}, {0x4f, 0x4f, 0x00}, {0x4f, 0x4f, 0x35}, // 56-59
	{0xbf, 0xff, 0x00}, {0xea, 0xff, 0xaa}, {0x8d, 0xbd, 0x00}, {0xad, 0xbd, 0x7e}, // 60-63
	{0x60, 0x81, 0x00}, {0x76, 0x81, 0x56}, {0x4e, 0x68, 0x00}, {0x5f, 0x68, 0x45}, // 64-67
	{0x3b, 0x4f, 0x00}, {0x49, 0x4f, 0x35}, {0x7f, 0xff, 0x00}, {0xd4, 0xff, 0xaa}, // 68-71
	{0x5e, 0xbd, 0x00}, {0x9d, 0xbd, 0x7e}, {0x40, 0x81, 0x00}, {0x6b, 0x81, 0x56}, // 72-75
	{0x34, 0x68, 0x00}, {0x56, 0x68, 0x45}, {0x27, 0x4f, 0x00}, {0x42, 0x4f, 0x35}, // 76-79
	{0x3f, 0xff, 0x00}, {0xbf, 0xff, 0xaa}, {0x2e, 0xbd, 0x00}, {0x8d, 0xbd, 0x7e}, // 80-83
	{0x1f, 0x81, 0x00}, {0x60, 0x81, 0x56}, {0x19, 0x68, 0x00}, {0x4e, 0x68, 0x45}, // 84-87
	{0x13, 0x4f, 0x00}, {0x3b, 0x4f, 0x35}, {0x00, 0xff, 0x00}, {0xaa, 0xff, 0xaa}, // 88-91
	{0x00, 0xbd, 0x00}, {0x7e, 0xbd, 0x7e}, {0x00, 0x81, 0x00}, {0x56, 0x81, 0x56}, // 92-95
	{0x00, 0x68, 0x00}, {0x45, 0x68, 0x45}, {0x00, 0x4f, 0x00}, {0x35, 0x4f, 0x35}, // 96-99
	{0x00, 0xff, 0x3f}, {0xaa, 0xff, 0xbf}, {0x00, 0xbd, 0x2e}, {0x7e, 0xbd, 0x8d}, // 100-103
	{0x00, 0x81, 0x1f}, {0x56, 0x81, 0x60}, {0x00, 0x68, 0x19}, {0x45, 0x68, 0x4e}, // 104-107
	{0x00, 0x4f, 0x13}, {0x35, 0x4f, 0x3b}, {0x00, 0xff, 0x7f}, {0xaa, 0xff, 0xd4}, // 108-111
	{0x00, 0xbd, 0x5e}, {0x7e, 0xbd, 0x9d}, {0x00, 0x81, 0x40}, {0x56, 0x81, 0x6b}, // 112-115
	{0x00, 0x68, 0x34}, {0x45, 0x68, 0x56}, {0x00, 0x4f, 0x27}, {0x35, 0x4f, 0x42}, // 116-119
	{0x00, 0xff, 0xbf}, {0xaa, 0xff, 0xea}, {0x00, 0xbd, 0x8d}, {0x7e, 0xbd, 0xad}, // 120-123
	{0x00, 0x81, 0x60}, {0x56, 0x81, 0x76}, {0x00, 0x68, 0x4e}, {0x45, 0x68, 0x5f}, // 124-127
	{0x00, 0x4f, 0x3b}, {0x35, 0x4f, 0x49}, {0x00, 0xff, 0xff}, {0xaa, 0xff, 0xff}, // 128-131
	{0x00, 0xbd, 0xbd}, {0x7e, 0xbd, 0xbd}, {0x00, 0x81, 0x81}, {0x56, 0x81, 0x81}, // 132-135
	{0x00, 0x68, 0x68}, {0x45, 0x68, 0x68}, {0x00, 0x4f, 0x4f}, {0x35, 0x4f, 0x4f}, // 136-139
	{0x00, 0xbf, 0xff}, {0xaa, 0xea, 0xff}, {0x00, 0x8d, 0xbd}, {0x7e, 0xad, 0xbd}, // 140-143
	{0x00, 0x60, 0x81}, {0x56, 0x76, 0x81}, {0x00, 0x4e, 0x68}, {0x45, 0x5f, 0x68}, // 144-147
	{0x00, 0x3b, 0x4f}, {0x35, 0x49, 0x4f}, {0x00, 0x7f, 0xff}, {0xaa, 0xd4, 0xff}, // 148-151
	{0x00, 0x5e, 0xbd}, {0x7e, 0x9d, 0xbd}, {0x00, 0x40, 0x81}, {0x56, 0x6b, 0x81}, // 152-155
	{0x00, 0x34, 0x68}, {0x45, 0x56, 0x68}, {0x00, 0x27, 0x4f}, {0x35, 0x42, 0x4f}, // 156-159
	{0x00, 0x3f, 0xff}, {0xaa, 0xbf, 0xff}, {0x00, 0x2e, 0xbd}, {0x7e, 0x8d, 0xbd}, // 160-163
	{0x00, 0x1f, 0x81}, {0x56, 0x60, 0x81}, {0x00, 0x19, 0x68}, {0x45, 0x4e, 0x68}, // 164-167
	{0x00, 0x13, 0x4f}, {0x35, 0x3b, 0x4f}, {0x00, 0x00, 0xff}, {0xaa, 0xaa, 0xff}, // 168-171
	{0x00, 0x00, 0xbd}, {0x7e, 0x7e, 0xbd}, {0x00, 0x00, 0x81}, {0x56, 0x56, 0x81}, // 172-175
	{0x00, 0x00, 0x68}, {0x45, 0x45, 0x68}, {0x00, 0x00, 0x4f}, {0x35, 0x35, 0x4f}, // 176-179
	{0x3f, 0x00, 0xff}, {0xbf, 0xaa, 0xff}, {0x2e, 0x00, 0xbd}, {0x8d, 0x7e, 0xbd}, // 180-183
	{0x1f, 0x00, 0x81}, {0x60, 0x56, 0x81}, {0x19, 0x00, 0x68}, {0x4e, 0x45, 0x68}, // 184-187
	{0x13, 0x00, 0x4f}, {0x3b, 0x35, 0x4f}, {0x7f, 0x00, 0xff}, {0xd4, 0xaa, 0xff}, // 188-191
	{0x5e, 0x00, 0xbd}, {0x9d, 0x7e, 0xbd}, {0x40, 0x00, 0x81}, {0x6b, 0x56, 0x81}, // 192-195
	{0x34, 0x00, 0x68}, {0x56, 0x45, 0x68}, {0x27, 0x00, 0x4f}, {0x42, 0x35, 0x4f}, // 196-199
	{0xbf, 0x00, 0xff}, {0xea, 0xaa, 0xff}, {0x8d, 0x00, 0xbd}, {0xad, 0x7e, 0xbd}, // 200-203
	{0x60, 0x00, 0x81}, {0x76, 0x56, 0x81}, {0x4e, 0x00, 0x68}, {0x5f, 0x45, 0x68}, // 204-207
	{0x3b, 0x00, 0x4f}, {0x49, 0x35, 0x4f}, {0xff, 0x00, 0xff}, {0xff, 0xaa, 0xff}, // 208-211
	{0xbd, 0x00, 0xbd}, {0xbd, 0x7e, 0xbd}, {0x81, 0x00, 0x81}, {0x81, 0x56, 0x81}, // 212-215
	{0x68, 0x00, 0x68}, {0x68, 0x45, 0x68}, {0x4f, 0x00, 0x4f}, {0x4f, 0x35, 0x4f}, // 216-219
	{0xff, 0x00, 0xbf}, {0xff, 0xaa, 0xea}, {0xbd, 0x00, 0x8d}, {0xbd, 0x7e, 0xad}, // 220-223
	{0x81, 0x00, 0x60}, {0x81, 0x56, 0x76}, {0x68, 0x00, 0x4e}, {0x68, 0x45, 0x5f}, // 224-227
	{0x4f, 0x00, 0x3b}, {0x4f, 0x35, 0x49}, {0xff, 0x00, 0x7f}, {0xff, 0xaa, 0xd4}, // 228-231
	{0xbd, 0x00, 0x5e}, {0xbd, 0x7e, 0x9d}, {0x81, 0x00, 0x40}, {0x81, 0x56, 0x6b}, // 232-235
	{0x68, 0x00, 0x34}, {0x68, 0x45, 0x56}, {0x4f, 0x00, 0x27}, {0x4f, 0x35, 0x42}, // 236-239
	{0xff, 0x00, 0x3f}, {0xff, 0xaa, 0xbf}, {0xbd, 0x00, 0x2e}, {0xbd, 0x7e, 0x8d}, // 240-243
	{0x81, 0x00, 0x1f}, {0x81, 0x56, 0x60}, {0x68, 0x00, 0x19}, {0x68, 0x45, 0x4e}, // 244-247
	{0x4f, 0x00, 0x13}, {0x4f, 0x35, 0x3b}, {0x33, 0x33, 0x33}, {0x50, 0x50, 0x50}, // 248-251
	{0x69, 0x69, 0x69}, {0x82, 0x82, 0x82}, {0xbe, 0xbe, 0xbe}, {0xff, 0xff, 0xff}, // 252-255
}
