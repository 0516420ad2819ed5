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

// Package buildinfo describes the version of the DXF command line tools.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Short returns the tool name together with the module version, for example
// "dxf2geojson (seehuhn.de/go/dxf v0.2.0)".  Binaries built from a source
// checkout show the VCS revision instead.
func Short(toolName string) string {
	info, _ := debug.ReadBuildInfo()
	return describe(toolName, info)
}

func describe(toolName string, info *debug.BuildInfo) string {
	if info == nil {
		return toolName
	}
	v := version(info)
	if v == "" {
		return toolName
	}
	return fmt.Sprintf("%s (%s %s)", toolName, info.Main.Path, v)
}

// version returns the module version, or the abbreviated VCS revision for
// development builds.  The empty string is returned if neither is known.
func version(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	vcs := make(map[string]string)
	for _, s := range info.Settings {
		vcs[s.Key] = s.Value
	}
	rev := vcs["vcs.revision"]
	if rev == "" {
		return ""
	}
	rev = rev[:min(len(rev), 8)]
	if vcs["vcs.modified"] == "true" {
		rev += "+dirty"
	}
	return rev
}
