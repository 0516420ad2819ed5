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

// Package profile implements the -cpuprofile and -memprofile options of the
// DXF command line tools.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is a profiling run started by [Start].
type Session struct {
	cpu     *os.File
	memFile string
}

// Start starts CPU profiling if cpuFile is non-empty.  If memFile is
// non-empty, a heap allocation profile is written there by [Session.Stop].
func Start(cpuFile, memFile string) (*Session, error) {
	s := &Session{memFile: memFile}
	if cpuFile == "" {
		return s, nil
	}

	f, err := os.Create(cpuFile)
	if err != nil {
		return nil, fmt.Errorf("CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("CPU profile: %w", err)
	}
	s.cpu = f
	return s, nil
}

// Stop ends the profiling run and writes the requested profiles.
// Calling Stop more than once has no further effect.
func (s *Session) Stop() error {
	var errs []error
	if s.cpu != nil {
		pprof.StopCPUProfile()
		if err := s.cpu.Close(); err != nil {
			errs = append(errs, fmt.Errorf("CPU profile: %w", err))
		}
		s.cpu = nil
	}
	if s.memFile != "" {
		if err := writeHeap(s.memFile); err != nil {
			errs = append(errs, fmt.Errorf("memory profile: %w", err))
		}
		s.memFile = ""
	}
	return errors.Join(errs...)
}

func writeHeap(fname string) error {
	p := pprof.Lookup("allocs")
	if p == nil {
		return errors.New("allocs profile not available")
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := p.WriteTo(f, 0); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
