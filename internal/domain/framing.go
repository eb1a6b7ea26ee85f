package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDump is returned when a dump is too short to hold its frame.
var ErrMalformedDump = errors.New("malformed tool dump")

// DumpFraming describes how the tools frame a rewritten file in dump mode:
// a banner line naming the file, the rewritten content, then a closing
// banner and an empty terminator line.
//
// This mirrors the tools' --dump output byte layout, which is not a
// documented format. It has to be revisited whenever the tools change how
// they print replacements.
type DumpFraming struct {
	HeaderLines  int
	TrailerLines int
}

// DefaultDumpFraming is the framing emitted by the refactoring tools.
var DefaultDumpFraming = DumpFraming{HeaderLines: 1, TrailerLines: 2}

// Unwrap strips the frame from a non-empty dump and returns the content.
func (f DumpFraming) Unwrap(dump string) (string, error) {
	lines := strings.SplitAfter(dump, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) < f.HeaderLines+f.TrailerLines {
		return "", fmt.Errorf("%w: %d line(s), frame needs %d", ErrMalformedDump, len(lines), f.HeaderLines+f.TrailerLines)
	}

	return strings.Join(lines[f.HeaderLines:len(lines)-f.TrailerLines], ""), nil
}
