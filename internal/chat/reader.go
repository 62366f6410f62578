// Package chat reads CHAT transcript sessions into records and metadata.
// Pure text layer: transcript in, structured records out. All cleaning
// happens downstream.
package chat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	recordStartRe = regexp.MustCompile(`^\*([A-Z][A-Z0-9]{1,2}):\t`)
	tierLineRe    = regexp.MustCompile(`^%([a-zA-Z][a-zA-Z0-9]*):\t(.*)$`)
)

// Session is one parsed CHAT file.
type Session struct {
	Metadata Metadata
	Records  []Record
}

// ParseFile reads a .cha transcript from disk.
// Pure function: file path in, session out.
func ParseFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Parse reads a CHAT transcript. Header @-lines become metadata; every
// block starting with a *XXX: main line becomes one record. Continuation
// lines (leading tab) are joined to their tier with a single space.
func Parse(r io.Reader) (*Session, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		session Session
		header  []string
		block   []string
	)

	flush := func() {
		if len(block) == 0 {
			return
		}
		session.Records = append(session.Records, newRecord(block))
		block = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "\t"):
			// Continuation of the previous tier line.
			if len(block) > 0 {
				block[len(block)-1] += " " + strings.TrimPrefix(line, "\t")
			} else if len(header) > 0 {
				header[len(header)-1] += " " + strings.TrimPrefix(line, "\t")
			}
		case recordStartRe.MatchString(line):
			flush()
			block = append(block, line)
		case strings.HasPrefix(line, "%"):
			if len(block) > 0 {
				block = append(block, line)
			}
		case strings.HasPrefix(line, "@"):
			flush()
			header = append(header, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}
	flush()

	session.Metadata = parseMetadata(header)
	return &session, nil
}

// newRecord builds a Record from the joined lines of one block:
// the main line first, dependent tiers after.
func newRecord(lines []string) Record {
	rec := Record{tiers: make(map[string]string, len(lines)-1)}

	main := lines[0]
	if m := recordStartRe.FindStringSubmatch(main); m != nil {
		rec.speaker = m[1]
		rec.mainLine = main[len(m[0]):]
	}

	for _, line := range lines[1:] {
		if m := tierLineRe.FindStringSubmatch(line); m != nil {
			rec.tiers[m[1]] = strings.TrimSpace(m[2])
		}
	}
	return rec
}
