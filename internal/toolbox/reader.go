// Package toolbox reads Toolbox-style tabular transcripts: sessions made
// of \ref-delimited blocks whose lines each carry one "\tier value" pair.
package toolbox

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one \ref block.
type Record struct {
	ref   string
	tiers map[string]string
}

// Ref returns the record identifier from the \ref line.
func (r Record) Ref() string { return r.ref }

// SpeakerLabel returns the speaker tier (\sp, falling back to
// \ELANParticipant for ELAN-exported corpora).
func (r Record) SpeakerLabel() string {
	if sp, ok := r.tiers["sp"]; ok {
		return sp
	}
	return r.tiers["ELANParticipant"]
}

// Utterance returns the transcription tier (\tx).
func (r Record) Utterance() string { return r.tiers["tx"] }

// StartTime returns the \ELANBegin tier, or "".
func (r Record) StartTime() string { return r.tiers["ELANBegin"] }

// EndTime returns the \ELANEnd tier, or "".
func (r Record) EndTime() string { return r.tiers["ELANEnd"] }

// Tier returns the named tier ("mb", "ge", "ps", ...).
func (r Record) Tier(name string) (string, bool) {
	v, ok := r.tiers[name]
	return v, ok
}

// Translation returns the free translation tier (\ft).
func (r Record) Translation() string { return r.tiers["ft"] }

// Comment returns the comment tier (\com).
func (r Record) Comment() string { return r.tiers["com"] }

// Addressee returns the addressee tier (\add).
func (r Record) Addressee() string { return r.tiers["add"] }

// Session is one parsed Toolbox file.
type Session struct {
	Records []Record
}

// ParseFile reads a Toolbox transcript from disk.
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

// Parse reads a Toolbox transcript. A tier repeated within one block is
// joined with a single space (Toolbox wraps long tiers by repeating the
// marker). Lines before the first \ref belong to the file header and are
// skipped.
func Parse(r io.Reader) (*Session, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		session Session
		current *Record
	)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if !strings.HasPrefix(line, `\`) {
			continue
		}

		marker, value, _ := strings.Cut(line[1:], " ")
		value = strings.TrimSpace(value)

		if marker == "ref" {
			if current != nil {
				session.Records = append(session.Records, *current)
			}
			current = &Record{ref: value, tiers: make(map[string]string)}
			continue
		}
		if current == nil {
			continue
		}
		if prev, ok := current.tiers[marker]; ok && value != "" {
			current.tiers[marker] = prev + " " + value
		} else if value != "" {
			current.tiers[marker] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}
	if current != nil {
		session.Records = append(session.Records, *current)
	}

	return &session, nil
}
