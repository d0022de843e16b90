// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fields recovers per-line field structure from an external
// line-oriented processor (awk). The processor is instructed, via its own
// scripting capability, to emit one self-delimited line per record in a
// tagged wire format; this package generates that probe program and
// decodes the response into structured records.
package fields

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoRecords is returned when a decode yields nothing usable. Individual
// malformed lines are dropped silently; only total absence is surfaced.
var ErrNoRecords = errors.New("no field information available")

// =============================================================================
// RECORD TYPES
// =============================================================================

// Field is one awk field: 1-based column index plus its value.
type Field struct {
	Index int
	Value string
}

// Record is one processed input line: the 1-based record number (NR), the
// full original line ($0), the field count (NF) and the ordered fields.
type Record struct {
	Number int
	Full   string
	NF     int
	Fields []Field
}

// =============================================================================
// PROBE PROGRAM
// =============================================================================

// probeProgram makes the processor emit one wire-format line per record:
//
//	RECORD:<n>|NF:<k>|FULL:<escaped>|FIELDS:<i>:<escaped>,<i>:<escaped>,...
//
// Literal '|' in record text or field values is escaped as '\|' before
// emission; nothing else is escaped.
const probeProgram = `{
    printf "RECORD:%d|NF:%d|FULL:", NR, NF
    gsub(/\|/, "\\|", $0)
    printf "%s", $0
    printf "|FIELDS:"
    for (i = 1; i <= NF; i++) {
        gsub(/\|/, "\\|", $i)
        printf "%d:%s", i, $i
        if (i < NF) printf ","
    }
    printf "\n"
}`

// ProbeProgram returns the field-extraction probe script.
func ProbeProgram() string {
	return probeProgram
}

// Escape replaces every literal '|' with '\|', mirroring what the probe
// program does on the awk side.
func Escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return strings.ReplaceAll(s, `\|`, "|")
}

// =============================================================================
// DECODER
// =============================================================================

// Decode parses the raw probe output into records. Decoding is
// line-oriented and resilient: a malformed line (unknown tag, non-integer
// index) is dropped rather than aborting the decode, because partial
// results beat total failure while the user is still typing. Decode
// returns ErrNoRecords when nothing at all survived.
func Decode(raw string) ([]Record, error) {
	var records []Record
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		if rec, ok := decodeLine(line); ok {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// decodeLine parses a single wire-format line. A record is accepted only
// when RECORD, NF and FULL are all present; FIELDS may be absent for
// zero-field records.
func decodeLine(line string) (Record, bool) {
	var (
		rec        Record
		haveRecord bool
		haveNF     bool
		haveFull   bool
	)

	for _, part := range splitUnescaped(line, '|') {
		switch {
		case strings.HasPrefix(part, "RECORD:"):
			n, err := strconv.Atoi(part[len("RECORD:"):])
			if err != nil {
				return Record{}, false
			}
			rec.Number = n
			haveRecord = true

		case strings.HasPrefix(part, "NF:"):
			n, err := strconv.Atoi(part[len("NF:"):])
			if err != nil {
				return Record{}, false
			}
			rec.NF = n
			haveNF = true

		case strings.HasPrefix(part, "FULL:"):
			rec.Full = Unescape(part[len("FULL:"):])
			haveFull = true

		case strings.HasPrefix(part, "FIELDS:"):
			fields, ok := decodeFields(part[len("FIELDS:"):])
			if !ok {
				return Record{}, false
			}
			rec.Fields = fields
		}
	}

	if !haveRecord || !haveNF || !haveFull {
		return Record{}, false
	}
	return rec, true
}

// decodeFields parses "1:val,2:val" entries, splitting each on the first
// ':' so values keep any colons of their own.
func decodeFields(s string) ([]Field, bool) {
	if s == "" {
		return nil, true
	}
	var fields []Field
	for _, entry := range strings.Split(s, ",") {
		idx, value, found := strings.Cut(entry, ":")
		if !found {
			return nil, false
		}
		i, err := strconv.Atoi(idx)
		if err != nil {
			return nil, false
		}
		fields = append(fields, Field{Index: i, Value: Unescape(value)})
	}
	return fields, true
}

// splitUnescaped splits s on sep, treating a backslash-escaped sep as part
// of the segment. The escape byte itself is preserved for Unescape.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != sep {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		parts = append(parts, s[start:i])
		start = i + 1
	}
	parts = append(parts, s[start:])
	return parts
}
