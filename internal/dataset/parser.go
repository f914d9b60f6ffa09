// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package dataset

import (
	"strings"
	"unicode/utf8"
)

// Parse splits delimited text into rows of trimmed fields.
//
// Quoting follows the usual spreadsheet convention: a double quote toggles
// quoted mode, and inside quotes a doubled "" yields one literal quote. The
// delimiter and newlines are literal while quoted. Both \n and \r\n end a row.
// Blank lines produce no row.
//
// Parse never fails. Unbalanced quotes simply run to the end of input and the
// stray characters stay in the field; row-shape checks downstream decide what
// to keep.
func Parse(text string, delim rune) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	pushField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}
	endRow := func() {
		if len(row) > 0 || strings.TrimSpace(field.String()) != "" {
			pushField()
			rows = append(rows, row)
		}
		row = nil
		field.Reset()
	}

	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		next := i + size

		switch {
		case c == '"':
			if inQuotes && next < len(text) && text[next] == '"' {
				field.WriteByte('"')
				next++
			} else {
				inQuotes = !inQuotes
			}
		case inQuotes:
			field.WriteString(text[i:next])
		case c == delim:
			pushField()
		case c == '\r' && next < len(text) && text[next] == '\n':
			endRow()
			next++
		case c == '\n':
			endRow()
		default:
			// Raw bytes, so invalid UTF-8 passes through unchanged.
			field.WriteString(text[i:next])
		}
		i = next
	}
	endRow()

	return rows
}
