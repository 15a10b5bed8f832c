// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"strconv"
	"strings"
)

// TokenKind is the class of a single whitespace delimited field of a probe line.
type TokenKind int

const (
	// Word is any field that is neither a number, a unit nor a wildcard.
	Word TokenKind = iota
	// Number is a field made only of digits and dots that parses as a float.
	Number
	// Unit is the literal "ms".
	Unit
	// Wildcard is a field containing "*", printed for probes without reply.
	Wildcard
)

const (
	unitMillis   = "ms"
	wildcardMark = "*"
)

func (k TokenKind) String() string {
	switch k {
	case Word:
		return "word"
	case Number:
		return "number"
	case Unit:
		return "unit"
	case Wildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Token is one classified field of a probe line.
type Token struct {
	Kind TokenKind
	Text string
	// Value is the parsed value of a [Number] token.
	Value float64
}

// Tokenize splits a line on whitespace and classifies every field.
func Tokenize(line string) []Token {
	fields := strings.Fields(line)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, classify(f))
	}
	return tokens
}

func classify(field string) Token {
	switch {
	case strings.Contains(field, wildcardMark):
		return Token{Kind: Wildcard, Text: field}
	case field == unitMillis:
		return Token{Kind: Unit, Text: field}
	case isDecimal(field):
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			// e.g. "1.2.3", only digits and dots but not a float
			return Token{Kind: Word, Text: field}
		}
		return Token{Kind: Number, Text: field, Value: v}
	default:
		return Token{Kind: Word, Text: field}
	}
}

// isDecimal reports whether s consists of ASCII digits and dots
// with at least one digit.
func isDecimal(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
		default:
			return false
		}
	}
	return digits > 0
}

// isInteger reports whether s consists of ASCII digits only.
func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
