// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Token
	}{
		{
			name: "empty line",
			line: "   ",
			want: []Token{},
		},
		{
			name: "hop with name and address",
			line: " 1  gw (192.168.1.1)  0.512 ms",
			want: []Token{
				{Kind: Number, Text: "1", Value: 1},
				{Kind: Word, Text: "gw"},
				{Kind: Word, Text: "(192.168.1.1)"},
				{Kind: Number, Text: "0.512", Value: 0.512},
				{Kind: Unit, Text: "ms"},
			},
		},
		{
			name: "wildcards",
			line: "3  * *",
			want: []Token{
				{Kind: Number, Text: "3", Value: 3},
				{Kind: Wildcard, Text: "*"},
				{Kind: Wildcard, Text: "*"},
			},
		},
		{
			name: "numeric address is a word",
			line: "2 10.0.0.1 9 ms",
			want: []Token{
				{Kind: Number, Text: "2", Value: 2},
				{Kind: Word, Text: "10.0.0.1"},
				{Kind: Number, Text: "9", Value: 9},
				{Kind: Unit, Text: "ms"},
			},
		},
		{
			name: "unit glued to value is a word",
			line: "4 1.5ms !H",
			want: []Token{
				{Kind: Number, Text: "4", Value: 4},
				{Kind: Word, Text: "1.5ms"},
				{Kind: Word, Text: "!H"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.line))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		field string
		want  TokenKind
	}{
		{"12", Number},
		{"0.455", Number},
		{".5", Number},
		{"5.", Number},
		{".", Word},
		{"1.2.3", Word},
		{"-1", Word},
		{"ms", Unit},
		{"MS", Word},
		{"*", Wildcard},
		{"host*", Wildcard},
		{"example.com", Word},
		{"", Word},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got := classify(tt.field)
			assert.Equal(t, tt.want, got.Kind, "classify(%q) = %s", tt.field, got.Kind)
			assert.Equal(t, tt.field, got.Text)
		})
	}
}

func TestIsInteger(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"30", true},
		{"007", true},
		{"", false},
		{"1.0", false},
		{"-3", false},
		{"x2", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isInteger(tt.in), "isInteger(%q)", tt.in)
	}
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "word", Word.String())
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "unit", Unit.String())
	assert.Equal(t, "wildcard", Wildcard.String())
	assert.Equal(t, "unknown", TokenKind(42).String())
}
