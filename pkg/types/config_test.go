// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnmatchedPolicy(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   UnmatchedPolicy
		errMsg string
	}{
		{name: "append", input: "append", want: UnmatchedAppend},
		{name: "delete", input: "delete", want: UnmatchedDelete},
		{name: "warn", input: "warn", want: UnmatchedWarn},
		{name: "unknown value", input: "keep", errMsg: `invalid unmatched policy "keep"`},
		{name: "empty", input: "", errMsg: "invalid unmatched policy"},
		{name: "case sensitive", input: "Append", errMsg: "invalid unmatched policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnmatchedPolicy(tt.input)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMissingPolicy(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   MissingPolicy
		errMsg string
	}{
		{name: "error", input: "error", want: MissingError},
		{name: "warn", input: "warn", want: MissingWarn},
		{name: "ignore", input: "ignore", want: MissingIgnore},
		{name: "unknown value", input: "skip", errMsg: `invalid missing policy "skip"`},
		{name: "empty", input: "", errMsg: "invalid missing policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMissingPolicy(tt.input)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOutlineFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   OutlineFormat
		errMsg string
	}{
		{name: "yaml", input: "yaml", want: OutlineYAML},
		{name: "markdown", input: "markdown", want: OutlineMarkdown},
		{name: "unknown value", input: "json", errMsg: `invalid outline format "json"`},
		{name: "empty", input: "", errMsg: "invalid outline format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutlineFormat(tt.input)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSectionIsPreamble(t *testing.T) {
	preamble := Section{Heading: PreambleHeading, Level: 0}
	assert.True(t, preamble.IsPreamble())

	body := Section{Heading: "Introduction", Level: 1}
	assert.False(t, body.IsPreamble())
}
