package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no fences",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "fences with language tag",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "fences without language tag",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```json\n{\"a\": 1}\n```\n  ",
			want: `{"a": 1}`,
		},
		{
			name: "plain text untouched",
			in:   "hello world",
			want: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   map[string]any
		wantOK bool
	}{
		{
			name:   "whole object",
			in:     `{"career_analysis": "good path"}`,
			want:   map[string]any{"career_analysis": "good path"},
			wantOK: true,
		},
		{
			name:   "object in prose",
			in:     `Here is my analysis: {"skills": ["go"], "coverage": 85} hope it helps!`,
			want:   map[string]any{"skills": []any{"go"}, "coverage": float64(85)},
			wantOK: true,
		},
		{
			name:   "nested objects",
			in:     `{"outer": {"inner": 1}}`,
			want:   map[string]any{"outer": map[string]any{"inner": float64(1)}},
			wantOK: true,
		},
		{
			name:   "braces inside strings",
			in:     `before {"text": "has } and { inside"} after`,
			want:   map[string]any{"text": "has } and { inside"},
			wantOK: true,
		},
		{
			name:   "fenced object",
			in:     "```json\n{\"a\": 1}\n```",
			want:   map[string]any{"a": float64(1)},
			wantOK: true,
		},
		{
			name:   "no object",
			in:     "just some advice, no data here",
			wantOK: false,
		},
		{
			name:   "unbalanced braces",
			in:     `{"a": 1`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want map[string]any
	}{
		{
			name: "object passes through",
			in:   `{"a": 1}`,
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "array wrapped as result",
			in:   `[1, 2]`,
			want: map[string]any{"result": []any{float64(1), float64(2)}},
		},
		{
			name: "json string wrapped as result",
			in:   `"hello"`,
			want: map[string]any{"result": "hello"},
		},
		{
			name: "embedded object extracted",
			in:   `Sure! {"a": 1} Done.`,
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "plain text wrapped raw",
			in:   "I cannot answer that.",
			want: map[string]any{"result": "I cannot answer that."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeReply(tt.in))
		})
	}
}
