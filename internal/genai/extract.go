// Package genai provides integration with LLM APIs (Gemini and Groq).
// This file contains JSON extraction from model replies, which frequently
// arrive wrapped in markdown fences or conversational framing.
package genai

import (
	"encoding/json"
	"strings"
)

// StripCodeFences removes a single markdown code fence wrapping the text,
// with or without a language tag.
func StripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)

	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop a language tag like "json" on the opening fence line
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(trimmed[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}

// ExtractJSON finds and parses the first complete JSON object in the text.
// Returns the parsed object and true, or nil and false when no valid
// object is present.
func ExtractJSON(text string) (map[string]any, bool) {
	cleaned := StripCodeFences(text)

	// Fast path: the whole reply is the object
	var whole map[string]any
	if err := json.Unmarshal([]byte(cleaned), &whole); err == nil {
		return whole, true
	}

	// Scan for a balanced top-level object. Brace counting tracks string
	// and escape state so braces inside values don't break the span.
	span, ok := firstObjectSpan(cleaned)
	if !ok {
		return nil, false
	}

	var embedded map[string]any
	if err := json.Unmarshal([]byte(span), &embedded); err != nil {
		return nil, false
	}
	return embedded, true
}

// NormalizeReply converts a model reply into a JSON-serializable value:
//  1. A reply that is itself a JSON object parses as-is.
//  2. Any other valid JSON value is wrapped as {"result": value}.
//  3. A reply with an embedded JSON object yields that object.
//  4. Otherwise the raw text passes through as {"result": text}.
func NormalizeReply(text string) map[string]any {
	cleaned := StripCodeFences(text)

	var value any
	if err := json.Unmarshal([]byte(cleaned), &value); err == nil {
		if obj, ok := value.(map[string]any); ok {
			return obj
		}
		return map[string]any{"result": value}
	}

	if obj, ok := ExtractJSON(cleaned); ok {
		return obj
	}

	return map[string]any{"result": text}
}

// firstObjectSpan returns the first balanced {...} span in the text.
func firstObjectSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
