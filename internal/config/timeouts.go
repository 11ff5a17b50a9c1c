// Package config provides centralized timeout constants for the application.
//
// The API serves two kinds of traffic with very different latency profiles:
//   - Catalog reads: file load + in-memory filtering, typically <50ms.
//   - AI/bibliographic endpoints: one or more outbound calls to Gemini/Groq
//     and OpenAlex, which can take tens of seconds under load.
//
// The HTTP server timeouts below accommodate the slow path; per-call
// deadlines on outbound clients keep a single stuck upstream from holding
// a connection for the full write timeout.
package config

import "time"

// HTTP server timeouts
const (
	// HTTPRead is the server read timeout. Request bodies are small JSON
	// payloads, so this stays short.
	HTTPRead = 10 * time.Second

	// HTTPWrite is the server write timeout. Must cover the slowest AI
	// generation path plus response serialization.
	HTTPWrite = 90 * time.Second

	// HTTPIdle is the keep-alive idle timeout.
	HTTPIdle = 120 * time.Second
)

// Outbound call timeouts
const (
	// LLMRequest bounds a single generation call to an LLM provider.
	// Career-recommendation prompts carry a course list and can take a
	// while to complete on free-tier quotas.
	LLMRequest = 60 * time.Second

	// OpenAlexRequest bounds a single OpenAlex API call. OpenAlex is
	// usually fast but throttles unauthenticated traffic.
	OpenAlexRequest = 15 * time.Second
)
