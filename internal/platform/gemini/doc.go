// Package gemini provides an implementation of the
// generation.PromptGenerator interface that uses Google's Gemini API to
// turn a rendered prompt into polished prompt text.
//
// This package is an infrastructure adapter: it translates between the
// application's generation contract and the genai client library
// without exposing the external service to the core application. Each
// GeneratePrompt call performs exactly one outbound request; remote
// failures are classified into the generation package's error taxonomy
// (authentication, upstream, invalid response) so the caller can show a
// readable diagnostic.
package gemini
