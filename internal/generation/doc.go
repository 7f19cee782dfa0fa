// Package generation provides the interface and error taxonomy for
// interacting with the external language-model service that turns a
// rendered prompt into polished prompt text. It abstracts the details
// of the LLM API integration (Gemini), allowing the application to
// generate prompts without coupling to a specific external service.
package generation
