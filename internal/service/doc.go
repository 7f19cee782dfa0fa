// Package service contains the application services that orchestrate
// domain logic. PromptService is the form controller of the prompt
// generator: it validates a submission's required field, applies the
// per-field defaults, renders the template, and calls the language
// model, returning a single Outcome per submission.
package service
