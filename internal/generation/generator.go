package generation

import "context"

// Result holds the language model's textual response to a rendered
// prompt.
type Result struct {
	Text string
}

// PromptGenerator defines the boundary between the application core and
// the external language-model service. Implementations perform exactly
// one outbound request per call: no retry, no caching, no batching.
type PromptGenerator interface {
	// GeneratePrompt sends the rendered prompt to the language model
	// and returns its textual response.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The fully rendered prompt string to send
	//
	// Returns:
	//   - The model's response text
	//   - An error classified with this package's sentinels (see errors.go)
	GeneratePrompt(ctx context.Context, prompt string) (*Result, error)
}
