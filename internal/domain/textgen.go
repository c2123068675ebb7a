package domain

import "context"

// TextGenerator is a single text-generation provider. Complete returns the
// assistant message text for the prompt, or an error carrying the provider's
// human-readable failure message.
type TextGenerator interface {
	// Name identifies the provider/model for logging.
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}
