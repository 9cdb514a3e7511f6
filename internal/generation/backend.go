package generation

import "context"

// Options are the sampling and safety settings sent with every backend call.
type Options struct {
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32

	// BlockUnsafeContent asks the backend to block medium-and-above
	// harassment, hate speech, sexually explicit and dangerous content.
	// Backends without a safety API ignore it.
	BlockUnsafeContent bool
}

// DefaultOptions returns the sampling configuration used for all SEO prompts.
func DefaultOptions() Options {
	return Options{
		Temperature:        0.5,
		TopP:               0.94,
		MaxOutputTokens:    1024,
		BlockUnsafeContent: true,
	}
}

// Backend is the text-generation capability the gateway calls.
//
// Generate returns the raw text of the model reply. A reply blocked by the
// model's safety filters is reported as empty text, not as an error, so the
// gateway can reword the prompt.
type Backend interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// BackendFunc adapts an ordinary function to the Backend interface.
type BackendFunc func(ctx context.Context, prompt string, opts Options) (string, error)

// Generate calls f.
func (f BackendFunc) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	return f(ctx, prompt, opts)
}

// Recorder receives gateway and generator events. The metrics package
// provides the Prometheus implementation; a nil Recorder records nothing.
type Recorder interface {
	// Attempt records the outcome of one backend call: "success",
	// "invalid" or "error".
	Attempt(outcome string)
	// Reprompt records that a safe rewording of the prompt was sent.
	Reprompt()
	// Fallback records that a generator returned canned content.
	Fallback(generator string)
}

// Attempt outcomes passed to Recorder.Attempt.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

type nopRecorder struct{}

func (nopRecorder) Attempt(string)  {}
func (nopRecorder) Reprompt()       {}
func (nopRecorder) Fallback(string) {}

// NopRecorder returns a Recorder that discards every event.
func NopRecorder() Recorder {
	return nopRecorder{}
}
