// Package generation abstracts the external text-generation backend (Gemini or
// any OpenAI-compatible model) behind the single-method Backend interface and
// provides the Gateway, which adds the retry and safety-reprompt policy that
// every SEO generator relies on.
//
// A Backend only turns a prompt into text. The Gateway decides what counts as
// a usable reply, rewords the prompt when the model refuses or returns
// nothing, and reports exhaustion as an error wrapping ErrGenerationFailed.
package generation
