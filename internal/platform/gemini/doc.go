// Package gemini provides an implementation of the generation.Backend
// interface that uses Google's Gemini API through the google.golang.org/genai
// client.
//
// This package is an infrastructure adapter: it translates generation.Options
// into a Gemini request (sampling parameters plus the four medium-and-above
// safety settings) and reduces the response to plain text. Retry, reprompt and
// fallback policy live in the generation and seo packages, not here.
//
// A candidate stopped by the safety filters, or a response without candidates,
// is returned as empty text so the gateway can reword the prompt.
package gemini
