// Package seo implements the four metadata generators: product titles, meta
// descriptions and paraphrases, keyword lists, and structured product
// descriptions.
//
// Every generator classifies the content it receives, renders a prompt,
// sends it through the generation gateway and normalizes the reply into a
// bounded, well-formed value. None of them returns an error: when the gateway
// gives up, each generator substitutes deterministic fallback content and
// records the fallback.
package seo
