// Package scraper fetches product pages and extracts the title, meta
// description and main product text used by URL analysis.
//
// Pages are fetched with browser-like headers and retried with exponential
// backoff. Content is read from product-specific selectors and JSON-LD, with a
// readability pass and the meta description as successive fallbacks.
package scraper
