// Package service contains the boundary operations of the SEO generator:
// URL analysis, content generation, paraphrasing and structured product
// descriptions.
//
// The service layer validates requests, resolves page content through a
// PageExtractor and coordinates the generators in internal/seo. Generators
// never fail, so callers only need to handle validation errors, extraction
// errors and unexpected internal errors:
//
//   - errors.Is(err, domain.ErrValidation): a required field was blank; the
//     error message is safe to show to clients.
//   - errors.Is(err, domain.ErrExtraction): the product page could not be
//     fetched or had no usable content.
//   - anything else is a ContentServiceError wrapping an internal failure.
package service
