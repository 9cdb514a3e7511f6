// Package domain contains the request and result types exchanged between the
// HTTP/CLI boundary and the SEO generators, together with the error taxonomy
// callers match against. Every value here is request-scoped; nothing is
// persisted.
package domain
