// Package api handles incoming HTTP requests, request validation and response
// formatting for the SEO content endpoints. It acts as an adapter between
// external clients and the content service, translating HTTP concerns to
// service calls and service errors to safe client messages.
package api
