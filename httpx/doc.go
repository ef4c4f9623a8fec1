// Package httpx provides a tolerant HTTP client adapter for the tolerance
// library.
//
// Client wraps a standard http.Client with a tolerance.Tolerator and a
// user-provided status code classifier, so that transport errors and
// rejected status codes can be suppressed and answered with a substitute
// response instead of failing the caller.
package httpx
