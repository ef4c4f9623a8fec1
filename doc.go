// Package tolerance turns fallible functions into tolerant ones.
//
// The central type is Tolerator[T], which wraps a function so that matching
// errors are suppressed and a configurable substitute value is returned in
// their place. A per-call switch argument (fail_silently by default) and a
// shared disable state decide, for every invocation, whether suppression is
// active or the error propagates unchanged.
package tolerance
