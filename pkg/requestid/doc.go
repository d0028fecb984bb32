// Package requestid tags every HTTP request with an X-Request-ID so log lines
// and error responses for one submission can be correlated.
//
// Client supplied ids are reused when they are at most 128 characters of
// [a-zA-Z0-9_-]; anything else is replaced with a new UUIDv7.
package requestid
