// Package httpclient provides the HTTP client used for all outbound calls:
// upstream API polling, authentication, and audio transcription uploads.
//
// It layers request building (auth, query params, JSON and multipart bodies),
// status-code error classification, and optional retry on top of net/http.
package httpclient
