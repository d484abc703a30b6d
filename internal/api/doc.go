// Package api implements the HTTP presentation adapter. It is the external
// collaborator the core was designed for: handlers decode and validate
// requests, invoke use cases and services, and translate their errors into
// HTTP status codes without leaking internals.
package api
