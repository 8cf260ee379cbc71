// Package api contains the HTTP handlers, request/response payloads,
// and error mapping for the shopping list API.
package api
