// Package api handles incoming HTTP requests, request validation and response
// formatting. It sits between HTTP clients and the idea generator, turning
// classified generation errors into status codes and user-safe messages.
package api
