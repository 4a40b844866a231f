// Package gemini provides a generation.Transport that uses Google's Gemini
// API to generate business ideas.
//
// This package is an infrastructure adapter: it translates the provider-neutral
// generation.Request (system instruction, user message, structured-output
// schema) into a GenerateContent call with ResponseMIMEType application/json
// and a ResponseSchema, and returns the raw text the model produced. Parsing,
// validation and error classification stay in the generation package.
//
// The package depends on Google's google.golang.org/genai client library.
package gemini
