// Package generation turns a user's interests into business-idea suggestions
// produced by an external AI/LLM service. It builds the prompt and the
// structured-output schema, calls the model through a Transport, validates
// the JSON it returns, and classifies every failure as a configuration,
// service or format error. Provider SDKs live in internal/platform and only
// implement the Transport interface.
package generation
