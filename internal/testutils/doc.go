// Package testutils provides testing utilities shared across packages.
//
// It contains a memory-backed slog handler for asserting on log output and
// a fake language model HTTP API for exercising the provider transports
// without network access:
//
//	api := testutils.NewFakeLLMAPI(t, http.StatusOK, testutils.GeminiResponse(`{"ideas":[]}`))
//	cfg.BaseURL = api.URL
//	...
//	assert.Equal(t, 1, api.CallCount())
package testutils
