package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/ideaspark-api/internal/platform/logger"
	"github.com/phrazzld/ideaspark-api/internal/redact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, id, other)

	assert.Equal(t, "fixed", GetTraceID(WithTraceID(context.Background(), "fixed")))
}

type sample struct {
	Name string `json:"name" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
		errIs   error
	}{
		{name: "valid", body: `{"name":"x"}`},
		{name: "empty body", body: ``, wantErr: true, errIs: ErrEmptyBody},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "unknown field", body: `{"name":"x","extra":1}`, wantErr: true},
		{name: "trailing data", body: `{"name":"x"}{"name":"y"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var got sample
			err := DecodeJSON(w, r, &got)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "x", got.Name)
				return
			}
			require.Error(t, err)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(sample{Name: "x"}))
	assert.Error(t, ValidateRequest(sample{}))
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	RespondWithJSON(w, r, http.StatusCreated, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"k":"v"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceID(context.Background(), "trace-123")
	ctx = logger.WithLogger(ctx, log)
	r := httptest.NewRequest(http.MethodPost, "/api/ideas", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	secret := "sk-abcdefghijklmnopqrstuvwxyz"
	RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "not configured",
		errors.New("upstream rejected "+secret),
		WithKind("configuration"), WithAction("configure_credential"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not configured", resp.Error)
	assert.Equal(t, "configuration", resp.Kind)
	assert.Equal(t, "configure_credential", resp.Action)
	assert.Equal(t, "trace-123", resp.TraceID)
	assert.NotContains(t, w.Body.String(), "upstream")

	out := logs.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"trace_id":"trace-123"`)
	assert.Contains(t, out, redact.RedactedKeyPlaceholder)
	assert.NotContains(t, out, secret)
}

func TestRespondWithErrorLogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		opts   []ResponseOption
		level  string
	}{
		{"bad request is debug", http.StatusBadRequest, nil, "DEBUG"},
		{"elevated bad request is warn", http.StatusBadRequest, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
		{"too many requests is warn", http.StatusTooManyRequests, nil, "WARN"},
		{"bad gateway is error", http.StatusBadGateway, nil, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
			r := httptest.NewRequest(http.MethodGet, "/", nil).
				WithContext(logger.WithLogger(context.Background(), log))

			RespondWithError(httptest.NewRecorder(), r, tt.status, "msg", tt.opts...)
			assert.Contains(t, logs.String(), `"level":"`+tt.level+`"`)
		})
	}
}
