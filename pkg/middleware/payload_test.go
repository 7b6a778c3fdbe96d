package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outlet-seating/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func serveGuarded(t *testing.T, body string) (*httptest.ResponseRecorder, any, bool) {
	t.Helper()

	var (
		seen   any
		called bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = PayloadFromContext(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/outlets/1/tables/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	PayloadGuard(request.ValidateSeatingFilter, zap.NewNop())(next).ServeHTTP(rec, req)
	return rec, seen, called
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestPayloadGuardPassesValidPayload(t *testing.T) {
	rec, seen, called := serveGuarded(t, `{"seatingType":[1,2,3],"seatType":[4]}`)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"seatingType": []any{json.Number("1"), json.Number("2"), json.Number("3")},
		"seatType":    []any{json.Number("4")},
	}, seen)
}

func TestPayloadGuardRejectsMissingField(t *testing.T) {
	rec, _, called := serveGuarded(t, `{"seatingType":[1,2]}`)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Equal(t, map[string]string{"seatType": "This field is required"}, env.Errors)
}

func TestPayloadGuardRejectsNonNumericElement(t *testing.T) {
	rec, _, called := serveGuarded(t, `{"seatingType":[1,"x"],"seatType":[2]}`)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"seatingType": "Element at index 1 is not a numeric id"}, decodeEnvelope(t, rec).Errors)
}

func TestPayloadGuardRejectsWrongType(t *testing.T) {
	rec, _, called := serveGuarded(t, `{"seatingType":5,"seatType":"4"}`)

	assert.False(t, called)
	assert.Equal(t, map[string]string{
		"seatingType": "Must be an array of numeric ids",
		"seatType":    "Must be an array of numeric ids",
	}, decodeEnvelope(t, rec).Errors)
}

func TestPayloadGuardRejectsMalformedJSON(t *testing.T) {
	rec, _, called := serveGuarded(t, `{"seatingType":[1,`)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeEnvelope(t, rec).Message)
}

func TestPayloadGuardUnexpectedGuardError(t *testing.T) {
	guard := func(payload any) (any, error) { return nil, errors.New("boom") }
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	PayloadGuard(guard, zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
