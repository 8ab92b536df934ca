package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"status": "ok"}, 201)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 201, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteJSONError(rr, "Health record not found", 404)

	require.NoError(t, err)
	assert.Equal(t, 404, rr.Code)
	assert.JSONEq(t, `{"error":"Health record not found"}`, rr.Body.String())
}

func TestWriteJSON_UnmarshalableValue(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteJSON(rr, func() {}, 200)

	assert.Error(t, err)
	assert.Equal(t, 500, rr.Code)
}
