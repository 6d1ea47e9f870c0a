package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifedash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFlags(t *testing.T, rr *httptest.ResponseRecorder) models.VisibilityFlags {
	t.Helper()
	var flags models.VisibilityFlags
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &flags))
	return flags
}

func TestGetVisibility_ReturnsFlags(t *testing.T) {
	svc := newMockVisibility()
	svc.flags.Notes = false
	vc := NewVisibilityController(&mockLogger{}, svc)

	rr := httptest.NewRecorder()
	vc.GetVisibility(rr, httptest.NewRequest(http.MethodGet, "/visibility", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	flags := decodeFlags(t, rr)
	assert.False(t, flags.Notes)
	assert.True(t, flags.Weather)
}

func TestToggle_FlipsComponent(t *testing.T) {
	svc := newMockVisibility()
	vc := NewVisibilityController(&mockLogger{}, svc)

	rr := httptest.NewRecorder()
	vc.Toggle(rr, httptest.NewRequest(http.MethodPost, "/visibility/toggle?c=weather", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decodeFlags(t, rr).Weather)
	assert.False(t, svc.flags.Weather)
}

func TestToggle_UnknownComponent(t *testing.T) {
	svc := newMockVisibility()
	vc := NewVisibilityController(&mockLogger{}, svc)

	rr := httptest.NewRecorder()
	vc.Toggle(rr, httptest.NewRequest(http.MethodPost, "/visibility/toggle?c=clock", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.DefaultVisibility(), svc.flags)
}

func TestToggle_ServiceFailure(t *testing.T) {
	svc := newMockVisibility()
	svc.failErr = errStoreDown
	vc := NewVisibilityController(&mockLogger{}, svc)

	rr := httptest.NewRecorder()
	vc.Toggle(rr, httptest.NewRequest(http.MethodPost, "/visibility/toggle?c=todos", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSetVisibility_ValidPayload(t *testing.T) {
	svc := newMockVisibility()
	vc := NewVisibilityController(&mockLogger{}, svc)

	body := `{"component":"quotes","visible":false}`
	rr := httptest.NewRecorder()
	vc.SetVisibility(rr, httptest.NewRequest(http.MethodPost, "/visibility/set", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, svc.flags.Quotes)
	assert.False(t, decodeFlags(t, rr).Quotes)
}

func TestSetVisibility_BadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing visible", `{"component":"notes"}`},
		{"unknown component", `{"component":"clock","visible":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newMockVisibility()
			vc := NewVisibilityController(&mockLogger{}, svc)

			rr := httptest.NewRecorder()
			vc.SetVisibility(rr, httptest.NewRequest(http.MethodPost, "/visibility/set", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, models.DefaultVisibility(), svc.flags)
		})
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	svc := newMockVisibility()
	svc.flags = models.VisibilityFlags{}
	vc := NewVisibilityController(&mockLogger{}, svc)

	rr := httptest.NewRecorder()
	vc.Reset(rr, httptest.NewRequest(http.MethodPost, "/visibility/reset", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, svc.resets)
	assert.Equal(t, models.DefaultVisibility(), decodeFlags(t, rr))
}
