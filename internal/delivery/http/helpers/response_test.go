package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var envelope APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func TestWriteCreated(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteCreated(rr, "/api/camps/ATL2018", map[string]string{"moniker": "ATL2018"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/camps/ATL2018", rr.Header().Get("Location"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	envelope := decode(t, rr)
	assert.Nil(t, envelope.Error)
	assert.Equal(t, map[string]any{"moniker": "ATL2018"}, envelope.Data)
}

func TestWriteStorageFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteStorageFailure(rr)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	envelope := decode(t, rr)
	assert.Nil(t, envelope.Data)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, ErrCodeInternalError, envelope.Error.Code)
	assert.Equal(t, MsgStorageFailure, envelope.Error.Message)
}

type nameRequest struct {
	Name string `json:"name"`
}

func (n nameRequest) Validate() []string {
	if n.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantSubstr string
	}{
		{name: "valid", body: `{"name":"Atlanta"}`, wantOK: true},
		{name: "empty body", body: ``, wantSubstr: "request body is empty"},
		{name: "unknown field", body: `{"name":"A","venue":"B"}`, wantSubstr: "unknown field"},
		{name: "trailing object", body: `{"name":"A"}{"name":"B"}`, wantSubstr: "single JSON object"},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, wantSubstr: "too large"},
		{name: "validation", body: `{"name":""}`, wantSubstr: "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/camps", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest nameRequest

			ok := DecodeAndValidate(rr, req, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "Atlanta", dest.Name)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			envelope := decode(t, rr)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, ErrCodeBadRequest, envelope.Error.Code)
			assert.Contains(t, envelope.Error.Message, tt.wantSubstr)
		})
	}
}
