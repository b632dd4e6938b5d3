package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(ctx context.Context) error {
	return f.err
}

func TestHealthController_Health(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "database down", pingErr: errors.New("dial tcp: connection refused"), wantStatus: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(testLogger, &fakePinger{err: tt.pingErr})
			req := httptest.NewRequest(http.MethodGet, "http://test/healthz", nil)
			rr := httptest.NewRecorder()
			ctrl.Health(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var data HealthResponse
			envelope := decodeEnvelope(t, rr, &data)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "ok", data.Status)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, "database unavailable", envelope.Error.Message)
		})
	}
}
