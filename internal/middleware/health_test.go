package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheckHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	defer UpdateHealthStatus("ok")

	tests := []struct {
		name           string
		status         string
		expectedStatus string
	}{
		{name: "healthy", status: "ok", expectedStatus: "ok"},
		{name: "database unreachable", status: "degraded", expectedStatus: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			UpdateHealthStatus(tt.status)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/health", nil)

			HealthCheckHandler()(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var body HealthStatus
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.NotEmpty(t, body.Uptime)
		})
	}
}
