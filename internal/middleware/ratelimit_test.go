package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func fingerprintOf(t *testing.T, forwardedFor, remoteAddr string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/vote", nil)
	if forwardedFor != "" {
		c.Request.Header.Set("X-Forwarded-For", forwardedFor)
	}
	c.Request.RemoteAddr = remoteAddr
	return Fingerprint(c)
}

func TestFingerprintForwardedFor(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{"first hop wins", "1.2.3.4, 10.0.0.1", "192.168.0.1:1234", "1.2.3.4"},
		{"single hop", "5.6.7.8", "192.168.0.1:1234", "5.6.7.8"},
		{"padded", "  1.2.3.4 , 10.0.0.1", "192.168.0.1:1234", "1.2.3.4"},
		{"no header falls back to remote addr", "", "192.168.0.1:1234", "192.168.0.1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, fingerprintOf(t, tc.forwardedFor, tc.remoteAddr))
		})
	}
}
