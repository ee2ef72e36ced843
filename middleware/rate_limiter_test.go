package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			"forwarded-for wins",
			"10.0.0.1:1234",
			map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.2"},
			"203.0.113.7",
		},
		{
			"first forwarded hop",
			"10.0.0.1:1234",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.3"},
			"203.0.113.7",
		},
		{
			"real-ip fallback",
			"10.0.0.1:1234",
			map[string]string{"X-Real-IP": " 198.51.100.2 "},
			"198.51.100.2",
		},
		{
			"remote addr strips port",
			"203.0.113.7:5060",
			nil,
			"203.0.113.7",
		},
		{
			"remote addr without port",
			"203.0.113.7",
			nil,
			"203.0.113.7",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := requestContext(t, tc.remoteAddr, tc.headers)
			if got := clientIP(c); got != tc.want {
				t.Fatalf("clientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
