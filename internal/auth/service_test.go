package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/0xPexy/sentra-gas-station/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestService() *Service {
	return NewService(config.AuthConfig{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		NonceTTL:  time.Minute,
		DevToken:  "dev",
	}, "0xAbC0000000000000000000000000000000000001")
}

func TestIssueAndParse(t *testing.T) {
	svc := newTestService()
	token, err := svc.Issue("0xDEAD00000000000000000000000000000000BEEF")
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "0xdead00000000000000000000000000000000beef", claims.Address)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	other := NewService(config.AuthConfig{JWTSecret: "other", JWTTTL: time.Hour}, "")
	token, err := other.Issue("0x01")
	require.NoError(t, err)

	_, err = newTestService().Parse(token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.Issue("0x01")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownNonce(t *testing.T) {
	_, err := newTestService().LoginWithSIWE("garbage", "0x00")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMiddlewareSetsCaller(t *testing.T) {
	svc := newTestService()
	token, err := svc.Issue("0x00000000000000000000000000000000000000aa")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		caller string
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "invalid", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "jwt", header: "Bearer " + token, status: http.StatusOK, caller: "0x00000000000000000000000000000000000000aa"},
		{name: "dev", header: "Bearer dev", status: http.StatusOK, caller: "0xabc0000000000000000000000000000000000001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			var seen string
			r.GET("/", JWTMiddleware(svc), func(c *gin.Context) {
				seen = Caller(c)
				c.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, tc.status, w.Code)
			require.Equal(t, tc.caller, seen)
		})
	}
}
