package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/notice-dispatcher/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Server Configuration
// =============================================================================

func TestNewHTTPServer_Settings(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{Debug: true})

	assert.True(t, e.Debug)
	assert.True(t, e.HideBanner)
	assert.True(t, e.HidePort)
	assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
	assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
	assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
	assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
}

// =============================================================================
// Middleware Chain
// =============================================================================

func TestNewHTTPServer_Middleware(t *testing.T) {
	tests := []struct {
		name    string
		cfg     HTTPServerConfig
		handler echo.HandlerFunc
		request func() *http.Request
		check   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "보안 헤더와 요청 ID",
			handler: func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			},
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/test", nil)
			},
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
				assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
				assert.Empty(t, rec.Header().Get(echo.HeaderServer))
			},
		},
		{
			name: "CORS 허용 Origin",
			cfg:  HTTPServerConfig{AllowOrigins: []string{"https://admin.example.com"}},
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodOptions, "/test", nil)
				req.Header.Set(echo.HeaderOrigin, "https://admin.example.com")
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
				return req
			},
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Equal(t, "https://admin.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
				assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), constants.XAppKey)
			},
		},
		{
			name: "패닉 복구",
			handler: func(c echo.Context) error {
				panic("boom")
			},
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/test", nil)
			},
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, constants.ErrMsgInternalServer, gjson.Get(rec.Body.String(), "message").String())
			},
		},
		{
			name: "본문 크기 제한",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			request: func() *http.Request {
				body := strings.Repeat("a", 2*1024*1024)
				req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				return req
			},
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
			},
		},
		{
			name: "요청 처리 시간 초과",
			cfg:  HTTPServerConfig{RequestTimeout: 20 * time.Millisecond},
			handler: func(c echo.Context) error {
				<-c.Request().Context().Done()
				return c.Request().Context().Err()
			},
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/test", nil)
			},
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(tt.cfg)
			e.Any("/test", tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, tt.request())

			tt.check(t, rec)
		})
	}
}

func TestNewHTTPServer_RateLimiting(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{RequestsPerSecond: 1, Burst: 2})
	e.GET("/test", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "203.0.113.7:12345"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	require.Len(t, codes, 3)
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
