package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{
			name:           "exact match",
			origin:         "https://app.recipelens.dev",
			allowedOrigins: []string{"https://app.recipelens.dev"},
			want:           true,
		},
		{
			name:           "wildcard port match",
			origin:         "http://localhost:5173",
			allowedOrigins: []string{"http://localhost:*"},
			want:           true,
		},
		{
			name:           "multiple allowed origins - matches second",
			origin:         "https://app.recipelens.dev",
			allowedOrigins: []string{"http://localhost:*", "https://app.recipelens.dev"},
			want:           true,
		},
		{
			name:           "no match",
			origin:         "http://evil.com",
			allowedOrigins: []string{"http://localhost:*"},
			want:           false,
		},
		{
			name:           "empty origin",
			origin:         "",
			allowedOrigins: []string{"*"},
			want:           false,
		},
		{
			name:           "empty allowed list",
			origin:         "http://localhost:3000",
			allowedOrigins: []string{},
			want:           false,
		},
		{
			name:           "bare wildcard allows everything",
			origin:         "https://anything.example",
			allowedOrigins: []string{"*"},
			want:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAllowedOrigin(tt.origin, tt.allowedOrigins)
			if got != tt.want {
				t.Errorf("isAllowedOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		method     string
		wantStatus int
		wantCORS   bool
	}{
		{"allowed origin - GET request", "http://localhost:3000", "GET", http.StatusOK, true},
		{"allowed origin - OPTIONS request", "http://localhost:3000", "OPTIONS", http.StatusNoContent, true},
		{"disallowed origin", "http://evil.com", "GET", http.StatusOK, false},
		{"no origin header", "", "GET", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORSMiddleware([]string{"http://localhost:*"}))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "OK")
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			corsHeader := w.Header().Get("Access-Control-Allow-Origin")
			if tt.wantCORS {
				if corsHeader != tt.origin {
					t.Errorf("Access-Control-Allow-Origin = %s, want %s", corsHeader, tt.origin)
				}
				if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
					t.Errorf("Access-Control-Allow-Credentials not set to true")
				}
			} else if corsHeader != "" {
				t.Errorf("Access-Control-Allow-Origin should not be set for disallowed origin, got %s", corsHeader)
			}
		})
	}
}

func TestCORSMiddleware_PreflightRequest(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://localhost:*"}))
	router.POST("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	for _, header := range []string{
		"Access-Control-Allow-Methods",
		"Access-Control-Allow-Headers",
		"Access-Control-Expose-Headers",
		"Access-Control-Max-Age",
	} {
		if w.Header().Get(header) == "" {
			t.Errorf("%s not set", header)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		id := w.Header().Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("X-Request-ID = %q, want a UUID", id)
		}
		if w.Body.String() != id {
			t.Errorf("context request id = %q, want %q", w.Body.String(), id)
		}
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get(requestIDHeader); got != "abc-123" {
			t.Errorf("X-Request-ID = %q, want abc-123", got)
		}
	})
}

func TestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := gin.New()
	router.Use(RequestIDMiddleware(), LoggerMiddleware(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/bad", nil))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0].Level != zap.InfoLevel || entries[1].Level != zap.WarnLevel {
		t.Errorf("levels = %v/%v, want info/warn", entries[0].Level, entries[1].Level)
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/ok" || fields["status"] != int64(200) {
		t.Errorf("fields = %v, want path /ok and status 200", fields)
	}
	if fields[requestIDKey] == "" {
		t.Error("request id missing from access log")
	}
}

func TestRecoveryMiddleware_JSON(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	router := gin.New()
	router.Use(RequestIDMiddleware(), RecoveryMiddleware(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", w.Code)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("panic was not logged")
	}
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(60, 2)
	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(ip string) int {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := request("10.0.0.1"); code != http.StatusOK {
		t.Errorf("first request = %d, want 200", code)
	}
	if code := request("10.0.0.1"); code != http.StatusOK {
		t.Errorf("second request = %d, want 200", code)
	}
	if code := request("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", code)
	}
	if code := request("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other IP = %d, want 200", code)
	}
}

func TestIPRateLimiter_Unlimited(t *testing.T) {
	limiter := NewIPRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		if !limiter.getLimiter("10.0.0.1").Allow() {
			t.Fatalf("request %d rejected by unlimited limiter", i)
		}
	}
}

func TestIPRateLimiter_SweepsIdleEntries(t *testing.T) {
	limiter := NewIPRateLimiter(60, 1)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	limiter.getLimiter("10.0.0.1")
	limiter.getLimiter("10.0.0.2")
	if limiter.size() != 2 {
		t.Fatalf("size = %d, want 2", limiter.size())
	}

	now = now.Add(20 * time.Minute)
	limiter.getLimiter("10.0.0.3")

	if limiter.size() != 1 {
		t.Errorf("size after sweep = %d, want 1", limiter.size())
	}
}
