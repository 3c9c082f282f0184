package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/loom/pkg/module"
)

func echoMux(t *testing.T) *http.ServeMux {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /documents", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(r.URL.Path))
	})
	return mux
}

func TestNewValidatesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		panics bool
	}{
		{name: "valid", prefix: "/api", panics: false},
		{name: "empty", prefix: "", panics: true},
		{name: "missing slash", prefix: "api", panics: true},
		{name: "multi-level", prefix: "/api/v1", panics: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover() != nil
				if recovered != tt.panics {
					t.Errorf("panic = %v, want %v", recovered, tt.panics)
				}
			}()
			module.New(tt.prefix, http.NewServeMux())
		})
	}
}

func TestModuleStripsPrefix(t *testing.T) {
	m := module.New("/api", echoMux(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/documents", nil)
	m.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "/documents" {
		t.Errorf("inner path = %q, want /documents", body)
	}
}

func TestModuleMiddlewareApplies(t *testing.T) {
	m := module.New("/api", echoMux(t))
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "applied")
			next.ServeHTTP(w, r)
		})
	})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api/documents", nil))

	if rec.Header().Get("X-Test") != "applied" {
		t.Error("middleware did not run")
	}
}

func TestRouterDispatchesByPrefix(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoMux(t)))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "module route", path: "/api/documents", wantCode: http.StatusOK, wantBody: "/documents"},
		{name: "trailing slash normalized", path: "/api/documents/", wantCode: http.StatusOK, wantBody: "/documents"},
		{name: "native fallback", path: "/healthz", wantCode: http.StatusOK, wantBody: "ok"},
		{name: "unmatched", path: "/missing", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
