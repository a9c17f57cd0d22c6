package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/star/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

// Parameterized requests must collapse onto the route pattern, not one
// label per id.
func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := newTestRouter()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/star/:id", "GET", "200"))
	for _, id := range []string{"32349", "91262", "11767"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/star/"+id, nil)
		r.ServeHTTP(w, req)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/star/:id", "GET", "200"))

	if after-before != 3 {
		t.Errorf("counter delta = %v, want 3", after-before)
	}
}

func TestMiddlewareCollapsesUnknownPaths(t *testing.T) {
	r := newTestRouter()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("other", "GET", "404"))
	for _, path := range []string{"/wp-admin", "/.env", "/favicon.ico"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("other", "GET", "404"))

	if after-before != 3 {
		t.Errorf("counter delta = %v, want 3", after-before)
	}
}
