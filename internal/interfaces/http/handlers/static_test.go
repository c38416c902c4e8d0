package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexBody = "<!doctype html><title>PrintMart</title>"

func newStaticRouter(t *testing.T) *gin.Engine {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), indexBody)
	writeFile(t, filepath.Join(root, "styles.css"), "body { margin: 0; }")
	writeFile(t, filepath.Join(root, "app.MJS"), "export {}")
	writeFile(t, filepath.Join(root, "model.stl"), "solid cube")
	writeFile(t, filepath.Join(root, "docs", "index.html"), "<h1>Docs</h1>")
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))
	writeFile(t, filepath.Join(filepath.Dir(root), "secret"), "do not serve")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.NoRoute(NewStaticHandler(root, logger).Serve)
	return r
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func serve(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestStaticIndex(t *testing.T) {
	r := newStaticRouter(t)

	root := serve(r, http.MethodGet, "/")
	index := serve(r, http.MethodGet, "/index.html")

	require.Equal(t, http.StatusOK, root.Code)
	require.Equal(t, http.StatusOK, index.Code)
	assert.Equal(t, indexBody, root.Body.String())
	assert.Equal(t, index.Body.Bytes(), root.Body.Bytes())
	assert.Equal(t, "text/html; charset=utf-8", root.Header().Get("Content-Type"))
}

func TestStaticResponses(t *testing.T) {
	r := newStaticRouter(t)

	tests := []struct {
		name        string
		method      string
		target      string
		code        int
		contentType string
		body        string
	}{
		{"stylesheet", http.MethodGet, "/styles.css", http.StatusOK, "text/css; charset=utf-8", "body { margin: 0; }"},
		{"extension is case insensitive", http.MethodGet, "/app.MJS", http.StatusOK, "text/javascript; charset=utf-8", "export {}"},
		{"unknown extension", http.MethodGet, "/model.stl", http.StatusOK, "application/octet-stream", "solid cube"},
		{"query is ignored", http.MethodGet, "/styles.css?v=3", http.StatusOK, "text/css; charset=utf-8", "body { margin: 0; }"},
		{"directory serves its index", http.MethodGet, "/docs", http.StatusOK, "text/html; charset=utf-8", "<h1>Docs</h1>"},
		{"directory with trailing slash", http.MethodGet, "/docs/", http.StatusOK, "text/html; charset=utf-8", "<h1>Docs</h1>"},
		{"encoded name", http.MethodGet, "/styles%2Ecss", http.StatusOK, "text/css; charset=utf-8", "body { margin: 0; }"},
		{"missing file", http.MethodGet, "/does-not-exist.html", http.StatusNotFound, "", ""},
		{"directory without index", http.MethodGet, "/empty", http.StatusNotFound, "", ""},
		{"file used as directory", http.MethodGet, "/index.html/extra", http.StatusNotFound, "", ""},
		{"file with trailing slash", http.MethodGet, "/index.html/", http.StatusNotFound, "", ""},
		{"parent traversal", http.MethodGet, "/../secret", http.StatusBadRequest, "", ""},
		{"encoded parent traversal", http.MethodGet, "/%2e%2e/secret", http.StatusBadRequest, "", ""},
		{"nested traversal", http.MethodGet, "/docs/../../secret", http.StatusBadRequest, "", ""},
		{"encoded slash traversal", http.MethodGet, "/..%2fsecret", http.StatusBadRequest, "", ""},
		{"post not allowed", http.MethodPost, "/index.html", http.StatusMethodNotAllowed, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.target)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			}
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
			assert.NotContains(t, w.Body.String(), "do not serve")
		})
	}
}

func TestStaticReadFailure(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Symlink("loop", filepath.Join(root, "loop")))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.NoRoute(NewStaticHandler(root, logger).Serve)

	w := serve(r, http.MethodGet, "/loop")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), w.Body.String())
}

func TestStaticHead(t *testing.T) {
	r := newStaticRouter(t)

	w := serve(r, http.MethodHead, "/styles.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "19", w.Header().Get("Content-Length"))
	assert.Empty(t, w.Body.String())
}

func TestStaticResolve(t *testing.T) {
	h := NewStaticHandler("public", logrus.New())

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"/", filepath.Join("public", "index.html"), false},
		{"/img/logo.png", filepath.Join("public", "img", "logo.png"), false},
		{"/img/../styles.css", filepath.Join("public", "styles.css"), false},
		{"/img/", filepath.Join("public", "img") + string(filepath.Separator), false},
		{"/%2e%2e/secret", "", true},
		{"/..%2f..%2fetc/passwd", "", true},
		{"/%zz", "", true},
		{"//etc/passwd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := h.resolve(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("logo.png"))
	assert.Equal(t, "image/jpeg", ContentType("photo.JPEG"))
	assert.Equal(t, "image/svg+xml", ContentType("icon.svg"))
	assert.Equal(t, "application/octet-stream", ContentType("README"))
}
