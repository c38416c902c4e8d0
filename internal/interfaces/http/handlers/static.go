// internal/interfaces/http/handlers/static.go
package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	indexFile       = "index.html"
	defaultMIMEType = "application/octet-stream"
)

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".mjs":  "text/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
	".ico":  "image/x-icon",
	".txt":  "text/plain; charset=utf-8",
}

var errBadPath = errors.New("path escapes static root")

// StaticHandler serves the storefront's files from a root directory.
// It is registered as the router fallback.
type StaticHandler struct {
	root   string
	logger *logrus.Logger
}

// NewStaticHandler creates a static handler rooted at root
func NewStaticHandler(root string, logger *logrus.Logger) *StaticHandler {
	return &StaticHandler{
		root:   root,
		logger: logger,
	}
}

// ContentType returns the content type for a file name by extension
func ContentType(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return defaultMIMEType
}

// Serve handles GET and HEAD for any path the API does not claim
func (h *StaticHandler) Serve(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	method := c.Request.Method
	if method != http.MethodGet && method != http.MethodHead {
		c.Header("Allow", "GET, HEAD")
		c.String(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}

	path, err := h.resolve(c.Request.URL.EscapedPath())
	if err != nil {
		c.String(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	body, name, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return
		}
		h.logger.WithError(err).WithField("path", path).Error("Failed to read static file")
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if method == http.MethodHead {
		c.Header("Content-Type", ContentType(name))
		c.Header("Content-Length", strconv.Itoa(len(body)))
		c.Status(http.StatusOK)
		return
	}
	c.Data(http.StatusOK, ContentType(name), body)
}

// resolve maps an escaped request path to a file path under the root.
// Traversal is rejected before the filesystem is touched.
func (h *StaticHandler) resolve(escapedPath string) (string, error) {
	decoded, err := url.PathUnescape(escapedPath)
	if err != nil {
		return "", err
	}
	if decoded == "/" || decoded == "" {
		decoded = "/" + indexFile
	}

	rel := filepath.Clean(strings.TrimPrefix(decoded, "/"))
	if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", errBadPath
	}

	path := filepath.Join(h.root, rel)
	// A trailing slash names a directory, so "file.html/" must not open the file
	if strings.HasSuffix(decoded, "/") {
		path += string(filepath.Separator)
	}
	return path, nil
}

// readFile reads path, falling back to the directory's index file. The
// returned name decides the content type.
func readFile(path string) ([]byte, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}
	if info.IsDir() {
		path = filepath.Join(path, indexFile)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return body, path, nil
}
