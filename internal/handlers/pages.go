package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/contest-tracker/internal/errors"
)

// StaticPages serves files from a web root, falling back to index.html so
// client-side routes resolve. API paths never fall through to pages.
// Dot segments are resolved before lookup so requests stay inside root.
func StaticPages(root string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cleaned := path.Clean("/" + c.Request.URL.Path)
		if root == "" || cleaned == "/api" || strings.HasPrefix(cleaned, "/api/") ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			apierrors.NotFound(c, "")
			return
		}

		// http.ServeFile rejects any request path that still contains "..".
		c.Request.URL.Path = cleaned
		c.Request.URL.RawPath = ""

		name := filepath.Join(root, filepath.FromSlash(cleaned))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}

		index := filepath.Join(root, "index.html")
		if _, err := os.Stat(index); err != nil {
			apierrors.NotFound(c, "")
			return
		}
		c.File(index)
	}
}
