package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StatusMessage is served at "/" when no client bundle is present.
const StatusMessage = "Biba Clothing Centre API is running. Build the client and place it in client/dist or client/build to serve the frontend."

// RegisterStatic serves the client bundle in dir with an index.html fallback for
// client-side routes. Unknown /api paths still get a 404. An empty dir serves StatusMessage at "/".
func RegisterStatic(r *gin.Engine, dir string) {
	if dir == "" {
		r.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, StatusMessage)
		})
		return
	}

	index := filepath.Join(dir, "index.html")
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.String(http.StatusNotFound, "API route not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	})
}
