package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// NoRoute answers unknown /api paths with a JSON 404 and serves the frontend
// bundle for everything else, falling back to index.html for client routes.
func (h *Handler) NoRoute(c *gin.Context) {
	p := c.Request.URL.Path
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Route not found", p)
		return
	}
	if h.FrontendDist == "" {
		h.frontendMissing(c)
		return
	}

	name := filepath.Join(h.FrontendDist, filepath.FromSlash(path.Clean("/"+p)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		c.File(name)
		return
	}
	index := filepath.Join(h.FrontendDist, "index.html")
	if _, err := os.Stat(index); err == nil {
		c.File(index)
		return
	}
	h.frontendMissing(c)
}

func (h *Handler) frontendMissing(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Frontend not available. Build the frontend bundle first."})
}
