// Package static serves the pre-built front-end bundle.
package static

import (
	"net/http"
	"path"

	ginstatic "github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/Gokulvemuri/job-application-manager/internal/utilities"
)

// IndexFile is served for every GET path that is not a file in the bundle
const IndexFile = "index.html"

// SPA serves a single page application from Dir
type SPA struct {
	Dir string
	fs  ginstatic.ServeFileSystem
}

// NewSPA creates a responder for the bundle in dir
func NewSPA(dir string) *SPA {
	return &SPA{
		Dir: dir,
		fs:  ginstatic.LocalFile(dir, false),
	}
}

// Serve is meant to be registered as the router's NoRoute handler.
// Existing files are served as-is, other GET and HEAD requests get
// index.html so the client side router can take over.
func (s *SPA) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Not found"})
		return
	}

	name := path.Clean("/" + c.Request.URL.Path)
	if s.serveFile(c, name) || s.serveFile(c, "/"+IndexFile) {
		return
	}
	c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Not found"})
}

// serveFile writes the regular file at name and reports whether it did.
// Directories are never listed.
func (s *SPA) serveFile(c *gin.Context, name string) bool {
	if !s.fs.Exists("/", name) {
		return false
	}

	f, err := s.fs.Open(name)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}
