// Package server assembles the HTTP router: the API route group and the SPA
// fallback for everything else.
package server

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/advmanik/casefolio/internal/api"
	"github.com/advmanik/casefolio/internal/config"
	"github.com/advmanik/casefolio/internal/logging"
	"github.com/advmanik/casefolio/internal/store"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine. dist holds the pre-built client bundle; any GET
// outside the /api prefix falls back to its entry document so client-side
// routing can take over.
func New(cfg config.Config, cases store.CaseStore, log logging.Logger, dist fs.FS) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.CORS(cfg.CORSOrigin))

	h := &api.Handler{Store: cases, Config: cfg, Log: log}

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/login", h.Login)
		apiGroup.GET("/cases", h.ListCases)

		protected := apiGroup.Group("", api.Authenticate([]byte(cfg.JWTSecret)))
		protected.POST("/cases", h.CreateCase)
		protected.PUT("/cases/:id", h.UpdateCase)
		protected.DELETE("/cases/:id", h.DeleteCase)
	}

	// The /api exclusion must run before the SPA fallback: unknown API paths
	// get a JSON 404, never the entry document.
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		file, err := dist.Open(strings.TrimPrefix(path, "/"))
		if err == nil {
			file.Close()
			http.FileServer(http.FS(dist)).ServeHTTP(c.Writer, c.Request)
			return
		}
		c.FileFromFS("/", http.FS(dist))
	})

	return r
}
