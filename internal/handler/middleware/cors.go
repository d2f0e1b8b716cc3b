package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lounge-pos/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// The dashboard reads the export filename and echoes request ids, so these
// are always allowed regardless of configuration.
var (
	requiredAllowHeaders  = []string{RequestIDHeader}
	requiredExposeHeaders = []string{"Content-Disposition", RequestIDHeader}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     mergeHeaders(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

// mergeHeaders appends required names missing from configured, comparing canonical forms.
func mergeHeaders(configured, required []string) []string {
	out := make([]string, 0, len(configured)+len(required))
	seen := make(map[string]struct{}, cap(out))
	for _, h := range append(append([]string{}, configured...), required...) {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		key := http.CanonicalHeaderKey(h)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, h)
	}
	return out
}
