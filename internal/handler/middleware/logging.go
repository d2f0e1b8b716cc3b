package middleware

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"lounge-pos/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLen = 64
)

// NewSlogLogger builds the process logger and installs it as the slog default.
// Timestamps are rendered in cfg.TimeZone so counter staff read local times.
func NewSlogLogger(cfg config.LogConfig) *slog.Logger {
	timezone := logTimeZone(cfg)
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// RequestLogger writes one start and one completion line per request. Health
// probes only log at debug.
func RequestLogger(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	timezone := logTimeZone(cfg)

	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := incomingRequestID(c)
		if requestID == "" {
			requestID = newRequestID(startTime.In(timezone))
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		baseLevel := slog.LevelInfo
		if c.Request.URL.Path == "/health" {
			baseLevel = slog.LevelDebug
		}

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		logger.LogAttrs(context.Background(), baseLevel, "Request started", attrs...)

		c.Next()

		statusCode := c.Writer.Status()
		// route params and the operator are only known once routing and auth ran
		if route := c.FullPath(); route != "" {
			attrs = append(attrs, slog.String("route", route))
		}
		if deviceID := c.Param("id"); deviceID != "" && strings.HasPrefix(c.FullPath(), "/api/devices/") {
			attrs = append(attrs, slog.String("device_id", deviceID))
		}
		if operator, ok := GetOperator(c); ok {
			attrs = append(attrs, slog.String("operator", operator))
		}
		attrs = append(attrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := baseLevel
		switch {
		case statusCode >= 500:
			level = slog.LevelError
		case statusCode >= 400:
			level = slog.LevelWarn
		}
		logger.LogAttrs(context.Background(), level, "Request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func incomingRequestID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
	if len(id) > maxRequestIDLen {
		return ""
	}
	return id
}

func newRequestID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return now.Format("20060102150405") + "-" + random[:8]
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logTimeZone(cfg config.LogConfig) *time.Location {
	timezone, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	}
	return timezone
}
