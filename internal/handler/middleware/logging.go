package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strings"
	"time"

	"fieldbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

type requestLogger struct {
	logger *slog.Logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

func newRequestLogger(cfg config.LogConfig) *requestLogger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

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

	return &requestLogger{logger: logger}
}

// NewSlogLogger builds the process-wide slog logger from the log config
// and installs it as the default.
func NewSlogLogger(cfg config.LogConfig) *slog.Logger {
	return newRequestLogger(cfg).logger
}

// LoggingMiddleware logs request start/completion with a request ID
// (incoming X-Request-ID is honored, otherwise one is generated) and
// the authenticated user when available.
func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	rl := &requestLogger{logger: logger}
	if logger == nil {
		rl = newRequestLogger(cfg)
	}
	return rl.handle
}

func (rl *requestLogger) handle(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = newRequestID()
	}
	c.Writer.Header().Set(requestIDHeader, requestID)

	attrs := []any{
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"client_ip", c.ClientIP(),
	}
	if userID, role := userContext(c); userID != "" {
		attrs = append(attrs, "user_id", userID)
		if role != "" {
			attrs = append(attrs, "role", role)
		}
	}

	rl.logger.Info("Request started", attrs...)

	c.Next()

	status := c.Writer.Status()
	attrs = append(attrs,
		"status_code", status,
		"duration", time.Since(start),
	)
	if size := c.Writer.Size(); size > 0 {
		attrs = append(attrs, "response_size", size)
	}
	if len(c.Errors) > 0 {
		attrs = append(attrs, "errors", c.Errors.String())
	}

	switch {
	case status >= 500:
		rl.logger.Error("Request completed", attrs...)
	case status >= 400:
		rl.logger.Warn("Request completed", attrs...)
	default:
		rl.logger.Info("Request completed", attrs...)
	}
}

func newRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return time.Now().UTC().Format("20060102150405.000000000")
	}
	return hex.EncodeToString(buf)
}

func userContext(c *gin.Context) (userID, role string) {
	claims, exists := c.Get("jwt_claims")
	if !exists {
		return "", ""
	}
	claimsMap, ok := claims.(map[string]any)
	if !ok {
		return "", ""
	}
	userID, _ = claimsMap["user_id"].(string)
	role, _ = claimsMap["role"].(string)
	return userID, role
}
