package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"finance-dashboard-go/internal/config"
)

const matriculaKey = "matricula"

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("request")
			return
		}
		entry.Info("request")
	}
}

// requireMatricula trims the membership identifier and rejects values that
// could never name a user, storing the clean value under matriculaKey.
func requireMatricula() gin.HandlerFunc {
	return func(c *gin.Context) {
		m := strings.TrimSpace(c.Param("matricula"))
		if m == "" || len(m) > 32 || strings.IndexFunc(m, invalidMatriculaRune) >= 0 {
			c.AbortWithStatusJSON(400, gin.H{"error": "invalid_matricula"})
			return
		}
		c.Set(matriculaKey, m)
		c.Next()
	}
}

func invalidMatriculaRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return false
	case r == '-' || r == '_' || r == '.':
		return false
	}
	return true
}
