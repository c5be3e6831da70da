package api

import (
	"net/http/httputil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DumpRequest is a middleware to dump incoming http requests if the
// trace mode is enabled. The authorization header is never dumped.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		req := c.Request.Clone(c.Request.Context())
		req.Header.Del("Authorization")

		dump, err := httputil.DumpRequest(req, false)
		if err != nil {
			log.WithFields(logrus.Fields{
				"prefix": "gin",
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).WithError(err).Error("fail to dump request")
		}

		log.WithFields(logrus.Fields{
			"prefix":     "gin",
			"request_id": c.GetString("request_id"),
			"req":        string(dump),
		}).Debug("incoming request")
	}

	c.Next()

	if s.traceMode {
		log.WithFields(logrus.Fields{
			"prefix":     "gin",
			"request_id": c.GetString("request_id"),
			"status":     c.Writer.Status(),
			"requester":  c.GetString("requester"),
		}).Debug("request completed")
	}
}
