package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"birdeye-relay/pkg/errs"
)

// Recovery turns a panic into a JSON server error so the caller never sees
// an empty response.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if r == http.ErrAbortHandler {
				panic(r)
			}

			e := errs.Server(fmt.Sprint(r))
			logger.Error().
				Str("request_id", GetRequestID(c)).
				Interface("panic", r).
				Msg("Recovered from panic")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(e.HTTPStatus(), e.Body())
		}()
		c.Next()
	}
}
