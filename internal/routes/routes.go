package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"

	"ma3_reports/internal/docstore"
	"ma3_reports/internal/respond"
)

// SetupRouter builds the engine and registers every resource against
// the injected store. Panics anywhere below are recovered into the
// uniform 500 envelope; unmatched paths get the 404 envelope.
func SetupRouter(store docstore.Store) *gin.Engine {
	r := gin.New()

	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logrus.WithField("panic", err).Error("recovered from panic")
		respond.Write(c, 500)
		c.Abort()
	}))

	// Request logging middleware
	r.Use(ginlogger.SetLogger(
		ginlogger.WithLogger(func(_ *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.Output(gin.DefaultWriter).With().Timestamp().Logger()
		}),
	))

	r.NoRoute(func(c *gin.Context) {
		respond.Write(c, 404)
	})

	MapRoutes(r, store)
	ReportRoutes(r, store)
	RouteRoutes(r, store)
	UserRoutes(r, store)

	return r
}
