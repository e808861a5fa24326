package routes

import (
	"github.com/gin-gonic/gin"

	"ma3_reports/internal/controllers"
	"ma3_reports/internal/docstore"
)

func RouteRoutes(r *gin.Engine, store docstore.Store) {
	rc := controllers.NewRouteController(store)
	r.Any("/routes", rc.Handle)
	r.Any("/routes/:id", rc.Handle)
}
