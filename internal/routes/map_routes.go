package routes

import (
	"github.com/gin-gonic/gin"

	"ma3_reports/internal/controllers"
	"ma3_reports/internal/docstore"
)

func MapRoutes(r *gin.Engine, store docstore.Store) {
	mc := controllers.NewMapController(store)
	r.Any("/maps", mc.Handle)
	r.Any("/maps/:id", mc.Handle)
}
