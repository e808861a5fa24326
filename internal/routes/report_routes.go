package routes

import (
	"github.com/gin-gonic/gin"

	"ma3_reports/internal/controllers"
	"ma3_reports/internal/docstore"
)

func ReportRoutes(r *gin.Engine, store docstore.Store) {
	rc := controllers.NewReportController(store)
	r.Any("/reports", rc.Handle)
	r.Any("/reports/:id", rc.Handle)
}
