package routes

import (
	"github.com/gin-gonic/gin"

	"ma3_reports/internal/controllers"
	"ma3_reports/internal/docstore"
)

func UserRoutes(r *gin.Engine, store docstore.Store) {
	uc := controllers.NewUserController(store)
	r.Any("/users", uc.Handle)
	r.Any("/users/register", uc.Handle)
	r.Any("/users/login", uc.Handle)
	r.Any("/users/:id", uc.Handle)
	r.Any("/users/:id/password", uc.Handle)
}
