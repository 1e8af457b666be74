// Package router assembles the gin engine and routes.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/MiranSiddique/FLORO/internal/feature/auth/transport/handler"
	detailshandler "github.com/MiranSiddique/FLORO/internal/feature/details/transport/handler"
	identifyhandler "github.com/MiranSiddique/FLORO/internal/feature/identify/transport/handler"
	plantshandler "github.com/MiranSiddique/FLORO/internal/feature/plants/transport/handler"
	"github.com/MiranSiddique/FLORO/internal/platform/http/handler"
	jwtmw "github.com/MiranSiddique/FLORO/internal/platform/jwt"
)

// NewRouter wires all handlers into a gin engine. The stored-record routes
// require a valid admin JWT; everything else is open.
func NewRouter(identify *identifyhandler.IdentifyHandler, details *detailshandler.DetailsHandler,
	auth *authhandler.AuthHandler, plants *plantshandler.PlantsHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// Identification pipeline
		api.POST("/identify", identify.Identify)
		// Descriptive-text proxy
		api.POST("/plant-details", details.GetPlantDetails)
		// Admin login (issues the JWT for the record routes)
		api.POST("/admin/login", auth.Login)
	}

	// Stored identification records, admin only
	records := api.Group("/plants")
	records.Use(jwtmw.AuthRequired())
	{
		records.GET("", plants.List)
		records.GET("/:id", plants.Get)
		records.DELETE("/:id", plants.Delete)
	}

	return r
}
