// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "hackathon_backend/internal/feature/auth/transport/handler"
	authmw "hackathon_backend/internal/feature/auth/transport/middleware"
	eventshandler "hackathon_backend/internal/feature/events/transport/handler"
	"hackathon_backend/internal/platform/http/handler"
)

// NewRouter builds the Gin engine with all routes registered. Admin listings
// sit behind the access gate; everything else is public.
func NewRouter(authH *authhandler.AuthHandler, eventsH *eventshandler.EventsHandler,
	gate *authmw.AccessGate, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Liveness probe
	r.GET("/healthz", handler.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
	}

	events := r.Group("/api/events")
	{
		// Public: registration, idea submission and the visitor counter
		events.POST("/register", eventsH.Register)
		events.POST("/idea", eventsH.SubmitIdea)
		events.GET("/count", eventsH.Count)

		// Admin dashboard listings require a verified admin principal
		admin := events.Group("")
		admin.Use(gate.Authenticate(), gate.AdminOnly())
		{
			admin.GET("/registrations", eventsH.ListRegistrations)
			admin.GET("/ideas", eventsH.ListIdeas)
		}
	}

	return r
}
