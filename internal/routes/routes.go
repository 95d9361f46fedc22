package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/studioflow/studioflow-backend/internal/handler"
	"github.com/studioflow/studioflow-backend/internal/middleware"
	"github.com/studioflow/studioflow-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	contentHandler *handler.ContentHandler,
	assignmentHandler *handler.AssignmentHandler,
	sequenceHandler *handler.SequenceHandler,
	teamHandler *handler.TeamHandler,
	jwtManager *jwt.Manager,
) {
	router.Use(middleware.RequestLogger(), middleware.Metrics())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1", middleware.JWTAuth(jwtManager))

	records := api.Group("/records")
	{
		records.POST("", contentHandler.CreateRecord)
		records.GET("", contentHandler.ListRecords)
		records.GET("/:id", contentHandler.GetRecord)

		// review gateway, admin decisions only
		records.POST("/:id/approve", middleware.RequireAdmin(), contentHandler.Approve)
		records.POST("/:id/reject", middleware.RequireAdmin(), contentHandler.Reject)
		records.POST("/:id/disapprove", middleware.RequireAdmin(), contentHandler.Disapprove)
		records.POST("/:id/resubmit", contentHandler.Resubmit)

		// stage engine re-checks the acting role itself; the route stays
		// open to any authenticated role-holder
		records.POST("/:id/stage", contentHandler.AdvanceStage)

		records.POST("/:id/assignments", middleware.RequireAdmin(), assignmentHandler.AssignRole)
	}

	api.POST("/sequence/:namespace", middleware.RequireAdmin(), sequenceHandler.Allocate)

	api.GET("/profiles", teamHandler.ListProfiles)
	api.POST("/profiles", middleware.RequireAdmin(), teamHandler.CreateProfile)
	api.GET("/members", teamHandler.ListMembers)
	api.POST("/members", middleware.RequireAdmin(), teamHandler.CreateMember)
}
