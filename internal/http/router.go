// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/http/handlers"
	"fieldops/internal/http/middleware"
	"fieldops/internal/logging"
	"fieldops/internal/modules/assignment"
	"fieldops/internal/modules/contractor"
	"fieldops/internal/modules/job"
	"fieldops/internal/modules/recommend"
)

type RouterDeps struct {
	Jobs        *job.Service
	Contractors *contractor.Service
	Assignments *assignment.Service
	Recommend   *recommend.Service
	Log         *logging.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.Identity())

	jobHandler := handlers.NewJobHandler(deps.Jobs)
	r.POST("/api/jobs", jobHandler.Create)
	r.GET("/api/jobs/:id", jobHandler.Get)

	recHandler := handlers.NewRecommendHandler(deps.Recommend)
	r.GET("/api/jobs/:id/recommendations", recHandler.Get)

	contractorHandler := handlers.NewContractorHandler(deps.Contractors, deps.Recommend)
	r.GET("/api/contractors/:id", contractorHandler.Get)
	r.GET("/api/contractors/:id/slots", contractorHandler.Slots)
	r.POST("/api/contractors/:id/reviews", contractorHandler.AddReview)

	assignmentHandler := handlers.NewAssignmentHandler(deps.Assignments)
	r.POST("/api/assignments", assignmentHandler.Create)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
