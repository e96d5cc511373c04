package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/class-coins-api/internal/middleware"
	"github.com/noah-isme/class-coins-api/internal/service"
	"github.com/noah-isme/class-coins-api/internal/store"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth     *service.AuthService
	Classes  *service.ClassService
	Students *service.StudentService
	Store    store.Store
	Metrics  *service.MetricsService
}

// RegisterRoutes attaches the API surface to the engine. The read-only
// endpoints and the login pair are public; every mutating route sits
// behind the admin gate.
func RegisterRoutes(r *gin.Engine, d Deps) {
	authHandler := NewAuthHandler(d.Auth)
	classHandler := NewClassHandler(d.Classes)
	studentHandler := NewStudentHandler(d.Students)
	healthHandler := NewHealthHandler(d.Store)

	api := r.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.GET("/classes", classHandler.List)
	api.GET("/classes/:id/students", studentHandler.ListByClass)
	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/logout", authHandler.Logout)

	admin := api.Group("", middleware.Admin(d.Auth))
	admin.POST("/classes", classHandler.Create)
	admin.DELETE("/classes/:id", classHandler.Delete)
	admin.GET("/classes/:id/export", studentHandler.ExportByClass)
	admin.POST("/students", studentHandler.Create)
	admin.DELETE("/students/:id", studentHandler.Delete)
	admin.PATCH("/students/:id/coins", studentHandler.ApplyCoinsDelta)

	if d.Metrics != nil {
		r.GET("/metrics", NewMetricsHandler(d.Metrics).Prometheus)
	}
}
