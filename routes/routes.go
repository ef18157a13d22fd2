package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/OmarAymanHeikal/Cms-Discovery/cache"
	"github.com/OmarAymanHeikal/Cms-Discovery/controllers"
	"github.com/OmarAymanHeikal/Cms-Discovery/middleware"
	"github.com/OmarAymanHeikal/Cms-Discovery/repositories"
	"github.com/OmarAymanHeikal/Cms-Discovery/services"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	programRepo := repositories.NewProgramRepository(db, logger)
	programSvc := services.NewProgramService(db, programRepo, logger)
	discoverySvc := services.NewDiscoveryService(programRepo, cache.NewMemory(), logger)

	cmsCtl := controllers.NewCMSController(programSvc, logger)
	discoveryCtl := controllers.NewDiscoveryController(discoverySvc, programSvc, logger)
	categoryCtl := controllers.NewCategoryController(db)
	tagCtl := controllers.NewTagController(db)
	commentCtl := controllers.NewCommentController(db)

	r.GET("/health", controllers.HealthCheck(db))

	api := r.Group("/api")

	cms := api.Group("/cms")
	{
		cms.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin", "editor"))

		cms.POST("/programs", cmsCtl.CreateProgram)
		cms.PUT("/programs/:id", cmsCtl.UpdateProgram)
		cms.DELETE("/programs/:id", cmsCtl.DeleteProgram)
		cms.GET("/programs/:id", cmsCtl.GetProgram)
		cms.POST("/programs/search", cmsCtl.SearchPrograms)
		cms.GET("/programs", cmsCtl.GetProgramsByStatus)

		cms.GET("/programs/:id/comments", commentCtl.GetProgramComments)
		cms.PATCH("/comments/:id/approve", commentCtl.ApproveComment)
		cms.DELETE("/comments/:id", commentCtl.DeleteComment)

		cms.POST("/categories", categoryCtl.CreateCategory)
		cms.GET("/categories", categoryCtl.GetCategories)
		cms.PUT("/categories/:id", categoryCtl.UpdateCategory)
		cms.DELETE("/categories/:id", categoryCtl.DeleteCategory)

		cms.POST("/tags", tagCtl.CreateTag)
		cms.GET("/tags", tagCtl.GetTags)
		cms.DELETE("/tags/:id", tagCtl.DeleteTag)
	}

	discovery := api.Group("/discovery")
	{
		discovery.GET("/search", discoveryCtl.SearchPrograms)
		discovery.GET("/programs/:id", discoveryCtl.GetProgram)
		discovery.POST("/programs/:id/comments", commentCtl.CreateComment)
		discovery.GET("/categories", categoryCtl.GetActiveCategories)
		discovery.GET("/categories/:categoryId/programs", discoveryCtl.GetProgramsByCategory)
		discovery.GET("/tags/:tagId/programs", discoveryCtl.GetProgramsByTag)
		discovery.GET("/trending", discoveryCtl.GetTrendingPrograms)
		discovery.GET("/recent", discoveryCtl.GetRecentPrograms)
	}

	return r
}
