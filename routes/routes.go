package routes

import (
	"github.com/gin-gonic/gin"

	"saleslens/backend/config"
	"saleslens/backend/controllers"
)

func Register(r *gin.Engine, cfg config.Config) {
	api := r.Group("/api")
	{
		api.GET("/healthz", controllers.Health())

		data := api.Group("/data")
		// Upload and analyze sales files (CSV/XLSX); multiple files merge
		data.POST("/upload-analyze", controllers.UploadAnalyze(cfg))
		// Normalization only: role map + canonical records
		data.POST("/normalize", controllers.NormalizeTable(cfg))
	}
}
