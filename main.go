package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"saleslens/backend/config"
	"saleslens/backend/middlewares"
	"saleslens/backend/routes"
)

func main() {
	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, cfg)
	logrus.Infof("server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
