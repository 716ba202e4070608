package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(farm *handlers.FarmHandler, calendar *handlers.CalendarHandler, prod *handlers.ProductionHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/batches", farm.RegisterBatch)
		v1.GET("/batches", farm.ListBatches)
		v1.GET("/batches/:id", farm.GetBatch)
		v1.POST("/batches/:id/close", farm.CloseBatch)

		v1.POST("/breeds", farm.SaveBreed)
		v1.GET("/breeds", farm.ListBreeds)
		v1.GET("/breeds/:id", farm.GetBreed)

		v1.POST("/vaccines", farm.SaveVaccinePreset)
		v1.GET("/vaccines", farm.ListVaccinePresets)

		v1.POST("/suppliers", farm.CreateSupplier)
		v1.GET("/suppliers", farm.ListSuppliers)
		v1.DELETE("/suppliers/:id", farm.DeleteSupplier)

		v1.GET("/batches/:id/calendar", calendar.Calendar)
		v1.GET("/batches/:id/calendar/export", calendar.CalendarCSV)
		v1.POST("/batches/:id/vaccinations", calendar.ApplyVaccine)
		v1.GET("/batches/:id/vaccinations", calendar.ListVaccinations)
		v1.POST("/batches/:id/weighings/:week", calendar.RecordWeight)
		v1.GET("/batches/:id/weighings", calendar.ListWeighings)

		v1.POST("/batches/:id/alerts/refresh", calendar.RefreshAlerts)
		v1.GET("/batches/:id/alerts", calendar.ListBatchAlerts)
		v1.GET("/alerts", calendar.ListAlerts)
		v1.POST("/alerts/:id/ack", calendar.AcknowledgeAlert)

		v1.POST("/batches/:id/eggs", prod.RecordEggs)
		v1.GET("/batches/:id/eggs", prod.ListEggs)
		v1.GET("/batches/:id/eggs/summary", prod.EggSummary)
		v1.GET("/batches/:id/feed-cost", prod.BatchFeedCost)

		v1.POST("/feed-inputs", prod.SaveFeedInput)
		v1.GET("/feed-inputs", prod.ListFeedInputs)
		v1.POST("/feed-inputs/:id/adjust", prod.AdjustStock)

		v1.POST("/feed-formulas", prod.CreateFormula)
		v1.GET("/feed-formulas", prod.ListFormulas)
		v1.GET("/feed-formulas/:id/cost", prod.FormulaCost)
		v1.DELETE("/feed-formulas/:id", prod.DeleteFormula)

		v1.GET("/dashboard", prod.Dashboard)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
