package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/server/handlers"
	"github.com/HowardChu-bme/Taxi-Receipt/web"
)

// New wires the gin engine with the form routes and middlewares.
func New(h *handlers.Handler, maxUploadBytes int64, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	if maxUploadBytes > 0 {
		r.MaxMultipartMemory = maxUploadBytes
	}
	r.SetHTMLTemplate(web.Pages())

	static, _ := fs.Sub(web.StaticFS, "static")
	r.StaticFS("/static", http.FS(static))

	r.GET("/", h.Index)
	r.POST("/submit", h.Submit)
	r.GET("/records/:idx/pdf", h.RecordPDF)
	r.GET("/records/:idx/receipt", h.ReceiptFile)
	r.GET("/export/csv", h.ExportCSV)
	r.GET("/export/chart.png", h.FareChart)
	r.GET("/healthz", h.Health)

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
