package router

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"askpdf/config"
	"askpdf/controllers"
	"askpdf/middleware"
	"askpdf/services"
	"askpdf/templates"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	qa := services.NewQAService(services.NewAIClient(cfg))
	return New(qa, services.NewPDFService())
}

// New wires the handlers onto a fresh engine.
func New(qa *services.QAService, pdf *services.PDFService) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		gin.Logger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Server error: %v", recovered)})
		}),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:   []string{"Content-Disposition", middleware.RequestIDHeader},
			MaxAge:          12 * time.Hour,
		}),
	)
	r.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	qaCtl := controllers.NewQAController(qa)
	pdfCtl := controllers.NewPDFController(pdf)

	r.GET("/", pdfCtl.Index)
	r.POST("/", pdfCtl.TextToPDF)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/ask", qaCtl.AnswerQuestion)
		api.POST("/download-pdf", pdfCtl.DownloadQA)
	}

	return r
}
