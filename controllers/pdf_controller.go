package controllers

import (
	"log"
	"net/http"

	"askpdf/middleware"
	"askpdf/services"

	"github.com/gin-gonic/gin"
)

type DownloadRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type PDFController struct {
	pdf *services.PDFService
}

func NewPDFController(pdf *services.PDFService) *PDFController {
	return &PDFController{pdf: pdf}
}

// DownloadQA renders a question/answer pair as a PDF attachment.
func (ctl *PDFController) DownloadQA(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctl.fail(c, &services.ValidationError{Message: "Invalid request body: " + err.Error()})
		return
	}

	file, err := ctl.pdf.QADocument(req.Question, req.Answer)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	sendFile(c, file)
}

// Index renders the input form.
func (ctl *PDFController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"title": "Ask & Print"})
}

// TextToPDF turns the posted form field "text" into a PDF attachment.
func (ctl *PDFController) TextToPDF(c *gin.Context) {
	file, err := ctl.pdf.TextDocument(c.PostForm("text"))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	sendFile(c, file)
}

func (ctl *PDFController) fail(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	log.Printf("[%s] pdf failed (%d): %v", middleware.GetRequestID(c), status, err)
	respondError(c, status, err)
}

func sendFile(c *gin.Context, file *services.PDFFile) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
