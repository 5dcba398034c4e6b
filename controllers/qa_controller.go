package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"askpdf/metrics"
	"askpdf/middleware"
	"askpdf/services"

	"github.com/gin-gonic/gin"
)

type QARequest struct {
	Question string `json:"question"`
}

type QAController struct {
	qa *services.QAService
}

func NewQAController(qa *services.QAService) *QAController {
	return &QAController{qa: qa}
}

// AnswerQuestion relays the question upstream and returns the answer with
// a timestamp.
func (ctl *QAController) AnswerQuestion(c *gin.Context) {
	var req QARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctl.fail(c, &services.ValidationError{Message: "Invalid request body: " + err.Error()})
		return
	}

	rec, err := ctl.qa.Ask(c.Request.Context(), req.Question)
	if err != nil {
		ctl.fail(c, err)
		return
	}

	metrics.AskRequests.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	c.JSON(http.StatusOK, rec)
}

func (ctl *QAController) fail(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	metrics.AskRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	log.Printf("[%s] ask failed (%d): %v", middleware.GetRequestID(c), status, err)
	respondError(c, status, err)
}

// respondError writes {error[, details]}. Upstream errors carry the raw
// upstream body in details.
func respondError(c *gin.Context, status int, err error) {
	body := gin.H{"error": err.Error()}
	var upstream *services.UpstreamError
	if errors.As(err, &upstream) {
		body["details"] = upstream.Body
	}
	c.JSON(status, body)
}
