package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smsflow/attentive-adapter/models"
	"github.com/smsflow/attentive-adapter/providers/attentive"
	"github.com/smsflow/attentive-adapter/utils"
)

type executeRequest struct {
	Resource       string           `json:"resource" binding:"required"`
	Operation      string           `json:"operation" binding:"required"`
	Items          []map[string]any `json:"items"`
	ContinueOnFail bool             `json:"continueOnFail"`
}

// handleExecute is the bridge the workflow host calls: one batch in, the
// flattened result list out.
func (s *Server) handleExecute(c *gin.Context) {
	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(err.Error()))
		return
	}

	// A batch without items still resolves the resource/operation pair, so
	// configuration mistakes surface even on empty input.
	items := make([]utils.Params, len(req.Items))
	for i, raw := range req.Items {
		items[i] = utils.Params(raw)
	}

	results, err := s.dispatcher.Run(c.Request.Context(), attentive.Batch{
		Resource:       req.Resource,
		Operation:      req.Operation,
		Items:          items,
		ContinueOnFail: req.ContinueOnFail,
	})
	if err != nil {
		c.JSON(statusForError(err), models.NewError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.NewSuccess("batch processed", gin.H{"results": results}))
}

// statusForError maps the adapter error taxonomy onto HTTP statuses for the
// host-facing bridge.
func statusForError(err error) int {
	var authErr *attentive.AuthError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}

	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var unsupportedErr *attentive.UnsupportedOperationError
	if errors.As(err, &unsupportedErr) {
		return http.StatusBadRequest
	}

	var apiErr *attentive.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
