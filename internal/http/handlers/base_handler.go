// README: Handler utilities: JSON helpers and pipeline error mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/history"
	"yatra/internal/planner"
)

type errorResponse struct {
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, kind, msg string) {
	writeJSON(c, status, errorResponse{ErrorKind: kind, Message: msg})
}

// writePlanError maps the pipeline error taxonomy onto HTTP statuses:
// 400 invalid_request, 502 upstream_failure, 500 malformed_response.
func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidRequest):
		writeError(c, http.StatusBadRequest, history.OutcomeInvalidRequest, err.Error())
	case errors.Is(err, planner.ErrUpstreamFailure):
		writeError(c, http.StatusBadGateway, history.OutcomeUpstreamFailure, err.Error())
	case errors.Is(err, planner.ErrMalformedResponse):
		writeError(c, http.StatusInternalServerError, history.OutcomeMalformedResponse, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return history.OutcomeOK
	case errors.Is(err, planner.ErrInvalidRequest):
		return history.OutcomeInvalidRequest
	case errors.Is(err, planner.ErrUpstreamFailure):
		return history.OutcomeUpstreamFailure
	case errors.Is(err, planner.ErrMalformedResponse):
		return history.OutcomeMalformedResponse
	default:
		return "internal"
	}
}
