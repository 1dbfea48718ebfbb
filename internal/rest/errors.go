package rest

import (
	"errors"
	"net/http"

	"socialfeed-api/feed/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// errorResponse is the wire shape for every failure.
type errorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorResponse{
		Error:   "NOT_FOUND",
		Message: message,
	})
}

func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
	})
}

func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Error:   "VALIDATION_ERROR",
		Message: "The request body is invalid",
		Details: []string{err.Error()},
	})
}

// respondServiceError maps a service outcome to a response. Expected
// outcomes carry their own type; anything else is an internal fault and
// surfaces as a generic 500 with no detail leaked.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, domain.ErrNotFound) {
		respondNotFound(c, notFoundMessage)
		return
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		respondValidationError(c, ve.Message)
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
	})
}
