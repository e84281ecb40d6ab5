package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/hotelapi"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
}

// writeError renders err as the JSON error envelope with the matching status code.
func writeError(c *gin.Context, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		log.Printf("request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, body)
}

func classify(err error) (int, errorResponse) {
	var verr *domain.ValidationError
	var apiErr *hotelapi.APIError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, errorResponse{Message: verr.Error(), Code: "validation_failed", Field: verr.Field}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, errorResponse{Message: err.Error(), Code: "validation_failed"}
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, errorResponse{Message: domain.ErrUnauthenticated.Error(), Code: "unauthenticated"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Message: err.Error(), Code: "invalid_credentials"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: err.Error(), Code: "forbidden"}
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound, errorResponse{Message: err.Error(), Code: "booking_not_found"}
	case errors.Is(err, domain.ErrRoomTypeNotFound):
		return http.StatusNotFound, errorResponse{Message: err.Error(), Code: "room_not_found"}
	case errors.Is(err, domain.ErrBookingNotCancellable):
		return http.StatusConflict, errorResponse{Message: err.Error(), Code: "not_cancellable"}
	case errors.Is(err, domain.ErrCancellationInProgress):
		return http.StatusConflict, errorResponse{Message: err.Error(), Code: "cancellation_in_progress"}
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status >= http.StatusInternalServerError || status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return status, errorResponse{Message: apiErr.Message, Code: "hotel_api_error"}
	case errors.Is(err, hotelapi.ErrUnavailable):
		return http.StatusServiceUnavailable, errorResponse{Message: hotelapi.ErrUnavailable.Error(), Code: "unavailable"}
	default:
		return http.StatusInternalServerError, errorResponse{Message: "internal error", Code: "internal"}
	}
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: err.Error(), Code: "bad_request"})
}
