package handlers

import (
	"context"
	"errors"
	"net/http"

	"ATHLETEHUB_BACK-END/internal/logger"
	"ATHLETEHUB_BACK-END/internal/service"
	"ATHLETEHUB_BACK-END/internal/utils"
)

// errorStatus maps service error kinds to the status and client message.
// Nothing from the wrapped error text reaches the client.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "Missing required fields", "Please provide all required fields"
	case errors.Is(err, service.ErrDuplicateEmail):
		return http.StatusBadRequest, "Bad Request", "User already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", "Invalid email or password"
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthorized", "User not found"
	case errors.Is(err, service.ErrInvalidPublicID):
		return http.StatusUnauthorized, "Unauthorized", "Invalid AthleteID"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "Not Found", "Athlete not found"
	case errors.Is(err, service.ErrInvalidVideo):
		return http.StatusBadRequest, "Invalid video", "platform must be youtube or google_drive"
	case errors.Is(err, service.ErrMediaUploadFailed):
		return http.StatusBadGateway, "Upload failed", "Could not upload profile photo"
	case errors.Is(err, service.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Service Unavailable", "Please try again later"
	default:
		return http.StatusInternalServerError, "Internal Server Error", "Server Error"
	}
}

func writeServiceError(ctx context.Context, w http.ResponseWriter, log logger.Logger, err error) {
	status, errMsg, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error(ctx, "request failed", logger.Int("status", status), logger.Error(err))
	}
	utils.WriteErrorResponse(w, status, errMsg, message)
}

// writeBadRequest rejects an unparseable body. The cause is logged only.
func writeBadRequest(ctx context.Context, w http.ResponseWriter, log logger.Logger, err error) {
	log.Debug(ctx, "malformed request body", logger.Error(err))
	utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "Request body could not be parsed")
}
