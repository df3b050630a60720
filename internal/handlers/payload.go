package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/object_dto/internal/apperrors"
	"github.com/SscSPs/object_dto/internal/middleware"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every handler. Fields lists the
// payload keys that were missing or empty, when that is the cause.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// bindPayload decodes a {"data": {...}} body and materializes it into a T.
// On failure it writes a 400 response and returns false.
func bindPayload[T any](c *gin.Context, mapper *objectdto.Mapper) (*T, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := objectdto.DecodePayload(c.Request.Body)
	if err != nil {
		logger.Warn("Failed to decode request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return nil, false
	}

	var missing []string
	requestSink := objectdto.SlogSink{Logger: logger}
	sink := objectdto.SinkFunc(func(shape, key string) {
		missing = append(missing, key)
		requestSink.MissingField(shape, key)
	})

	req, err := objectdto.MaterializeAs[T](mapper.With(objectdto.WithSink(sink)), payload)
	if err != nil {
		if errors.Is(err, objectdto.ErrIncompletePayload) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing or empty fields", Fields: missing})
			return nil, false
		}
		logger.Warn("Failed to decode request fields", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid field value"})
		return nil, false
	}
	return req, true
}

// respondServiceError maps a service error to its HTTP status. Unknown
// errors are logged and reported as 500 with fallback as the message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Already exists"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// requireUserID writes a 401 when the auth middleware left no user in the context.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return userID, ok
}
