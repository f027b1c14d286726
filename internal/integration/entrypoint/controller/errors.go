// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/dto"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/middleware"
)

var kindStatus = map[domainerror.Kind]int{
	domainerror.KindValidation:   http.StatusBadRequest,
	domainerror.KindNotFound:     http.StatusNotFound,
	domainerror.KindConflict:     http.StatusConflict,
	domainerror.KindUnauthorized: http.StatusUnauthorized,
	domainerror.KindStorage:      http.StatusInternalServerError,
}

// respondError maps a use case error to its HTTP status and error body.
// Errors without a code are logged and answered with a generic 500.
func respondError(ctx *gin.Context, err error) {
	var coded domainerror.Coded
	if !errors.As(err, &coded) {
		slog.Error("Unhandled request error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
		return
	}

	status, ok := kindStatus[coded.Kind()]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "code", coded.ErrorCode(), "error", err)
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: coded.PublicMessage(),
		Code:  coded.ErrorCode(),
	})
}

func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// authenticatedUser reads the user set by the auth middleware, answering 401 when absent.
func authenticatedUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// pathID parses the :id route parameter. Malformed ids answer notFoundCode.
func pathID(ctx *gin.Context, notFoundCode string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Resource not found",
			Code:  notFoundCode,
		})
		return uuid.Nil, false
	}
	return id, true
}

// optionalDate parses a YYYY-MM-DD value; empty input yields nil.
func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := valueobject.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func optionalDatePtr(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	return optionalDate(*raw)
}
