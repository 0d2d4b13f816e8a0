package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainReservation "padel-booking/internal/domain/reservation"
	domainUser "padel-booking/internal/domain/user"
	"padel-booking/internal/logger"
	"padel-booking/internal/middleware"
	appErrors "padel-booking/pkg/errors"
	"padel-booking/pkg/utils"
)

// respondWithError maps service errors onto the status codes and terse text
// bodies the API has always used. Anything unrecognized is logged with its
// request ID and collapsed to a generic 500.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrEmailExists):
		utils.ErrorResponse(c, http.StatusBadRequest, "Email already exists.")
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid credentials.")
	case errors.Is(err, appErrors.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid token.")
	case errors.Is(err, appErrors.ErrTokenExpired):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Token has expired. Please request a new reset link.")
	case errors.Is(err, domainUser.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "User not found.")
	case errors.Is(err, domainReservation.ErrReservationNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Reservation not found.")
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		logInternalError(c, err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error.")
	}
}

func logInternalError(c *gin.Context, err error) {
	logger.Error("Internal server error",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
}
