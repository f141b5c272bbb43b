package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondUsecaseError maps domain sentinels onto status codes. Lookup
// failures (including owner-books-own-item, which deliberately masquerades
// as one) are 404; business-rule denials are 400; duplicate email is 409.
func respondUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, usecase.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, usecase.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errors.Is(err, usecase.ErrOwnItemBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, usecase.ErrItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available", nil)
	case errors.Is(err, usecase.ErrAlreadyDecided):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking has already been decided", nil)
	case errors.Is(err, usecase.ErrBookingOverlap):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking overlaps an existing one", nil)
	case errors.Is(err, usecase.ErrInvalidPeriod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking period", nil)
	case errors.Is(err, usecase.ErrCommentNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Commenting requires a completed booking", nil)
	case errors.Is(err, usecase.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Only the owner can modify the item", nil)
	case errors.Is(err, usecase.ErrDuplicateEmail):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email is already in use", nil)
	case isDomainValidation(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func isDomainValidation(err error) bool {
	for _, target := range []error{
		item.ErrEmptyName,
		item.ErrEmptyDescription,
		user.ErrEmptyName,
		user.ErrInvalidEmail,
		comment.ErrEmptyText,
		comment.ErrTextTooLong,
		request.ErrEmptyDescription,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
