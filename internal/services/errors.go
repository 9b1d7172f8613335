package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/yossyi0323/App/internal/constants"
	"github.com/yossyi0323/App/internal/utils"
)

func notFound(entity string) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    entity + " not found",
	}
}

func internalError(message string, err error) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       utils.ErrCodeInternal,
		Message:    message,
		Err:        err,
	}
}

func validationError(message string) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusBadRequest,
		Code:       utils.ErrCodeValidation,
		Message:    message,
	}
}

// versionConflict builds the 409. current is the row as it stands now, or nil
// when it no longer exists.
func versionConflict[T any](current *T) *utils.AppError {
	appErr := &utils.AppError{
		StatusCode: http.StatusConflict,
		Code:       utils.ErrCodeRowVersionConflict,
		Message:    constants.MsgVersionMismatch,
		Err:        utils.ErrRowVersionConflict,
	}
	if current != nil {
		appErr.Details = current
	}
	return appErr
}

// writeError maps repository write failures other than version conflicts.
func writeError(entity string, err error) *utils.AppError {
	var appErr *utils.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case utils.IsUniqueViolation(err):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    entity + " already exists",
			Err:        err,
		}
	case utils.IsForeignKeyViolation(err):
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    entity + " references a record that does not exist",
			Err:        err,
		}
	default:
		return internalError("Failed to save "+strings.ToLower(entity), err)
	}
}
