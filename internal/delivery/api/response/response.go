// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope wraps every JSON body. Exactly one of Data and Error is set.
type Envelope struct {
	Data  any                     `json:"data,omitempty"`
	Error *domainerrors.ErrorInfo `json:"error,omitempty"`
	Meta  *MetaInfo               `json:"meta"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Data: data, Meta: meta(c)})
}

// Error writes an error body. Details are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// Validation writes a 400 listing every rejected field.
func Validation(c echo.Context, verr *entity.ValidationError) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), verr.Fields)
}

// HandleAppError writes err when it carries an AppError and hands anything else back to the caller.
func HandleAppError(c echo.Context, err error) error {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return Validation(c, verr)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}
