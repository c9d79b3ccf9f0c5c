package handlers

import (
	"errors"
	"net/http"

	request "turnover_service/internal/adapter/http/dto/request"
	"turnover_service/internal/usecase"
	"turnover_service/pkg"
	"turnover_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal Server Error", http.StatusInternalServerError)
)

// mapInputError turns a request parsing failure into a 400 naming the field.
func mapInputError(err error) *pkg.AppError {
	var fe *request.FieldError
	if errors.As(err, &fe) {
		return pkg.NewFieldError("INVALID_REQUEST", fe.Field, fe.Message, http.StatusBadRequest)
	}
	return errInvalidRequest
}

func mapResourceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewFieldError("INVALID_REQUEST", "id", "id is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoChecklistFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "No valid checklist fields provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLinenOrderNotFound):
		return pkg.NewDomainErrorSimple("LINEN_ORDER_NOT_FOUND", "Linen order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteRendererNotEnabled):
		return pkg.NewDomainError("NOT_IMPLEMENTED", "Quote documents are not available", err, http.StatusNotImplemented)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, http.StatusInternalServerError)
	}
}

// respondError writes the error body. Server side failures are logged with
// their cause, which never reaches the caller.
func respondError(c *gin.Context, log logger.Logger, op string, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(op+" failed", "path", c.Request.URL.Path, "error", appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// readObject reads the raw request body and decodes it as a JSON object.
func readObject(c *gin.Context) (map[string]any, *pkg.AppError) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, errInvalidRequest
	}
	body, err := request.DecodeObject(raw)
	if err != nil {
		return nil, mapInputError(err)
	}
	return body, nil
}
