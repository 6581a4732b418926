package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the distsn error handler on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler turns handler errors into JSON error responses.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       log.WithPrefix(logger, "component", "HTTPErrorHandler"),
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
// echo.HTTPError keeps its own status; an openapi3filter.RequestError inside it is reported as bad_parameter.
// Once the response is committed the error is only logged.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	appErr := ToAppError(err)
	if appErr == nil {
		appErr = NewAppError(ErrInternalServerError, "an internal server error has occurred", err)
	}

	var statusCode int
	he, _ := err.(*echo.HTTPError)
	if he != nil {
		codeStr := ErrInternalServerError
		if he.Code < http.StatusInternalServerError {
			codeStr = ErrBadParameter
		}
		if he.Code == http.StatusNotFound {
			codeStr = ErrEntityNotFound
		}
		if he.Internal != nil {
			if inner, ok := he.Internal.(*echo.HTTPError); ok {
				he = inner
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				codeStr = ErrBadParameter
			}
		}

		m, _ := he.Message.(string)
		appErr = NewAppError(codeStr, m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(appErr.Code)
	}

	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
		"err", err,
	)

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(statusCode)
			return
		}
		_ = c.JSON(statusCode, ErrResponse{Error: appErr})
	}
}

// ErrResponse from server.
type ErrResponse struct {
	Error *AppError `json:"error,omitempty"`
}
