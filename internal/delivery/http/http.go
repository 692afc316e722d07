package http

import (
	"errors"
	"fmt"
	"net/http"

	"stock-genius/internal/dto"
	"stock-genius/internal/service"
	"stock-genius/pkg/logger"
	"stock-genius/pkg/utils"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	log       *logger.Logger
}

func NewHttpAPIHandler(echo *echo.Echo, validator *goValidator.Validate, service *service.Service, log *logger.Logger) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
		log:       log,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.HTTPErrorHandler = h.handleError
	h.echo.GET("/health", h.health)

	base := h.echo.Group("/api")
	h.SetupAnalysis(base)
	h.SetupStock(base)
}

func (h *HttpAPIHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: utils.TimeNow(),
	})
}

// handleError renders every error that escapes a handler as {"error": msg}.
func (h *HttpAPIHandler) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if code >= http.StatusInternalServerError {
		h.log.ErrorContext(c.Request().Context(), "Unhandled error",
			logger.StringField("path", c.Path()),
			logger.ErrorField(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, dto.NewErrorResponse(message))
	}
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to write error response", logger.ErrorField(err))
	}
}
