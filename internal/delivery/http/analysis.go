package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"stock-genius/internal/dto"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAnalysis(base *echo.Group) {
	base.GET("/analyze", h.analyzeTicker)
}

// analyzeTicker serves /api/analyze?ticker=&months=.
func (h *HttpAPIHandler) analyzeTicker(c echo.Context) error {
	return h.analyze(c, "ticker")
}

// analyzeStock serves /api/stock/analyze?symbol=&months=.
func (h *HttpAPIHandler) analyzeStock(c echo.Context) error {
	return h.analyze(c, "symbol")
}

func (h *HttpAPIHandler) analyze(c echo.Context, symbolParam string) error {
	req := dto.AnalysisRequest{
		Symbol: strings.TrimSpace(c.QueryParam(symbolParam)),
		Months: parseMonths(c.QueryParam("months")),
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationMessage(err, symbolParam)))
	}

	resp := h.service.AnalysisService.Analyze(c.Request().Context(), req)
	return c.JSON(http.StatusOK, resp)
}

// parseMonths returns the default horizon for an absent value and 0, which
// fails validation, for anything that is not an integer.
func parseMonths(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return dto.DefaultAnalysisMonths
	}
	months, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return months
}

func validationMessage(err error, symbolParam string) string {
	var validationErrs goValidator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Field() {
	case "Symbol":
		return fmt.Sprintf("%s parameter is required", symbolParam)
	case "Months":
		return "months parameter must be a positive integer"
	}
	return fmt.Sprintf("%s parameter is invalid", strings.ToLower(fieldErr.Field()))
}
