package http

import (
	"net/http"
	"strings"

	"stock-genius/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStock(base *echo.Group) {
	stockGroup := base.Group("/stock")
	stockGroup.GET("/chart", h.getStockChart)
	stockGroup.GET("/insights", h.getStockInsights)
	stockGroup.GET("/profile", h.getStockProfile)
	stockGroup.GET("/analyze", h.analyzeStock)
}

func (h *HttpAPIHandler) getStockChart(c echo.Context) error {
	symbol := strings.TrimSpace(c.QueryParam("symbol"))
	if symbol == "" {
		return requiredParam(c, "symbol")
	}

	doc, err := h.service.AnalysisService.GetChart(c.Request().Context(), dto.GetStockChartParam{
		Symbol:   symbol,
		Range:    c.QueryParam("range"),
		Interval: c.QueryParam("interval"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
	return c.JSONBlob(http.StatusOK, doc)
}

func (h *HttpAPIHandler) getStockInsights(c echo.Context) error {
	symbol := strings.TrimSpace(c.QueryParam("symbol"))
	if symbol == "" {
		return requiredParam(c, "symbol")
	}

	doc, err := h.service.AnalysisService.GetInsights(c.Request().Context(), symbol)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
	return c.JSONBlob(http.StatusOK, doc)
}

func (h *HttpAPIHandler) getStockProfile(c echo.Context) error {
	symbol := strings.TrimSpace(c.QueryParam("symbol"))
	if symbol == "" {
		return requiredParam(c, "symbol")
	}

	doc, err := h.service.AnalysisService.GetProfile(c.Request().Context(), symbol)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
	return c.JSONBlob(http.StatusOK, doc)
}

func requiredParam(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(name+" parameter is required"))
}
