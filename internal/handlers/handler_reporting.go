package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/ledgerlogic/ledgerlogic/internal/dto"
	"github.com/ledgerlogic/ledgerlogic/internal/middleware"
)

// reportingHandler handles HTTP requests for financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// registerReportingRoutes registers the statement report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/income-statement", h.incomeStatement)
		reports.POST("/income-statement/email", h.emailIncomeStatement)
		reports.GET("/retained-earnings", h.retainedEarnings)
		reports.POST("/retained-earnings/email", h.emailRetainedEarnings)
	}
}

// incomeStatement godoc
// @Summary Generate the income statement
// @Description Computes revenue, expense and net income totals for the period
// @Tags reports
// @Produce  json
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to build income statement"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.StatementPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period: " + err.Error()})
		return
	}

	statement, err := h.reportingService.IncomeStatement(c.Request.Context(), params.From, params.To)
	if err != nil {
		logger.Error("Failed to build income statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build income statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(*statement, params.From, params.To))
}

// retainedEarnings godoc
// @Summary Generate the retained earnings statement
// @Description Computes the retained earnings roll-forward for the period
// @Tags reports
// @Produce  json
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.RetainedEarningsResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to build retained earnings statement"
// @Security BearerAuth
// @Router /reports/retained-earnings [get]
func (h *reportingHandler) retainedEarnings(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.StatementPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period: " + err.Error()})
		return
	}

	statement, err := h.reportingService.RetainedEarnings(c.Request.Context(), params.From, params.To)
	if err != nil {
		logger.Error("Failed to build retained earnings statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build retained earnings statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRetainedEarningsResponse(*statement, params.From, params.To))
}

// emailIncomeStatement godoc
// @Summary Email the income statement
// @Description Renders the income statement for the period and mails it to the recipient
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD), inclusive"
// @Param   request body dto.EmailReportRequest true "Recipient"
// @Success 202 {object} map[string]string "Report accepted for delivery"
// @Failure 400 {object} map[string]string "Invalid period or recipient"
// @Failure 500 {object} map[string]string "Failed to email report"
// @Security BearerAuth
// @Router /reports/income-statement/email [post]
func (h *reportingHandler) emailIncomeStatement(c *gin.Context) {
	h.emailReport(c, h.reportingService.EmailIncomeStatement)
}

// emailRetainedEarnings godoc
// @Summary Email the retained earnings statement
// @Description Renders the retained earnings statement for the period and mails it to the recipient
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD), inclusive"
// @Param   request body dto.EmailReportRequest true "Recipient"
// @Success 202 {object} map[string]string "Report accepted for delivery"
// @Failure 400 {object} map[string]string "Invalid period or recipient"
// @Failure 500 {object} map[string]string "Failed to email report"
// @Security BearerAuth
// @Router /reports/retained-earnings/email [post]
func (h *reportingHandler) emailRetainedEarnings(c *gin.Context) {
	h.emailReport(c, h.reportingService.EmailRetainedEarnings)
}

func (h *reportingHandler) emailReport(c *gin.Context, send func(ctx context.Context, from, to time.Time, recipient string) error) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.StatementPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period: " + err.Error()})
		return
	}

	var req dto.EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := send(c.Request.Context(), params.From, params.To, req.Recipient); err != nil {
		logger.Error("Failed to email report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to email report"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "report sent", "recipient": req.Recipient})
}
