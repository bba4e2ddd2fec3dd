package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/dto"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers account and business report routes under a business group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	accounts := rg.Group("/accounts/:account_id")
	{
		accounts.GET("/statement", h.getAccountStatement)
		accounts.GET("/balance", h.getAccountBalance)
	}

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/reconciliation", h.getReconciliation)
	}
}

// getAccountStatement godoc
// @Summary Account statement
// @Description Lists an account's ledger entries in a period with opening, running and closing balances
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param account_id path string true "Account ID"
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/statement [get]
func (h *reportingHandler) getAccountStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	accountID := c.Param("account_id")

	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		respondError(c, logger, err, "generate account statement")
		return
	}

	statement, err := h.reportingService.AccountStatement(c.Request.Context(), businessID, accountID, from, to)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "generate account statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountStatementResponse(statement))
}

// getAccountBalance godoc
// @Summary Account balance
// @Description Returns the balance of an account as of a date, or over all time when asOf is omitted
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param account_id path string true "Account ID"
// @Param asOf query string false "Balance date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to get balance"
// @Security BearerAuth
// @Router /businesses/{business_id}/accounts/{account_id}/balance [get]
func (h *reportingHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	accountID := c.Param("account_id")

	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	asOf, err := parseDateQuery(c, "asOf")
	if err != nil {
		respondError(c, logger, err, "get account balance")
		return
	}

	balance, err := h.reportingService.AccountBalance(c.Request.Context(), businessID, accountID, asOf)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "get account balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(balance))
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Opening, period and closing debit/credit columns per postable account
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		respondError(c, logger, err, "generate trial balance")
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondError(c, logger, err, "generate trial balance")
		return
	}

	logger.Debug("Trial balance generated", slog.Int("rows", len(report.Rows)), slog.Bool("is_balanced", report.IsBalanced))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Income and expense accounts with their net movement in the period
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		respondError(c, logger, err, "generate profit and loss")
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondError(c, logger, err, "generate profit and loss")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getReconciliation godoc
// @Summary Ledger reconciliation check
// @Description Compares total debits and credits in the period and lists vouchers whose entries do not balance
// @Tags reports
// @Produce json
// @Param business_id path string true "Business ID"
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to run reconciliation"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports/reconciliation [get]
func (h *reportingHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		respondError(c, logger, err, "run reconciliation")
		return
	}

	report, err := h.reportingService.ReconciliationCheck(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondError(c, logger, err, "run reconciliation")
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(report))
}
