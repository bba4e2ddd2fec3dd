package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/dto"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/middleware"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: vs,
	}
}

// registerVoucherRoutes registers voucher lifecycle routes under a business group.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucher_id", h.getVoucher)
		vouchers.PUT("/:voucher_id", h.updateVoucher)
		vouchers.DELETE("/:voucher_id", h.deleteVoucher)
		vouchers.POST("/:voucher_id/post", h.postVoucher)
		vouchers.GET("/:voucher_id/ledger-entries", h.listLedgerEntries)
		vouchers.POST("/:voucher_id/regenerate-ledger", h.regenerateLedger)
	}
}

// createVoucher godoc
// @Summary Create a draft voucher
// @Description Validates the lines, assigns the next voucher number and stores the voucher as DRAFT
// @Tags vouchers
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid request format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to create voucher"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondError(c, logger, err, "create voucher")
		return
	}

	logger.Info("Voucher created", slog.String("voucher_id", voucher.VoucherID), slog.String("voucher_number", voucher.VoucherNumber))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Lists non-deleted vouchers of a business, newest first, with token-based pagination
// @Tags vouchers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param type query string false "Voucher type"
// @Param status query string false "DRAFT or POSTED"
// @Param fromDate query string false "From date (YYYY-MM-DD)"
// @Param toDate query string false "To date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list vouchers"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for listVouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), businessID, params)
	if err != nil {
		respondError(c, logger, err, "list vouchers")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getVoucher godoc
// @Summary Get a voucher
// @Description Retrieves a voucher with its lines
// @Tags vouchers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to get voucher"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers/{voucher_id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	voucherID := c.Param("voucher_id")

	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), businessID, voucherID)
	if err != nil {
		respondError(c, logger.With(slog.String("voucher_id", voucherID)), err, "get voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// updateVoucher godoc
// @Summary Update a draft voucher
// @Description Replaces the header fields and all lines of a DRAFT voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param voucher_id path string true "Voucher ID"
// @Param voucher body dto.UpdateVoucherRequest true "Voucher details"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid request format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Voucher is not a draft"
// @Failure 500 {object} map[string]string "Failed to update voucher"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers/{voucher_id} [put]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	voucherID := c.Param("voucher_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.UpdateVoucher(c.Request.Context(), businessID, voucherID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("voucher_id", voucherID)), err, "update voucher")
		return
	}

	logger.Info("Voucher updated", slog.String("voucher_id", voucherID))
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// deleteVoucher godoc
// @Summary Delete a draft voucher
// @Description Soft-deletes a DRAFT voucher; its number is never reused
// @Tags vouchers
// @Param business_id path string true "Business ID"
// @Param voucher_id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Voucher is not a draft"
// @Failure 500 {object} map[string]string "Failed to delete voucher"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers/{voucher_id} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	voucherID := c.Param("voucher_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), businessID, voucherID, userID); err != nil {
		respondError(c, logger.With(slog.String("voucher_id", voucherID)), err, "delete voucher")
		return
	}

	logger.Info("Voucher deleted", slog.String("voucher_id", voucherID))
	c.Status(http.StatusNoContent)
}

// postVoucher godoc
// @Summary Post a voucher
// @Description Moves a DRAFT voucher to POSTED and writes its ledger entries. A ledger failure leaves the voucher POSTED and is reported with status 500 and the posting result.
// @Tags vouchers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.PostVoucherResponse
// @Failure 400 {object} map[string]string "Voucher fails posting validation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Voucher is not a draft"
// @Failure 500 {object} dto.PostVoucherResponse "Voucher posted but ledger generation failed"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers/{voucher_id}/post [post]
func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	voucherID := c.Param("voucher_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("voucher_id", voucherID))

	voucher, result, err := h.voucherService.PostVoucher(c.Request.Context(), businessID, voucherID, userID)
	if err != nil {
		if errors.Is(err, services.ErrLedgerPostingFailed) && voucher != nil {
			logger.Error("Voucher posted but ledger generation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Voucher posted but ledger generation failed",
				"voucher": dto.ToVoucherResponse(voucher),
				"posting": dto.ToPostingResultResponse(result),
			})
			return
		}
		respondError(c, logger, err, "post voucher")
		return
	}

	logger.Info("Voucher posted", slog.Int("entries_created", result.EntriesCreated))
	c.JSON(http.StatusOK, dto.PostVoucherResponse{
		Voucher: dto.ToVoucherResponse(voucher),
		Posting: dto.ToPostingResultResponse(result),
	})
}

// listLedgerEntries godoc
// @Summary List a voucher's ledger entries
// @Tags vouchers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param voucher_id path string true "Voucher ID"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to list ledger entries"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers/{voucher_id}/ledger-entries [get]
func (h *voucherHandler) listLedgerEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	voucherID := c.Param("voucher_id")

	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	entries, err := h.voucherService.ListLedgerEntries(c.Request.Context(), businessID, voucherID)
	if err != nil {
		respondError(c, logger.With(slog.String("voucher_id", voucherID)), err, "list ledger entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// regenerateLedger godoc
// @Summary Regenerate a voucher's ledger entries
// @Description Discards and rebuilds the ledger entries of a POSTED voucher atomically
// @Tags vouchers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.PostingResultResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Voucher is not posted"
// @Failure 500 {object} dto.PostingResultResponse "Regeneration failed"
// @Security BearerAuth
// @Router /businesses/{business_id}/vouchers/{voucher_id}/regenerate-ledger [post]
func (h *voucherHandler) regenerateLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	voucherID := c.Param("voucher_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("voucher_id", voucherID))

	result, err := h.voucherService.RegenerateLedger(c.Request.Context(), businessID, voucherID, userID)
	if err != nil {
		if errors.Is(err, services.ErrLedgerPostingFailed) && result != nil {
			logger.Error("Ledger regeneration failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ToPostingResultResponse(result))
			return
		}
		respondError(c, logger, err, "regenerate ledger")
		return
	}

	logger.Info("Ledger regenerated", slog.Int("entries_created", result.EntriesCreated))
	c.JSON(http.StatusOK, dto.ToPostingResultResponse(result))
}
