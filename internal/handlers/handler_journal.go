package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlogic/ledgerlogic/internal/apperrors"
	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/ledgerlogic/ledgerlogic/internal/dto"
	"github.com/ledgerlogic/ledgerlogic/internal/middleware"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// registerJournalRoutes registers routes related to journals and the entry
// approval workflow.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)

		approvals := journals.Group("", middleware.RequireRoles(approverRoles...))
		{
			approvals.POST("/:journalID/entries/:entryID/approve", h.approveEntry)
			approvals.POST("/:journalID/entries/:entryID/reject", h.rejectEntry)
		}
	}
}

// createJournal godoc
// @Summary Record a new journal
// @Description Creates a balanced journal whose entries all start pending
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal details"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced journal"
// @Failure 500 {object} map[string]string "Failed to create journal"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create journal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals
// @Description Lists journals, optionally narrowed to one aggregate status
// @Tags journals
// @Produce  json
// @Param   status query string false "Aggregate status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {array} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.JournalStatus
	if params.Status != "" {
		s := domain.JournalStatus(params.Status)
		status = &s
	}

	journals, err := h.journalService.ListJournals(c.Request.Context(), status)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalResponse(journals))
}

// getJournal godoc
// @Summary Get a journal by ID
// @Description Retrieves a journal with all of its entries
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	journalID := c.Param("journalID")

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		} else {
			logger.Error("Failed to retrieve journal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// approveEntry godoc
// @Summary Approve a journal entry
// @Description Approves a single pending entry; the journal's aggregate status is recomputed
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Param   entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal or entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Failure 500 {object} map[string]string "Failed to approve entry"
// @Security BearerAuth
// @Router /journals/{journalID}/entries/{entryID}/approve [post]
func (h *journalHandler) approveEntry(c *gin.Context) {
	h.transitionEntry(c, func(journalID, entryID, userID string) (*domain.Journal, error) {
		return h.journalService.ApproveEntry(c.Request.Context(), journalID, entryID, userID)
	})
}

// rejectEntry godoc
// @Summary Reject a journal entry
// @Description Rejects a single pending entry with a mandatory reason; the journal's aggregate status is recomputed
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Param   entryID path string true "Journal entry ID"
// @Param   rejection body dto.RejectEntryRequest true "Rejection reason"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Missing rejection reason"
// @Failure 404 {object} map[string]string "Journal or entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Failure 500 {object} map[string]string "Failed to reject entry"
// @Security BearerAuth
// @Router /journals/{journalID}/entries/{entryID}/reject [post]
func (h *journalHandler) rejectEntry(c *gin.Context) {
	var req dto.RejectEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.transitionEntry(c, func(journalID, entryID, userID string) (*domain.Journal, error) {
		return h.journalService.RejectEntry(c.Request.Context(), journalID, entryID, req.Reason, userID)
	})
}

func (h *journalHandler) transitionEntry(c *gin.Context, apply func(journalID, entryID, userID string) (*domain.Journal, error)) {
	logger := middleware.GetLoggerFromContext(c)
	journalID := c.Param("journalID")
	entryID := c.Param("entryID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := apply(journalID, entryID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, accounting.ErrEntryNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to transition journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transition journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}
