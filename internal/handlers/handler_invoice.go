package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/SscSPs/uk_books_app/internal/dto"
	"github.com/SscSPs/uk_books_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoice status.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// RegisterInvoiceRoutes registers the invoice lifecycle routes on rg.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.GET("/:invoiceID/transitions", h.getTransitions)
		invoices.PATCH("/:invoiceID/status", h.changeStatus)
		invoices.POST("/:invoiceID/events", h.applyEvent)
	}
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Retrieves an invoice owned by the logged-in user
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Invoice belongs to another user"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	invoiceID := c.Param("invoiceID")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), userID, invoiceID)
	if err != nil {
		respondError(c, logger, err, "retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// getTransitions godoc
// @Summary List available invoice actions
// @Description Returns the statuses and events reachable from the invoice's current status, for rendering UI actions
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param Accept-Language header string false "Locale for statusDescriptionText (en, tr)"
// @Success 200 {object} dto.InvoiceTransitionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Invoice belongs to another user"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/transitions [get]
func (h *invoiceHandler) getTransitions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	invoiceID := c.Param("invoiceID")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	transitions, err := h.invoiceService.GetTransitions(c.Request.Context(), userID, invoiceID)
	if err != nil {
		respondError(c, logger, err, "retrieve invoice transitions")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceTransitionsResponse(transitions, middleware.GetLocaleFromContext(c)))
}

// changeStatus godoc
// @Summary Change invoice status
// @Description Moves an invoice to a target status. Moving to paid accepts optional payment details.
// @Description expectedUpdatedAt, when sent, must equal the invoice's current updatedAt.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param request body dto.ChangeInvoiceStatusRequest true "Target status"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} apperrors.DomainError "Invalid or illegal transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Invoice belongs to another user"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice changed since it was read"
// @Failure 422 {object} apperrors.DomainError "Invalid payment details"
// @Failure 500 {object} map[string]string "Failed to change invoice status"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/status [patch]
func (h *invoiceHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	invoiceID := c.Param("invoiceID")

	var req dto.ChangeInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChangeStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("invoice_id", invoiceID), slog.String("target_status", req.Status))
	logger.Info("Received request to change invoice status")

	inv, err := h.invoiceService.ChangeStatus(c.Request.Context(), userID, invoiceID,
		domain.InvoiceStatus(req.Status), req.ExpectedUpdatedAt, req.PaymentDetails.ToDomain())
	if err != nil {
		respondError(c, logger, err, "change invoice status")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// applyEvent godoc
// @Summary Apply an invoice event
// @Description Fires send, mark_paid, mark_overdue, cancel or refund on an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param request body dto.ApplyInvoiceEventRequest true "Event"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} apperrors.DomainError "Unknown event or not allowed from the current status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Invoice belongs to another user"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice changed since it was read"
// @Failure 422 {object} apperrors.DomainError "Invalid payment details"
// @Failure 500 {object} map[string]string "Failed to apply invoice event"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/events [post]
func (h *invoiceHandler) applyEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	invoiceID := c.Param("invoiceID")

	var req dto.ApplyInvoiceEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("invoice_id", invoiceID), slog.String("event", req.Event))
	logger.Info("Received request to apply invoice event")

	inv, err := h.invoiceService.ApplyEvent(c.Request.Context(), userID, invoiceID,
		domain.InvoiceEvent(req.Event), req.ExpectedUpdatedAt, req.PaymentDetails.ToDomain())
	if err != nil {
		respondError(c, logger, err, "apply invoice event")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}
