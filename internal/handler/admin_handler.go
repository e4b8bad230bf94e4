package handler

import (
	"errors"
	"net/http"

	"depositbri/internal/domain"
	"depositbri/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc     *service.BankingService
	invoice *service.InvoiceService
}

func NewAdminHandler(svc *service.BankingService, invoice *service.InvoiceService) *AdminHandler {
	return &AdminHandler{svc: svc, invoice: invoice}
}

type AmountRequest struct {
	Amount int64 `json:"amount"`
}

type MessageRequest struct {
	Message string `json:"message"`
}

// AddTabungan handles POST /api/admin/add-tabungan. The amount is added as given.
func (h *AdminHandler) AddTabungan(c *gin.Context) {
	h.adjust(c, h.svc.AdjustTabungan)
}

// AddDeposito handles POST /api/admin/add-deposito.
func (h *AdminHandler) AddDeposito(c *gin.Context) {
	h.adjust(c, h.svc.AdjustDeposito)
}

func (h *AdminHandler) adjust(c *gin.Context, apply func(int64) (int64, error)) {
	var req AmountRequest
	if !bindBody(c, &req) {
		return
	}
	balance, err := apply(req.Amount)
	if errors.Is(err, domain.ErrUserNotFound) {
		notFoundUser(c)
		return
	}
	if err != nil {
		internalError(c, "balance update failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "new_balance": balance})
}

// SendNotification handles POST /api/admin/send-notification.
func (h *AdminHandler) SendNotification(c *gin.Context) {
	var req MessageRequest
	if !bindBody(c, &req) {
		return
	}
	if _, err := h.svc.PostNotification(req.Message); err != nil {
		internalError(c, "failed to send notification", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SendPopup handles POST /api/admin/send-popup; the new popup replaces the active one.
func (h *AdminHandler) SendPopup(c *gin.Context) {
	var req MessageRequest
	if !bindBody(c, &req) {
		return
	}
	if _, err := h.svc.ReplaceActivePopup(req.Message); err != nil {
		internalError(c, "failed to send popup", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SendInvoice handles POST /api/admin/send-invoice. Delivery is log-only.
func (h *AdminHandler) SendInvoice(c *gin.Context) {
	err := h.invoice.Send(c.Request.Context())
	if errors.Is(err, domain.ErrUserNotFound) {
		notFoundUser(c)
		return
	}
	if err != nil {
		internalError(c, "Gagal mengirim invoice", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice berhasil dikirim"})
}
