package billing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GurjasChalana/fitness-club/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateInvoice godoc
// @Summary      Create an invoice for a member
// @Tags         billing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                   true  "Member ID"
// @Param        request   body      CreateInvoiceRequest  true  "Invoice items"
// @Success      201       {object}  Invoice
// @Failure      400       {object}  api.ErrorResponse
// @Router       /members/{memberID}/invoices [post]
func (h *Handler) CreateInvoice(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	inv, err := h.service.CreateInvoice(c.Request.Context(), memberID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inv)
}

// GetInvoice godoc
// @Summary      Get invoice with items and payments
// @Tags         billing
// @Security     BearerAuth
// @Produce      json
// @Param        invoiceID  path      int  true  "Invoice ID"
// @Success      200        {object}  InvoiceDetail
// @Failure      404        {object}  api.ErrorResponse
// @Router       /invoices/{invoiceID} [get]
func (h *Handler) GetInvoice(c *gin.Context) {
	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}

	detail, err := h.service.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListByMember godoc
// @Summary      List a member's invoices
// @Tags         billing
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path     int  true  "Member ID"
// @Success      200       {array}  Invoice
// @Router       /members/{memberID}/invoices [get]
func (h *Handler) ListByMember(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	invoices, err := h.service.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// AddPayment godoc
// @Summary      Record a payment against an invoice
// @Tags         billing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        invoiceID  path      int             true  "Invoice ID"
// @Param        request    body      PaymentRequest  true  "Payment data"
// @Success      201        {object}  Payment
// @Failure      422        {object}  api.ErrorResponse
// @Router       /invoices/{invoiceID}/payments [post]
func (h *Handler) AddPayment(c *gin.Context) {
	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.service.AddPayment(c.Request.Context(), invoiceID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
