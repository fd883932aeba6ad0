package controllers

import (
	"log/slog"
	"net/http"

	"storemailer/internal/delivery/http/helpers"
	"storemailer/internal/domain"
)

const (
	errSendEmail   = "Failed to send email"
	errSendInvoice = "Failed to send invoice"
)

// SendEmailResponse is the success body for POST /api/send-email.
// swagger:model SendEmailResponse
type SendEmailResponse struct {
	Success bool `json:"success"`
}

// SendInvoiceResponse is the success body for POST /api/send-invoice.
// swagger:model SendInvoiceResponse
type SendInvoiceResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// MailController handles the form submission endpoints.
type MailController struct {
	Logger    *slog.Logger
	Inquiries domain.InquiryService
	Invoices  domain.InvoiceService
}

// NewMailController creates a MailController with the given logger and services.
func NewMailController(logger *slog.Logger, inquiries domain.InquiryService, invoices domain.InvoiceService) *MailController {
	return &MailController{
		Logger:    logger,
		Inquiries: inquiries,
		Invoices:  invoices,
	}
}

// SendEmail godoc
// @Summary Send a contact or product inquiry
// @Description Relays a contact form submission to the info mailbox, or to the sales mailbox when type is "product_inquiry". Fields are not validated; missing values render as placeholder text.
// @Tags mail
// @Accept json
// @Produce json
// @Param body body domain.InquiryPayload true "Inquiry fields"
// @Success 200 {object} controllers.SendEmailResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/send-email [post]
func (c *MailController) SendEmail(w http.ResponseWriter, r *http.Request) {
	var payload domain.InquiryPayload
	if err := helpers.DecodeJSON(r, &payload); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, errSendEmail)
		return
	}
	if err := c.Inquiries.SendInquiry(r.Context(), &payload); err != nil {
		c.Logger.ErrorContext(r.Context(), "error sending email",
			"path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, errSendEmail)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SendEmailResponse{Success: true})
}

// SendInvoice godoc
// @Summary Send an order invoice
// @Description Generates an order id and sends two emails sequentially: an order confirmation to the customer, then a notification to the sales mailbox. If the first send fails the second is never attempted.
// @Tags mail
// @Accept json
// @Produce json
// @Param body body domain.OrderPayload true "Order payload"
// @Success 200 {object} controllers.SendInvoiceResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/send-invoice [post]
func (c *MailController) SendInvoice(w http.ResponseWriter, r *http.Request) {
	var payload domain.OrderPayload
	if err := helpers.DecodeJSON(r, &payload); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, errSendInvoice)
		return
	}
	orderID, err := c.Invoices.SendInvoice(r.Context(), &payload)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "error sending invoice",
			"path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, errSendInvoice)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SendInvoiceResponse{
		Success: true,
		OrderID: orderID,
		Message: "Invoice sent successfully",
	})
}
