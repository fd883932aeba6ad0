package services

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"storemailer/internal/domain"
)

const (
	customerFromName = "Asian Import Export Co"
	adminFromName    = "Website Orders"

	nextStepsCreditCard   = "Our team will contact you shortly with payment instructions for your credit card payment."
	nextStepsBankTransfer = "Our team will contact you shortly with bank transfer details and payment instructions."
)

// invoiceItemRow is one pre-formatted line of the shared item table.
type invoiceItemRow struct {
	Name     string
	Quantity string
	Price    string
	Total    string
}

// invoiceEmailData is the view model shared by the customer and admin
// invoice templates. ItemRows is rendered once and embedded in both.
type invoiceEmailData struct {
	OrderID      string
	OrderDate    string
	PaymentLabel string
	Customer     domain.OrderCustomer
	ItemRows     template.HTML
	Subtotal     string
	Total        string
	NextSteps    string
	OwnerEmail   string
}

type invoiceService struct {
	mailer       domain.Mailer
	renderer     domain.EmailTemplateRenderer
	salesAddress string
	ownerEmail   string
	now          func() time.Time
}

// NewInvoiceService returns an InvoiceService that emails the customer a
// confirmation and the sales mailbox a notification for each order.
func NewInvoiceService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, salesAddress, ownerEmail string) domain.InvoiceService {
	return &invoiceService{
		mailer:       mailer,
		renderer:     renderer,
		salesAddress: salesAddress,
		ownerEmail:   ownerEmail,
		now:          time.Now,
	}
}

// SendInvoice generates an order id, renders both invoice documents from the
// same data, and sends them sequentially: customer first, then sales. If the
// customer send fails the sales notification is never attempted and no order
// id is returned.
func (s *invoiceService) SendInvoice(ctx context.Context, payload *domain.OrderPayload) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("order payload is nil")
	}

	orderID := domain.NewOrderID(s.now())

	rows := make([]invoiceItemRow, 0, len(payload.Items))
	for _, item := range payload.Items {
		price := item.Price.Float64()
		rows = append(rows, invoiceItemRow{
			Name:     item.Name,
			Quantity: item.Quantity.Display(),
			Price:    fmt.Sprintf("%.2f", price),
			Total:    fmt.Sprintf("%.2f", price*item.Quantity.Float64()),
		})
	}
	itemRows, err := s.renderer.RenderPartial("invoice_items", rows)
	if err != nil {
		return "", fmt.Errorf("failed to render invoice items: %w", err)
	}

	nextSteps := nextStepsBankTransfer
	if payload.PaymentMethod == domain.PaymentMethodCreditCard {
		nextSteps = nextStepsCreditCard
	}
	data := invoiceEmailData{
		OrderID:      orderID,
		OrderDate:    domain.FormatOrderDate(payload.OrderDate, s.now),
		PaymentLabel: domain.PaymentMethodLabel(payload.PaymentMethod),
		Customer:     payload.Customer,
		ItemRows:     template.HTML(itemRows),
		Subtotal:     fmt.Sprintf("%.2f", payload.Subtotal.Float64()),
		Total:        fmt.Sprintf("%.2f", payload.Total.Float64()),
		NextSteps:    nextSteps,
		OwnerEmail:   s.ownerEmail,
	}

	subject, htmlBody, _, err := s.renderer.Render("invoice_customer", data)
	if err != nil {
		return "", fmt.Errorf("failed to render invoice_customer template: %w", err)
	}
	customerMsg := &domain.Message{
		FromName: customerFromName,
		To:       payload.Customer.Email,
		Subject:  subject,
		HTML:     htmlBody,
	}
	if err := s.mailer.Send(ctx, customerMsg); err != nil {
		return "", fmt.Errorf("failed to send order confirmation: %w", err)
	}

	subject, htmlBody, _, err = s.renderer.Render("invoice_admin", data)
	if err != nil {
		return "", fmt.Errorf("failed to render invoice_admin template: %w", err)
	}
	adminMsg := &domain.Message{
		FromName: adminFromName,
		To:       s.salesAddress,
		Subject:  subject,
		HTML:     htmlBody,
	}
	if err := s.mailer.Send(ctx, adminMsg); err != nil {
		return "", fmt.Errorf("failed to send order notification: %w", err)
	}

	log.Printf("[EMAIL] Invoice %s sent to %s and %s", orderID, payload.Customer.Email, s.salesAddress)
	return orderID, nil
}
