package domain

import "context"

// Message is a fully rendered outbound email. It is built by a service,
// handed to the Mailer once, and discarded.
type Message struct {
	FromName string
	To       string
	Subject  string
	Text     string // optional; empty means HTML-only
	HTML     string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
	RenderPartial(templateName string, data any) (string, error)
}

// InquiryService sends a contact or product inquiry to the appropriate mailbox.
type InquiryService interface {
	SendInquiry(ctx context.Context, payload *InquiryPayload) error
}

// InvoiceService sends the order confirmation to the customer and the order
// notification to sales, returning the generated order id.
type InvoiceService interface {
	SendInvoice(ctx context.Context, payload *OrderPayload) (orderID string, err error)
}
