package services

import (
	"context"
	"fmt"
	"log"

	"storemailer/internal/domain"
)

const (
	inquiryFromName       = "Product Inquiry"
	defaultGeneralSubject = "General Inquiry from Website"
	notProvided           = "Not provided"
)

// inquiryEmailData is the view model handed to the inquiry templates.
// Placeholder substitution happens here so it is testable without a transport.
type inquiryEmailData struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	Address      string
	Message      string
	Model        string
	Quantity     string
	ShippingTerm string
	Subject      string
}

type inquiryService struct {
	mailer       domain.Mailer
	renderer     domain.EmailTemplateRenderer
	salesAddress string
	infoAddress  string
}

// NewInquiryService returns an InquiryService that routes product inquiries
// to the sales address and everything else to the info address.
func NewInquiryService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, salesAddress, infoAddress string) domain.InquiryService {
	return &inquiryService{
		mailer:       mailer,
		renderer:     renderer,
		salesAddress: salesAddress,
		infoAddress:  infoAddress,
	}
}

// SendInquiry renders the inquiry variants selected by the payload type and
// sends a single message to the routed mailbox.
func (s *inquiryService) SendInquiry(ctx context.Context, payload *domain.InquiryPayload) error {
	if payload == nil {
		return fmt.Errorf("inquiry payload is nil")
	}

	data := inquiryEmailData{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        valueOr(payload.Phone, notProvided),
		Company:      payload.Company,
		Address:      valueOr(payload.Address, notProvided),
		Message:      payload.Message,
		Model:        payload.Model,
		Quantity:     payload.Quantity.String(),
		ShippingTerm: valueOr(payload.ShippingTerm, notProvided),
		Subject:      valueOr(payload.Subject, defaultGeneralSubject),
	}

	templateName := "inquiry_general"
	to := s.infoAddress
	if payload.IsProductInquiry() {
		templateName = "inquiry_product"
		to = s.salesAddress
	}

	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	msg := &domain.Message{
		FromName: inquiryFromName,
		To:       to,
		Subject:  subject,
		Text:     textBody,
		HTML:     htmlBody,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send inquiry email: %w", err)
	}
	log.Printf("[EMAIL] Inquiry email sent to %s", to)
	return nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
