package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storemailer/internal/adapters/email"
	"storemailer/internal/domain"
)

const (
	testSalesAddress = "sale@asianimportexport.com"
	testInfoAddress  = "info@asianimportexport.com"
	testOwnerEmail   = "owner@asianimportexport.com"
)

// fakeMailer records every Send and can be told to fail specific calls.
type fakeMailer struct {
	calls  int
	sent   []domain.Message
	failOn map[int]error // 1-based call number -> error
}

func (f *fakeMailer) Send(ctx context.Context, msg *domain.Message) error {
	f.calls++
	if err := f.failOn[f.calls]; err != nil {
		return err
	}
	f.sent = append(f.sent, *msg)
	return nil
}

func TestInquiryService_Routing(t *testing.T) {
	tests := []struct {
		name   string
		typ    string
		wantTo string
	}{
		{"product inquiry goes to sales", domain.InquiryTypeProduct, testSalesAddress},
		{"general inquiry goes to info", "general", testInfoAddress},
		{"absent type goes to info", "", testInfoAddress},
		{"unknown type goes to info", "support", testInfoAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

			err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
				Name: "Alice", Email: "a@x.com", Message: "Hi", Type: tt.typ,
				Model: "X100", Quantity: domain.FlexString("25"),
			})
			require.NoError(t, err)
			require.Equal(t, 1, mailer.calls)
			assert.Equal(t, tt.wantTo, mailer.sent[0].To)
			assert.Equal(t, "Product Inquiry", mailer.sent[0].FromName)
		})
	}
}

func TestInquiryService_ProductSubject(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

	err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
		Name: "Bob", Email: "b@x.com", Message: "Need a quote",
		Type: domain.InquiryTypeProduct, Model: "CNC-500", Quantity: domain.FlexString("500"),
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Product Inquiry: CNC-500 (500 units)", mailer.sent[0].Subject)
}

func TestInquiryService_GeneralSubject(t *testing.T) {
	t.Run("default subject", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

		err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
			Name: "Alice", Email: "a@x.com", Message: "Hi",
		})
		require.NoError(t, err)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "General Inquiry from Website", mailer.sent[0].Subject)
	})

	t.Run("provided subject wins", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

		err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
			Name: "Alice", Email: "a@x.com", Message: "Hi", Subject: "Partnership request",
		})
		require.NoError(t, err)
		assert.Equal(t, "Partnership request", mailer.sent[0].Subject)
	})
}

func TestInquiryService_Placeholders(t *testing.T) {
	t.Run("missing optional fields render as Not provided", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

		err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
			Name: "Alice", Email: "a@x.com", Message: "Hi",
			Type: domain.InquiryTypeProduct, Model: "X100", Quantity: domain.FlexString("1"),
		})
		require.NoError(t, err)
		msg := mailer.sent[0]
		assert.Contains(t, msg.Text, "Phone: Not provided")
		assert.Contains(t, msg.Text, "Address: Not provided")
		assert.Contains(t, msg.Text, "Shipping Terms: Not provided")
		assert.Contains(t, msg.HTML, "Not provided")
	})

	t.Run("missing company is omitted entirely", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

		err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
			Name: "Alice", Email: "a@x.com", Message: "Hi",
		})
		require.NoError(t, err)
		msg := mailer.sent[0]
		assert.NotContains(t, msg.Text, "Company:")
		assert.NotContains(t, msg.HTML, "Company:")
	})

	t.Run("present company gets its row", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

		err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
			Name: "Alice", Email: "a@x.com", Message: "Hi", Company: "Acme Ltd",
		})
		require.NoError(t, err)
		msg := mailer.sent[0]
		assert.Contains(t, msg.Text, "Company: Acme Ltd")
		assert.Contains(t, msg.HTML, "Acme Ltd")
	})
}

func TestInquiryService_MessageVerbatim(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

	message := "line one\n  indented line two\n\nline four"
	err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
		Name: "Alice", Email: "a@x.com", Message: message,
	})
	require.NoError(t, err)
	assert.Contains(t, mailer.sent[0].Text, message)
}

func TestInquiryService_TransportFailure(t *testing.T) {
	mailer := &fakeMailer{failOn: map[int]error{1: assert.AnError}}
	svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

	err := svc.SendInquiry(context.Background(), &domain.InquiryPayload{
		Name: "Alice", Email: "a@x.com", Message: "Hi",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, mailer.calls)
}

func TestInquiryService_NilPayload(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewInquiryService(mailer, email.NewTemplateRenderer(), testSalesAddress, testInfoAddress)

	err := svc.SendInquiry(context.Background(), nil)
	require.Error(t, err)
	assert.Zero(t, mailer.calls)
}
