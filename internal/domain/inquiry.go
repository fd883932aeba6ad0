package domain

// InquiryTypeProduct marks an inquiry raised from the product contact modal;
// any other (or absent) type is treated as a general inquiry.
const InquiryTypeProduct = "product_inquiry"

// InquiryPayload is the body of POST /api/send-email. Fields are not
// schema-validated: missing values degrade to placeholder text in the
// rendered mail rather than rejecting the request.
type InquiryPayload struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Company      string     `json:"company"`
	Address      string     `json:"address"`
	Message      string     `json:"message"`
	Subject      string     `json:"subject"`
	Quantity     FlexString `json:"quantity"`
	Model        string     `json:"model"`
	Type         string     `json:"type"`
	ShippingTerm string     `json:"shippingTerm"`
}

// IsProductInquiry reports whether the payload targets a specific product.
func (p *InquiryPayload) IsProductInquiry() bool {
	return p.Type == InquiryTypeProduct
}
