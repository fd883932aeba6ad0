package domain

import (
	"crypto/rand"
	"strconv"
	"time"
)

// OrderCustomer carries the shipping and contact details of a checkout.
type OrderCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Notes   string `json:"notes"`
}

// OrderItem is one line of the cart.
type OrderItem struct {
	Name     string    `json:"name"`
	Quantity FlexFloat `json:"quantity"`
	Price    FlexFloat `json:"price"`
}

// OrderPayload is the body of POST /api/send-invoice.
type OrderPayload struct {
	Customer      OrderCustomer `json:"customer"`
	Items         []OrderItem   `json:"items"`
	Subtotal      FlexFloat     `json:"subtotal"`
	Total         FlexFloat     `json:"total"`
	OrderDate     string        `json:"orderDate"`
	PaymentMethod string        `json:"paymentMethod"`
}

// PaymentMethodCreditCard is the only payment method with its own label;
// every other value is labeled as a bank transfer.
const PaymentMethodCreditCard = "credit-card"

// PaymentMethodLabel maps the raw payment method onto its display label.
func PaymentMethodLabel(method string) string {
	if method == PaymentMethodCreditCard {
		return "Credit Card"
	}
	return "Bank Transfer"
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID builds a display reference of the form
// ORD-<unix millis>-<9 random base36 chars>. It is probabilistically unique
// only; ids are never persisted or checked for collision.
func NewOrderID(now time.Time) string {
	suffix := make([]byte, 9)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range suffix {
		suffix[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return "ORD-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + string(suffix)
}

// orderDateLayouts are the accepted shapes of the orderDate field, most
// specific first.
var orderDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// displayDateLayout renders a long en-US date with a short time,
// e.g. "Monday, January 2, 2006 at 3:04 PM".
const displayDateLayout = "Monday, January 2, 2006 at 3:04 PM"

// FormatOrderDate renders the raw order date for human display. A value that
// cannot be parsed falls back to the current time.
func FormatOrderDate(raw string, now func() time.Time) string {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return now().Format(displayDateLayout)
}
