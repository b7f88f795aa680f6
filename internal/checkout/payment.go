package checkout

import (
	"fmt"
	"strings"
	"time"
)

// Method selects how an order is settled at checkout.
type Method string

const (
	// MethodDirect places the order with no payment details attached.
	MethodDirect Method = "direct"
	// MethodCreditCard validates card details and attaches a synthetic
	// transaction record. No processor is involved.
	MethodCreditCard Method = "credit_card"
)

// BillingAddress accompanies a credit-card payment.
type BillingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// CardDetails are the raw form fields of a credit-card payment. CardNumber
// may contain spaces or dashes; validation strips non-digits first.
type CardDetails struct {
	CardNumber     string         `json:"cardNumber"`
	ExpiryMonth    int            `json:"expiryMonth"`
	ExpiryYear     int            `json:"expiryYear"`
	CVV            string         `json:"cvv"`
	CardholderName string         `json:"cardholderName"`
	Billing        BillingAddress `json:"billingAddress"`
}

// Payment is the checkout variant: direct, or credit card with details.
type Payment struct {
	Method Method       `json:"method"`
	Card   *CardDetails `json:"card,omitempty"`
}

// FieldError names the offending form field so the UI can highlight it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed payment field; validation never
// stops at the first problem.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid payment details: " + strings.Join(msgs, "; ")
}

// ValidateCard checks card details the way the payment form expects:
// exactly 16 digits passing Luhn, CVV of 3-4 digits, expiry not in the past,
// cardholder and billing address present. The length check runs before the
// checksum so a short number reports a length error, not an invalid card.
func ValidateCard(card CardDetails, now time.Time) *ValidationError {
	var fields []FieldError

	digits := digitsOf(card.CardNumber)
	switch {
	case len(digits) != 16:
		fields = append(fields, FieldError{"cardNumber", "Card number must be exactly 16 digits"})
	case !luhnValid(digits):
		fields = append(fields, FieldError{"cardNumber", "Invalid card number"})
	}

	if card.ExpiryMonth == 0 || card.ExpiryYear == 0 {
		fields = append(fields, FieldError{"expiry", "Expiry date is required"})
	} else if card.ExpiryYear < now.Year() ||
		(card.ExpiryYear == now.Year() && card.ExpiryMonth < int(now.Month())) {
		fields = append(fields, FieldError{"expiry", "Card has expired"})
	}

	if n := len(digitsOf(card.CVV)); n < 3 || n > 4 || len(card.CVV) != n {
		fields = append(fields, FieldError{"cvv", "CVV must be 3 or 4 digits"})
	}

	if strings.TrimSpace(card.CardholderName) == "" {
		fields = append(fields, FieldError{"cardholderName", "Cardholder name is required"})
	}
	if strings.TrimSpace(card.Billing.Street) == "" {
		fields = append(fields, FieldError{"billingStreet", "Street address is required"})
	}
	if strings.TrimSpace(card.Billing.City) == "" {
		fields = append(fields, FieldError{"billingCity", "City is required"})
	}
	if strings.TrimSpace(card.Billing.State) == "" {
		fields = append(fields, FieldError{"billingState", "State is required"})
	}
	if strings.TrimSpace(card.Billing.ZipCode) == "" {
		fields = append(fields, FieldError{"billingZip", "ZIP code is required"})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// luhnValid runs the standard Luhn checksum over a digit string.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// cardType guesses the network from the leading digits, for receipts only.
func cardType(digits string) string {
	switch {
	case strings.HasPrefix(digits, "4"):
		return "Visa"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "Mastercard"
	case strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37"):
		return "American Express"
	case strings.HasPrefix(digits, "6011"):
		return "Discover"
	default:
		return "Unknown"
	}
}
