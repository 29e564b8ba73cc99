package booking

import (
	"regexp"
	"strings"
)

// ValidationError carries the first failing field and a message suitable for
// showing to the prospect directly. Checks run in a fixed order, so callers
// always see one deterministic failure per attempt.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, newValidationError("email", "Email is required")
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, newValidationError("email", "Please provide a valid email address")
	}
	// Lowercased so the duplicate rule treats Foo@x.com and foo@x.com as one contact
	return Email{value: strings.ToLower(trimmed)}, nil
}

func (e Email) String() string {
	return e.value
}

type ContactName struct {
	value string
}

func NewContactName(raw string) (ContactName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ContactName{}, newValidationError("fullName", "Full name is required")
	}
	return ContactName{value: trimmed}, nil
}

func (n ContactName) String() string {
	return n.value
}

type WhatsAppNumber struct {
	value string
}

func NewWhatsAppNumber(raw string) (WhatsAppNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return WhatsAppNumber{}, newValidationError("whatsappNumber", "WhatsApp number is required")
	}
	return WhatsAppNumber{value: trimmed}, nil
}

func (w WhatsAppNumber) String() string {
	return w.value
}

// Qualification holds the discovery-form answers attached to a booking.
// The flags are free-form business input and need no validation beyond type.
type Qualification struct {
	Categories       []string
	BusinessTimeline string
	InvestmentReady  bool
	SeenElyscents    bool
}

func NewQualification(categories []string, timeline string, investmentReady, seenElyscents bool) (Qualification, error) {
	if len(categories) == 0 {
		return Qualification{}, newValidationError("categories", "Select at least one product category")
	}
	cleaned := make([]string, 0, len(categories))
	for _, c := range categories {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return Qualification{}, newValidationError("categories", "Select at least one product category")
	}
	trimmedTimeline := strings.TrimSpace(timeline)
	if trimmedTimeline == "" {
		return Qualification{}, newValidationError("businessTimeline", "Business timeline is required")
	}
	return Qualification{
		Categories:       cleaned,
		BusinessTimeline: trimmedTimeline,
		InvestmentReady:  investmentReady,
		SeenElyscents:    seenElyscents,
	}, nil
}
