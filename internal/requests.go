package internal

import "fmt"

// GenerateRequest is the wire form of a generation call. CustomFields is
// decoded loosely so that non-string values can be rejected with a precise
// message instead of a generic unmarshal error or a silent coercion.
type GenerateRequest struct {
	TemplateID  string `json:"templateId"`
	Tone        string `json:"tone"`
	ContentType string `json:"contentType"`

	Personalization struct {
		CustomerName  string                 `json:"customerName"`
		LastProcedure string                 `json:"lastProcedure"`
		LoyaltyTier   string                 `json:"loyaltyTier"`
		CustomFields  map[string]interface{} `json:"customFields"`
	} `json:"personalization"`
}

// Validate checks the request shape. It returns the first problem found;
// the handler maps any error to a 400.
func (r *GenerateRequest) Validate() error {
	if r.TemplateID == "" {
		return fmt.Errorf("templateId is required")
	}

	if r.Personalization.CustomerName == "" {
		return fmt.Errorf("personalization.customerName is required")
	}

	for key, value := range r.Personalization.CustomFields {
		if _, ok := value.(string); !ok {
			return fmt.Errorf("customFields.%s must be a string", key)
		}
	}

	return nil
}

// StringCustomFields returns the validated custom fields as strings.
// Call Validate first.
func (r *GenerateRequest) StringCustomFields() map[string]string {
	if len(r.Personalization.CustomFields) == 0 {
		return nil
	}

	fields := make(map[string]string, len(r.Personalization.CustomFields))
	for key, value := range r.Personalization.CustomFields {
		if s, ok := value.(string); ok {
			fields[key] = s
		}
	}

	return fields
}

// UpdateTemplateRequest is the wire form of a template edit.
type UpdateTemplateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Variables   []string `json:"variables"`

	BaseContent struct {
		Email string `json:"email"`
		Sms   string `json:"sms"`
	} `json:"baseContent"`
}
