package content

// TemplateCategory classifies a template by marketing intent.
type TemplateCategory string

const (
	CategoryPromotional TemplateCategory = "promotional"
	CategoryMaintenance TemplateCategory = "maintenance"
	CategoryEducational TemplateCategory = "educational"
	CategorySeasonal    TemplateCategory = "seasonal"
)

// ContentType selects which body variant of a template to render.
type ContentType string

const (
	ContentEmail ContentType = "email"
	ContentSms   ContentType = "sms"
)

// BaseContent holds the two body variants of a template. Both are raw text
// containing zero or more {{token}} placeholders.
type BaseContent struct {
	Email string `json:"email"`
	Sms   string `json:"sms"`
}

// ContentTemplate is a versionless content skeleton. Variables lists the
// template's own free-form custom field names; these live in a different
// namespace than the personalization variable registry, even when a name
// appears in both.
type ContentTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    TemplateCategory `json:"category"`
	Variables   []string         `json:"variables"`
	BaseContent BaseContent      `json:"baseContent"`
}

// Body returns the variant for the given content type. Unknown content types
// fall back to the email body.
func (t ContentTemplate) Body(ct ContentType) string {
	if ct == ContentSms {
		return t.BaseContent.Sms
	}

	return t.BaseContent.Email
}

// Personalization carries the per-customer values substituted into a
// template. CustomerName is mandatory; the rest are optional and their
// tokens stay verbatim when absent. CustomFields values must be strings;
// non-string values are rejected at the boundary, never coerced.
type Personalization struct {
	CustomerName  string            `json:"customerName"`
	LastProcedure string            `json:"lastProcedure,omitempty"`
	LoyaltyTier   string            `json:"loyaltyTier,omitempty"`
	CustomFields  map[string]string `json:"customFields,omitempty"`
}

// GenerationRequest is the ephemeral input to the renderer. It is built by a
// form, consumed once, and discarded.
type GenerationRequest struct {
	TemplateID      string          `json:"templateId"`
	Tone            Tone            `json:"tone"`
	Personalization Personalization `json:"personalization"`
}

// GeneratedContent is the ephemeral result of one generation. It has no
// identity and is never persisted here; the surrounding app owns draft
// storage. The JSON shape matches the external generation API so the two
// paths are interchangeable to callers.
type GeneratedContent struct {
	Subject               string   `json:"subject,omitempty"`
	Preview               string   `json:"preview,omitempty"`
	Content               string   `json:"content"`
	PersonalizationTokens []string `json:"personalizationTokens"`
}
