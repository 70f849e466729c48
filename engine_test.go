package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestEngine(t *testing.T) {
	suite.Run(t, new(engineTestSuite))
}

type engineTestSuite struct {
	suite.Suite
}

// fixedPicker always selects the same index, pinning the otherwise varied
// greeting/closing/subject wording.
type fixedPicker int

func (p fixedPicker) Intn(n int) int {
	return int(p) % n
}

func (suite *engineTestSuite) newEngine(options ...EngineOption) Engine {
	options = append([]EngineOption{SetPicker(fixedPicker(0))}, options...)

	engine, err := NewEngine(options...)
	if !assert.NoError(suite.T(), err, "Failed to create the engine") {
		suite.T().FailNow()
	}

	return engine
}

func (suite *engineTestSuite) TestGenerateMaintenanceReminderEmail() {
	engine := suite.newEngine()

	result, err := engine.GenerateContent(GenerationRequest{
		TemplateID: "maintenance-reminder",
		Tone:       ToneFriendly,
		Personalization: Personalization{
			CustomerName: "Sarah Johnson",
			CustomFields: map[string]string{
				"daysSinceLastTreatment": "90",
				"treatmentType":          "Botox",
				"doctorName":             "Dr. Chen",
				"availableSlots":         "Mon 2pm",
			},
		},
	}, ContentEmail)

	if !assert.NoError(suite.T(), err) {
		return
	}

	for _, want := range []string{"90", "Botox", "Dr. Chen", "Mon 2pm", "Sarah Johnson"} {
		assert.Contains(suite.T(), result, want)
	}

	for _, key := range []string{"customerName", "daysSinceLastTreatment", "treatmentType", "doctorName", "availableSlots"} {
		assert.NotContains(suite.T(), result, "{{"+key+"}}")
	}
}

func (suite *engineTestSuite) TestGenerateUnknownTemplate() {
	engine := suite.newEngine()

	result, err := engine.GenerateContent(GenerationRequest{
		TemplateID:      "does-not-exist",
		Tone:            ToneProfessional,
		Personalization: Personalization{CustomerName: "Sarah Johnson"},
	}, ContentEmail)

	assert.Equal(suite.T(), TemplateNotFoundErr, err)
	assert.Empty(suite.T(), result)
}

func (suite *engineTestSuite) TestMissingOptionalValuePreservesToken() {
	engine := suite.newEngine()

	// lastProcedure deliberately omitted; the token must stay visible.
	result, err := engine.GenerateContent(GenerationRequest{
		TemplateID: "post-treatment-care",
		Tone:       ToneFriendly,
		Personalization: Personalization{
			CustomerName: "Sarah Johnson",
		},
	}, ContentSms)

	if !assert.NoError(suite.T(), err) {
		return
	}

	assert.Contains(suite.T(), result, "{{lastProcedure}}")
	assert.Contains(suite.T(), result, "Sarah Johnson")
}

func (suite *engineTestSuite) TestSmsSkipsTonePass() {
	engine := suite.newEngine()

	result, err := engine.GenerateContent(GenerationRequest{
		TemplateID: "seasonal-promotion",
		Tone:       ToneFriendly,
		Personalization: Personalization{
			CustomerName: "Sarah Johnson",
			CustomFields: map[string]string{
				"seasonName":   "Summer Glow",
				"offerDetails": "20% off facials",
				"expiryDate":   "June 30",
			},
		},
	}, ContentSms)

	if !assert.NoError(suite.T(), err) {
		return
	}

	assert.NotContains(suite.T(), result, defaultTeamSignature)
	assert.NotContains(suite.T(), result, "Warmly")
}

func (suite *engineTestSuite) TestToneGreetingAndClosing() {
	engine := suite.newEngine()

	result, err := engine.GenerateContent(GenerationRequest{
		TemplateID: "maintenance-reminder",
		Tone:       ToneFriendly,
		Personalization: Personalization{
			CustomerName: "Sarah Johnson",
		},
	}, ContentEmail)

	if !assert.NoError(suite.T(), err) {
		return
	}

	// Friendly greeting variant 0 replaces the template's "Dear".
	assert.True(suite.T(), strings.HasPrefix(result, "Hi Sarah Johnson"), "unexpected opening: %q", result)
	assert.True(suite.T(), strings.HasSuffix(result, "Warmly, Sarah!\n"+defaultTeamSignature), "unexpected closing: %q", result)
}

func (suite *engineTestSuite) TestClosingAppendedWithoutGreeting() {
	repo := &templateRepository{
		GetTemplate: ContentTemplate{
			ID:       "flash-sale",
			Category: CategoryPromotional,
			BaseContent: BaseContent{
				Email: "Great news, {{customerName}}! Our flash sale starts today.",
			},
		},
	}

	engine := suite.newEngine(SetTemplateRepo(repo))

	result, err := engine.GenerateContent(GenerationRequest{
		TemplateID:      "flash-sale",
		Tone:            ToneCasual,
		Personalization: Personalization{CustomerName: "Sarah Johnson"},
	}, ContentEmail)

	if !assert.NoError(suite.T(), err) {
		return
	}

	// No greeting word to swap, the opening stays untouched while the
	// closing block is still appended.
	assert.True(suite.T(), strings.HasPrefix(result, "Great news, Sarah Johnson!"))
	assert.Contains(suite.T(), result, "Take care, Sarah!\n"+defaultTeamSignature)
}

func (suite *engineTestSuite) TestCustomFieldFillsPersonalizationToken() {
	engine := suite.newEngine()

	// loyaltyTier left empty in personalization; a custom field of the same
	// name fills the token instead. Personalization runs first, custom
	// fields second.
	result, err := engine.GenerateContent(GenerationRequest{
		TemplateID: "seasonal-promotion",
		Tone:       ToneProfessional,
		Personalization: Personalization{
			CustomerName: "Sarah Johnson",
			CustomFields: map[string]string{
				"loyaltyTier":  "Platinum",
				"seasonName":   "Winter Radiance",
				"offerDetails": "a free add-on",
				"expiryDate":   "Jan 15",
			},
		},
	}, ContentEmail)

	if !assert.NoError(suite.T(), err) {
		return
	}

	assert.Contains(suite.T(), result, "Platinum")
	assert.NotContains(suite.T(), result, "{{loyaltyTier}}")
}

func (suite *engineTestSuite) TestGenerateSubjectLine() {
	engine := suite.newEngine()

	subject := engine.GenerateSubjectLine("maintenance-reminder", "Sarah Johnson", ToneProfessional)
	assert.Equal(suite.T(), "Sarah, it's time for your next treatment", subject)

	urgent := engine.GenerateSubjectLine("maintenance-reminder", "Sarah Johnson", ToneUrgent)
	assert.Equal(suite.T(), urgentSubjectPrefix+"Sarah, it's time for your next treatment", urgent)

	fallback := engine.GenerateSubjectLine("does-not-exist", "Sarah Johnson", ToneProfessional)
	assert.Contains(suite.T(), fallback, "Sarah")
}

func (suite *engineTestSuite) TestGeneratePreviewText() {
	engine := suite.newEngine()

	preview := engine.GeneratePreviewText("seasonal-promotion", ToneProfessional)
	assert.Equal(suite.T(), "Limited-time savings on our most-loved treatments.", preview)

	urgent := engine.GeneratePreviewText("seasonal-promotion", ToneUrgent)
	assert.Equal(suite.T(), urgentPreviewPrefix+"Limited-time savings on our most-loved treatments.", urgent)

	fallback := engine.GeneratePreviewText("does-not-exist", ToneProfessional)
	assert.NotEmpty(suite.T(), fallback)
}

func (suite *engineTestSuite) TestGenerateAssemblesResult() {
	engine := suite.newEngine()

	result, err := engine.Generate(GenerationRequest{
		TemplateID: "maintenance-reminder",
		Tone:       ToneProfessional,
		Personalization: Personalization{
			CustomerName: "Sarah Johnson",
			CustomFields: map[string]string{
				"daysSinceLastTreatment": "90",
				"treatmentType":          "Botox",
				"doctorName":             "Dr. Chen",
				"availableSlots":         "Mon 2pm",
			},
		},
	}, ContentEmail)

	if !assert.NoError(suite.T(), err) {
		return
	}

	assert.NotEmpty(suite.T(), result.Subject)
	assert.NotEmpty(suite.T(), result.Preview)
	assert.NotEmpty(suite.T(), result.Content)
	assert.Equal(suite.T(),
		[]string{"customerName", "daysSinceLastTreatment", "treatmentType", "doctorName", "availableSlots"},
		result.PersonalizationTokens)
}

func (suite *engineTestSuite) TestGenerateSmsHasNoSubject() {
	engine := suite.newEngine()

	result, err := engine.Generate(GenerationRequest{
		TemplateID: "loyalty-reward",
		Tone:       ToneCasual,
		Personalization: Personalization{
			CustomerName: "Sarah Johnson",
			LoyaltyTier:  "Gold",
			CustomFields: map[string]string{
				"rewardDetails":  "a free peel",
				"redemptionCode": "GOLD10",
			},
		},
	}, ContentSms)

	if !assert.NoError(suite.T(), err) {
		return
	}

	assert.Empty(suite.T(), result.Subject)
	assert.Empty(suite.T(), result.Preview)
	assert.Contains(suite.T(), result.Content, "GOLD10")
}

type templateRepository struct {
	GetTemplate ContentTemplate
	GetErr      error
}

func (repo *templateRepository) Get(id string) (ContentTemplate, error) {
	if repo.GetErr != nil {
		return ContentTemplate{}, repo.GetErr
	}

	return repo.GetTemplate, nil
}

func (repo *templateRepository) GetAll() ([]ContentTemplate, error) {
	return []ContentTemplate{repo.GetTemplate}, nil
}

func (repo *templateRepository) Create(template *ContentTemplate) error {
	return nil
}

func (repo *templateRepository) Update(template *ContentTemplate) error {
	return nil
}

func (repo *templateRepository) Delete(template *ContentTemplate) error {
	return nil
}
