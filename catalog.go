package content

import "sync"

// builtinTemplates is the static catalog the dashboard ships with. Bodies
// are plain text with {{token}} placeholders; Variables lists the custom
// fields each template expects the campaign form to collect.
var builtinTemplates = []ContentTemplate{
	{
		ID:          "maintenance-reminder",
		Name:        "Treatment Maintenance Reminder",
		Description: "Nudges a customer whose results are due for a touch-up",
		Category:    CategoryMaintenance,
		Variables:   []string{"daysSinceLastTreatment", "treatmentType", "doctorName", "availableSlots"},
		BaseContent: BaseContent{
			Email: "Dear {{customerName}},\n\n" +
				"It has been {{daysSinceLastTreatment}} days since your last {{treatmentType}} treatment, " +
				"and {{doctorName}} recommends scheduling your maintenance visit to keep your results looking their best.\n\n" +
				"We currently have openings on {{availableSlots}}. Reply to this email or call us to reserve yours.",
			Sms: "Hi {{customerName}}! It's been {{daysSinceLastTreatment}} days since your {{treatmentType}}. " +
				"{{doctorName}} has openings {{availableSlots}}. Reply BOOK to schedule.",
		},
	},
	{
		ID:          "seasonal-promotion",
		Name:        "Seasonal Promotion",
		Description: "Limited-time seasonal offer announcement",
		Category:    CategorySeasonal,
		Variables:   []string{"seasonName", "offerDetails", "expiryDate"},
		BaseContent: BaseContent{
			Email: "Hello {{customerName}},\n\n" +
				"Our {{seasonName}} event is here! For a limited time, enjoy {{offerDetails}}.\n\n" +
				"This offer ends {{expiryDate}}, so book your appointment soon. As a {{loyaltyTier}} member, " +
				"you get priority scheduling.",
			Sms: "{{customerName}}, our {{seasonName}} event is on! {{offerDetails}} until {{expiryDate}}. Book now!",
		},
	},
	{
		ID:          "new-client-welcome",
		Name:        "New Client Welcome",
		Description: "First-visit welcome with an introductory offer",
		Category:    CategoryPromotional,
		Variables:   []string{"welcomeOffer", "consultationLink"},
		BaseContent: BaseContent{
			Email: "Dear {{customerName}},\n\n" +
				"Welcome to {{clinicName}}! We're delighted you've chosen us for your aesthetic care.\n\n" +
				"As a welcome gift, enjoy {{welcomeOffer}} on your first treatment. " +
				"Schedule your complimentary consultation here: {{consultationLink}}.",
			Sms: "Welcome to {{clinicName}}, {{customerName}}! Enjoy {{welcomeOffer}} on your first visit: {{consultationLink}}",
		},
	},
	{
		ID:          "loyalty-reward",
		Name:        "Loyalty Tier Reward",
		Description: "Thanks a returning customer with a tier-based perk",
		Category:    CategoryPromotional,
		Variables:   []string{"rewardDetails", "redemptionCode"},
		BaseContent: BaseContent{
			Email: "Dear {{customerName}},\n\n" +
				"Thank you for being a {{loyaltyTier}} member with us. Your loyalty has earned you {{rewardDetails}}.\n\n" +
				"Use code {{redemptionCode}} at your next visit. We look forward to pampering you again soon.",
			Sms: "{{customerName}}, your {{loyaltyTier}} status earned you {{rewardDetails}}! Code: {{redemptionCode}}",
		},
	},
	{
		ID:          "post-treatment-care",
		Name:        "Post-Treatment Care Guide",
		Description: "Aftercare instructions following a procedure",
		Category:    CategoryEducational,
		Variables:   []string{"careInstructions", "followUpDate"},
		BaseContent: BaseContent{
			Email: "Hello {{customerName}},\n\n" +
				"Thank you for visiting us for your {{lastProcedure}} treatment. To get the most from your results:\n\n" +
				"{{careInstructions}}\n\n" +
				"We'd love to see you for a follow-up around {{followUpDate}}. " +
				"If you have any questions before then, call us at {{clinicPhone}}.",
			Sms: "{{customerName}}, aftercare for your {{lastProcedure}}: {{careInstructions}} Questions? Call {{clinicPhone}}.",
		},
	},
	{
		ID:          "skincare-education",
		Name:        "Skincare Education",
		Description: "Educational content about a treatment or skin topic",
		Category:    CategoryEducational,
		Variables:   []string{"topicTitle", "topicSummary", "readMoreLink"},
		BaseContent: BaseContent{
			Email: "Hi {{customerName}},\n\n" +
				"This month we're talking about {{topicTitle}}.\n\n" +
				"{{topicSummary}}\n\n" +
				"Curious to learn more? Read the full guide: {{readMoreLink}}.",
			Sms: "{{customerName}}, new from {{clinicName}}: {{topicTitle}}. Read more: {{readMoreLink}}",
		},
	},
}

// NewCatalogRepository returns a TemplateRepository seeded with the built-in
// catalog. Reads after construction are lock-free copies of an immutable
// snapshot unless a caller mutates through Create/Update/Delete, which the
// admin endpoints do, so writes take the mutex.
func NewCatalogRepository() TemplateRepository {
	repo := &catalogRepository{
		templates: make([]ContentTemplate, len(builtinTemplates)),
	}

	copy(repo.templates, builtinTemplates)

	return repo
}

type catalogRepository struct {
	mu        sync.RWMutex
	templates []ContentTemplate
}

func (repo *catalogRepository) Get(id string) (ContentTemplate, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, tpl := range repo.templates {
		if tpl.ID == id {
			return tpl, nil
		}
	}

	return ContentTemplate{}, TemplateNotFoundErr
}

func (repo *catalogRepository) GetAll() ([]ContentTemplate, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	templates := make([]ContentTemplate, len(repo.templates))
	copy(templates, repo.templates)

	return templates, nil
}

func (repo *catalogRepository) Create(template *ContentTemplate) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, tpl := range repo.templates {
		if tpl.ID == template.ID {
			return TemplateExistsErr
		}
	}

	repo.templates = append(repo.templates, *template)

	return nil
}

func (repo *catalogRepository) Update(template *ContentTemplate) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, tpl := range repo.templates {
		if tpl.ID == template.ID {
			repo.templates[i] = *template
			return nil
		}
	}

	return TemplateNotFoundErr
}

func (repo *catalogRepository) Delete(template *ContentTemplate) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, tpl := range repo.templates {
		if tpl.ID == template.ID {
			repo.templates = append(repo.templates[:i], repo.templates[i+1:]...)
			return nil
		}
	}

	return TemplateNotFoundErr
}
