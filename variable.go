package content

// PersonalizationVariable is a named placeholder representing per-customer
// data, e.g. {{firstName}}. The registry below is the single source of truth
// for which variables exist; editors use it to classify tokens as known or
// unknown.
type PersonalizationVariable struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Example     string `json:"example"`
	Description string `json:"description,omitempty"`
}

// VariableCategory groups related variables for display purposes. The Icon is
// a hint for the UI and carries no meaning here.
type VariableCategory struct {
	ID        string                    `json:"id"`
	Label     string                    `json:"label"`
	Icon      string                    `json:"icon"`
	Variables []PersonalizationVariable `json:"variables"`
}

// variableCategories is built once at process start and never mutated, so it
// is safe for concurrent readers. Keys must be unique across the whole
// registry, not just within a category; substitution is key-based and a
// duplicate would silently shadow its twin.
var variableCategories = []VariableCategory{
	{
		ID:    "customer",
		Label: "Customer",
		Icon:  "user",
		Variables: []PersonalizationVariable{
			{Key: "firstName", Label: "First Name", Example: "Sarah", Description: "Customer's first name"},
			{Key: "lastName", Label: "Last Name", Example: "Johnson", Description: "Customer's last name"},
			{Key: "customerName", Label: "Full Name", Example: "Sarah Johnson", Description: "Customer's full name"},
			{Key: "loyaltyTier", Label: "Loyalty Tier", Example: "Gold", Description: "Current loyalty program tier"},
			{Key: "memberSince", Label: "Member Since", Example: "2021", Description: "Year the customer joined"},
		},
	},
	{
		ID:    "treatment",
		Label: "Treatment",
		Icon:  "syringe",
		Variables: []PersonalizationVariable{
			{Key: "lastProcedure", Label: "Last Procedure", Example: "Botox", Description: "Most recent treatment received"},
			{Key: "favoriteService", Label: "Favorite Service", Example: "HydraFacial", Description: "Most frequently booked service"},
			{Key: "daysSinceLastTreatment", Label: "Days Since Last Treatment", Example: "90"},
			{Key: "treatmentType", Label: "Treatment Type", Example: "Botox"},
			{Key: "doctorName", Label: "Provider Name", Example: "Dr. Chen", Description: "Treating practitioner"},
		},
	},
	{
		ID:    "offer",
		Label: "Offer",
		Icon:  "tag",
		Variables: []PersonalizationVariable{
			{Key: "discountPercent", Label: "Discount Percent", Example: "20%"},
			{Key: "promoCode", Label: "Promo Code", Example: "GLOW20"},
			{Key: "offerExpiry", Label: "Offer Expiry", Example: "June 30", Description: "Date the offer ends"},
		},
	},
	{
		ID:    "clinic",
		Label: "Clinic",
		Icon:  "building",
		Variables: []PersonalizationVariable{
			{Key: "clinicName", Label: "Clinic Name", Example: "GlowMed Aesthetics"},
			{Key: "clinicPhone", Label: "Clinic Phone", Example: "(555) 012-3456"},
			{Key: "availableSlots", Label: "Available Slots", Example: "Mon 2pm", Description: "Next open booking slots"},
			{Key: "bookingLink", Label: "Booking Link", Example: "https://glowmed.example/book"},
		},
	},
}

// VariableCategories returns the registry grouped by category, in
// registration order.
func VariableCategories() []VariableCategory {
	return variableCategories
}

// AllVariables flattens every category in registration order. The result is
// deterministic across calls.
func AllVariables() []PersonalizationVariable {
	var all []PersonalizationVariable
	for _, category := range variableCategories {
		all = append(all, category.Variables...)
	}

	return all
}

// FindVariable looks up a variable by exact, case-sensitive key. Absence is
// reported through the boolean, never an error; editors render an "unknown
// variable" badge rather than failing.
func FindVariable(key string) (PersonalizationVariable, bool) {
	for _, variable := range AllVariables() {
		if variable.Key == key {
			return variable, true
		}
	}

	return PersonalizationVariable{}, false
}

// IsValidVariable reports whether key exists in the registry.
func IsValidVariable(key string) bool {
	_, ok := FindVariable(key)
	return ok
}
