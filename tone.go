package content

// Tone is one of four fixed presentation styles affecting greeting, closing
// and subject/preview word choice.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneUrgent       Tone = "Urgent"
	ToneCasual       Tone = "Casual"
)

// ValidTone reports whether t is one of the four known tones.
func ValidTone(t Tone) bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneUrgent, ToneCasual:
		return true
	}

	return false
}

type toneStyle struct {
	greetings []string
	closings  []string
}

// toneStyles drives the email post-processing pass: the first generic
// greeting word in the body is swapped for one of greetings, and one of
// closings heads the appended sign-off block. SMS bodies skip this entirely.
var toneStyles = map[Tone]toneStyle{
	ToneProfessional: {
		greetings: []string{"Dear", "Hello"},
		closings:  []string{"Best regards", "Sincerely", "Kind regards"},
	},
	ToneFriendly: {
		greetings: []string{"Hi", "Hello", "Hey there"},
		closings:  []string{"Warmly", "Talk soon", "See you soon"},
	},
	ToneUrgent: {
		greetings: []string{"Hello", "Attention"},
		closings:  []string{"Don't wait", "Act today"},
	},
	ToneCasual: {
		greetings: []string{"Hey", "Hi"},
		closings:  []string{"Take care", "Cheers", "Catch you later"},
	},
}

const (
	urgentSubjectPrefix = "Last Chance: "
	urgentPreviewPrefix = "Time-sensitive: "
)

// subjectCandidates maps template ids to subject line variants. Candidates
// may contain {{customerName}} and {{firstName}} tokens; the generator
// substitutes both.
var subjectCandidates = map[string][]string{
	"maintenance-reminder": {
		"{{firstName}}, it's time for your next treatment",
		"Your results are worth maintaining, {{firstName}}",
		"A friendly reminder from your care team",
	},
	"seasonal-promotion": {
		"A seasonal treat just for you, {{firstName}}",
		"Our seasonal event is here",
		"{{firstName}}, don't miss this season's special",
	},
	"new-client-welcome": {
		"Welcome to the family, {{firstName}}!",
		"Your journey with us begins now",
	},
	"loyalty-reward": {
		"A thank-you for your loyalty, {{firstName}}",
		"You've earned something special",
	},
	"post-treatment-care": {
		"Caring for your results, {{firstName}}",
		"Your aftercare guide is here",
	},
	"skincare-education": {
		"This month's skincare insight for you",
		"{{firstName}}, something worth knowing about your skin",
	},
}

// previewCandidates maps template ids to inbox preview text variants.
var previewCandidates = map[string][]string{
	"maintenance-reminder": {
		"Keep your results looking their best with a quick visit.",
		"Your provider has openings this week.",
	},
	"seasonal-promotion": {
		"Limited-time savings on our most-loved treatments.",
		"Seasonal specials, reserved for our members first.",
	},
	"new-client-welcome": {
		"Here's a little something to start you off right.",
		"Your complimentary consultation is waiting.",
	},
	"loyalty-reward": {
		"Your loyalty just paid off.",
		"A reward is waiting on your account.",
	},
	"post-treatment-care": {
		"A few simple steps to protect your investment.",
		"Everything you need to know after your visit.",
	},
	"skincare-education": {
		"Expert advice from our clinical team.",
		"The science behind your favorite treatment.",
	},
}
