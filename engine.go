package content

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const UserAgent = "GlowMed/ContentEngine-1.0"

const defaultTeamSignature = "The GlowMed Team"

// greetingPattern finds the generic greeting word the tone pass replaces.
// Only the first match is touched; a body without one keeps its opening
// as-is while the closing block is still appended.
var greetingPattern = regexp.MustCompile(`(?i)\b(Dear|Hello|Hi)\b`)

// Picker supplies the index selection used to vary greeting, closing and
// subject wording between generations. *rand.Rand satisfies it; tests pin it
// to a constant.
type Picker interface {
	Intn(n int) int
}

type Engine interface {
	HttpHandler() *HttpHandler

	GenerateContent(req GenerationRequest, ct ContentType) (string, error)
	GenerateSubjectLine(templateID, customerName string, tone Tone) string
	GeneratePreviewText(templateID string, tone Tone) string
	Generate(req GenerationRequest, ct ContentType) (GeneratedContent, error)
}

type EngineOption func(e *engine)

func SetTemplateRepo(repo TemplateRepository) EngineOption {
	return func(e *engine) {
		e.templateRepo = repo
	}
}

func SetLogger(logger logrus.FieldLogger) EngineOption {
	return func(e *engine) {
		e.logger = logger
	}
}

func SetPicker(picker Picker) EngineOption {
	return func(e *engine) {
		e.picker = picker
	}
}

func SetTeamSignature(signature string) EngineOption {
	return func(e *engine) {
		e.teamSignature = signature
	}
}

type engine struct {
	logger logrus.FieldLogger

	templateRepo  TemplateRepository
	picker        Picker
	teamSignature string
}

type globalPicker struct{}

func (globalPicker) Intn(n int) int {
	return rand.Intn(n)
}

// NewEngine builds a content engine backed by the built-in catalog unless a
// repository is injected. The catalogs are read-only, so the returned engine
// is safe for concurrent use from multiple request handlers.
func NewEngine(options ...EngineOption) (Engine, error) {
	e := &engine{
		logger: logrus.New(),

		templateRepo:  NewCatalogRepository(),
		picker:        globalPicker{},
		teamSignature: defaultTeamSignature,
	}

	for _, option := range options {
		option(e)
	}

	if err := e.ensureUsableConfiguration(); err != nil {
		return e, err
	}

	return e, nil
}

func (e *engine) ensureUsableConfiguration() error {
	if e.templateRepo == nil {
		return errors.New("Missing template repository")
	}

	if e.picker == nil {
		return errors.New("Missing picker")
	}

	return nil
}

func (e *engine) HttpHandler() *HttpHandler {
	return &HttpHandler{
		engine: e,
	}
}

// GenerateContent renders the requested template body with the supplied
// personalization values. Substitution runs per key over the accumulated
// text, customerName first, then the optional personalization fields, then
// custom fields; substituted values are never re-expanded, so adversarial
// field values cannot loop the renderer. Tokens without a value stay
// verbatim. Email bodies then receive the tone greeting/closing pass; SMS
// bodies are returned raw and never truncated here, length policy belongs to
// the caller.
func (e *engine) GenerateContent(req GenerationRequest, ct ContentType) (string, error) {
	tpl, err := e.templateRepo.Get(req.TemplateID)
	if err != nil {
		if err == TemplateNotFoundErr {
			return "", err
		}

		return "", errors.Wrapf(err, "Failed to look up template %s", req.TemplateID)
	}

	text := tpl.Body(ct)

	text = substituteField(text, "customerName", req.Personalization.CustomerName)
	text = substituteField(text, "lastProcedure", req.Personalization.LastProcedure)
	text = substituteField(text, "loyaltyTier", req.Personalization.LoyaltyTier)

	for _, key := range sortedKeys(req.Personalization.CustomFields) {
		text = substituteField(text, key, req.Personalization.CustomFields[key])
	}

	if ct == ContentEmail {
		text = e.applyTone(text, req.Tone, req.Personalization.CustomerName)
	}

	return text, nil
}

// substituteField replaces every {{key}} with value. Empty values are
// skipped so the literal token stays visible instead of silently blanking
// the sentence around it.
func substituteField(text, key, value string) string {
	if value == "" {
		return text
	}

	return strings.ReplaceAll(text, "{{"+key+"}}", value)
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// applyTone swaps the first generic greeting word for a tone-selected one
// and appends the sign-off block. The sign-off addresses the customer by
// first name, taken from the leading whitespace-separated field of the full
// name.
func (e *engine) applyTone(text string, tone Tone, customerName string) string {
	style, ok := toneStyles[tone]
	if !ok {
		e.logger.WithField("tone", tone).Warn("unknown tone, using professional style")

		style = toneStyles[ToneProfessional]
	}

	if loc := greetingPattern.FindStringIndex(text); loc != nil {
		greeting := style.greetings[e.picker.Intn(len(style.greetings))]

		text = text[:loc[0]] + greeting + text[loc[1]:]
	}

	closing := style.closings[e.picker.Intn(len(style.closings))]

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\n")
	sb.WriteString(closing)

	if first := firstName(customerName); first != "" {
		sb.WriteString(", ")
		sb.WriteString(first)
	}

	sb.WriteString("!\n")
	sb.WriteString(e.teamSignature)

	return sb.String()
}

func firstName(customerName string) string {
	fields := strings.Fields(customerName)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// GenerateSubjectLine picks one of the template's subject variants and
// personalizes it. Unknown template ids fall back to a generic subject
// rather than failing; subject lines are decoration, not content.
func (e *engine) GenerateSubjectLine(templateID, customerName string, tone Tone) string {
	candidates, ok := subjectCandidates[templateID]
	if !ok {
		candidates = []string{"Something special is waiting for you, {{customerName}}"}
	}

	subject := candidates[e.picker.Intn(len(candidates))]

	subject = ReplaceVariables(subject, map[string]string{
		"customerName": customerName,
		"firstName":    firstName(customerName),
	})

	if tone == ToneUrgent {
		subject = urgentSubjectPrefix + subject
	}

	return subject
}

// GeneratePreviewText picks one of the template's inbox preview variants.
// Unknown template ids get a generic preview.
func (e *engine) GeneratePreviewText(templateID string, tone Tone) string {
	candidates, ok := previewCandidates[templateID]
	if !ok {
		candidates = []string{"News and offers from your care team."}
	}

	preview := candidates[e.picker.Intn(len(candidates))]

	if tone == ToneUrgent {
		preview = urgentPreviewPrefix + preview
	}

	return preview
}

// Generate runs the full pipeline and assembles the wire-shaped result the
// dashboard and the external generation API both speak. Subject and preview
// are email-only; PersonalizationTokens lists the distinct tokens of the
// template body before substitution, in order of first appearance.
func (e *engine) Generate(req GenerationRequest, ct ContentType) (GeneratedContent, error) {
	tpl, err := e.templateRepo.Get(req.TemplateID)
	if err != nil {
		if err == TemplateNotFoundErr {
			return GeneratedContent{}, err
		}

		return GeneratedContent{}, errors.Wrapf(err, "Failed to look up template %s", req.TemplateID)
	}

	body, err := e.GenerateContent(req, ct)
	if err != nil {
		return GeneratedContent{}, err
	}

	result := GeneratedContent{
		Content:               body,
		PersonalizationTokens: uniqueVariables(tpl.Body(ct)),
	}

	if ct == ContentEmail {
		result.Subject = e.GenerateSubjectLine(req.TemplateID, req.Personalization.CustomerName, req.Tone)
		result.Preview = e.GeneratePreviewText(req.TemplateID, req.Tone)
	}

	return result, nil
}
