package content

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/glowmed/go-content/internal"
)

type HttpHandler struct {
	engine *engine
}

// Router wires the dashboard endpoints onto a fresh mux router.
func (h *HttpHandler) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/variables", h.GetVariables).Methods(http.MethodGet)
	router.HandleFunc("/templates", h.GetAllTemplates).Methods(http.MethodGet)
	router.HandleFunc("/templates/{id}", h.GetTemplate).Methods(http.MethodGet)
	router.HandleFunc("/templates/{id}", h.UpdateTemplate).Methods(http.MethodPut)
	router.HandleFunc("/templates/{id}", h.DeleteTemplate).Methods(http.MethodDelete)
	router.HandleFunc("/generate", h.Generate).Methods(http.MethodPost)

	return router
}

func (h *HttpHandler) GetVariables(w http.ResponseWriter, r *http.Request) {

	payload := struct {
		Data []VariableCategory `json:"data"`
	}{VariableCategories()}

	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to convert to json", 500)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *HttpHandler) GetAllTemplates(w http.ResponseWriter, r *http.Request) {

	templates, err := h.engine.templateRepo.GetAll()
	if err != nil {
		http.Error(w, "Failed to retrieve templates", 500)
		return
	}

	payload := struct {
		Data []ContentTemplate `json:"data"`
	}{templates}

	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to convert to json", 500)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *HttpHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := mux.Vars(r)["id"]
	if !ok {
		http.Error(w, "Route id var", 400)
		return
	}

	template, err := h.engine.templateRepo.Get(id)
	if err != nil {
		if err == TemplateNotFoundErr {
			http.Error(w, "Template not found", 404)
			return
		}

		http.Error(w, "Failed to retrieve template", 500)
		return
	}

	data, err := json.Marshal(template)
	if err != nil {
		http.Error(w, "Failed to convert template to json", 500)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *HttpHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {

	id, ok := mux.Vars(r)["id"]
	if !ok {
		http.Error(w, "Route id var", 400)
		return
	}

	template, err := h.engine.templateRepo.Get(id)
	if err != nil {
		if err == TemplateNotFoundErr {
			http.Error(w, "Template not found", 404)
			return
		}

		http.Error(w, "Failed to retrieve template", 500)
		return
	}

	body := &internal.UpdateTemplateRequest{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		http.Error(w, "Failed to parse incoming json", 400)
		return
	}

	template.Name = body.Name
	template.Description = body.Description
	template.Category = TemplateCategory(body.Category)
	template.Variables = body.Variables
	template.BaseContent.Email = body.BaseContent.Email
	template.BaseContent.Sms = body.BaseContent.Sms

	if err := h.engine.templateRepo.Update(&template); err != nil {
		http.Error(w, "Failed to update template", 500)
		return
	}

	data, err := json.Marshal(template)
	if err != nil {
		http.Error(w, "Failed to convert template to json", 500)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *HttpHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := mux.Vars(r)["id"]
	if !ok {
		http.Error(w, "Route id var", 400)
		return
	}

	template, err := h.engine.templateRepo.Get(id)
	if err != nil {
		if err == TemplateNotFoundErr {
			http.Error(w, "Template not found", 404)
			return
		}

		http.Error(w, "Failed to retrieve template", 500)
		return
	}

	if err := h.engine.templateRepo.Delete(&template); err != nil {
		http.Error(w, "Failed to delete template", 500)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HttpHandler) Generate(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	w.Header().Set("X-Request-Id", requestID)

	body := &internal.GenerateRequest{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		http.Error(w, "Failed to parse incoming json", 400)
		return
	}

	if err := body.Validate(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	tone := Tone(body.Tone)
	if body.Tone == "" {
		tone = ToneProfessional
	} else if !ValidTone(tone) {
		http.Error(w, "Unknown tone", 400)
		return
	}

	ct := ContentType(body.ContentType)
	if body.ContentType == "" {
		ct = ContentEmail
	} else if ct != ContentEmail && ct != ContentSms {
		http.Error(w, "Unknown content type", 400)
		return
	}

	req := GenerationRequest{
		TemplateID: body.TemplateID,
		Tone:       tone,
		Personalization: Personalization{
			CustomerName:  body.Personalization.CustomerName,
			LastProcedure: body.Personalization.LastProcedure,
			LoyaltyTier:   body.Personalization.LoyaltyTier,
			CustomFields:  body.StringCustomFields(),
		},
	}

	result, err := h.engine.Generate(req, ct)
	if err != nil {
		if err == TemplateNotFoundErr {
			http.Error(w, "Could not generate: template not found", 422)
			return
		}

		h.engine.logger.
			WithField("requestId", requestID).
			WithField("templateId", body.TemplateID).
			WithError(err).
			Error("failed to generate content")

		http.Error(w, "Failed to generate content", 500)
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Failed to convert to json", 500)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
