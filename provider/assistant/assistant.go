// Package assistant calls an external AI content-generation service, falling
// back to the local template engine when the service is unreachable or
// misbehaves. Callers get template-shaped output either way.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	content "github.com/glowmed/go-content"
)

type AssistantOption func(c *client)

func SetLogger(logger logrus.FieldLogger) AssistantOption {
	return func(c *client) {
		c.logger = logger
	}
}

func SetHttpClient(httpClient *retryablehttp.Client) AssistantOption {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

type Generator interface {
	Generate(ctx context.Context, req content.GenerationRequest, ct content.ContentType) (content.GeneratedContent, error)
}

type client struct {
	logger     logrus.FieldLogger
	httpClient *retryablehttp.Client

	endpoint string
	apiKey   string

	fallback content.Engine
}

// New builds a generator for the given service endpoint. The fallback engine
// is mandatory; a degraded service must never leave the campaign wizard
// without content.
func New(endpoint, apiKey string, fallback content.Engine, options ...AssistantOption) (Generator, error) {
	if fallback == nil {
		return nil, errors.New("Missing fallback engine")
	}

	c := &client{
		logger:     logrus.New(),
		httpClient: retryablehttp.NewClient(),

		endpoint: endpoint,
		apiKey:   apiKey,
		fallback: fallback,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

type generatePayload struct {
	TemplateID      string                  `json:"templateId"`
	Tone            string                  `json:"tone"`
	ContentType     string                  `json:"contentType"`
	Personalization content.Personalization `json:"personalization"`
}

// Generate asks the external service for content. Any transport, status or
// decode failure is logged and answered by the local engine instead. A
// template id the local engine does not know still surfaces
// TemplateNotFoundErr from the fallback path.
func (c *client) Generate(ctx context.Context, req content.GenerationRequest, ct content.ContentType) (content.GeneratedContent, error) {
	result, err := c.callService(ctx, req, ct)
	if err == nil {
		return result, nil
	}

	c.logger.
		WithField("templateId", req.TemplateID).
		WithError(err).
		Warn("assistant service unavailable, using local generation")

	return c.fallback.Generate(req, ct)
}

func (c *client) callService(ctx context.Context, req content.GenerationRequest, ct content.ContentType) (content.GeneratedContent, error) {
	var result content.GeneratedContent

	payload, err := json.Marshal(generatePayload{
		TemplateID:      req.TemplateID,
		Tone:            string(req.Tone),
		ContentType:     string(ct),
		Personalization: req.Personalization,
	})
	if err != nil {
		return result, errors.Wrap(err, "Failed to encode generation payload")
	}

	httpReq, err := retryablehttp.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return result, err
	}

	httpReq = httpReq.WithContext(ctx)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("User-Agent", content.UserAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 || resp.StatusCode <= 199 {
		return result, errors.Errorf("Unexpected response code %d received from assistant service", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, errors.Wrap(err, "Failed to decode assistant response")
	}

	if result.Content == "" {
		return result, errors.New("Assistant response contained no content")
	}

	return result, nil
}
