package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func decodeJson(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func TestHttpHandler(t *testing.T) {
	suite.Run(t, new(httpHandlerTestSuite))
}

type httpHandlerTestSuite struct {
	suite.Suite

	server *httptest.Server
}

func (suite *httpHandlerTestSuite) SetupTest() {
	engine, err := NewEngine(SetPicker(fixedPicker(0)))
	if err != nil {
		suite.T().Fatalf("failed to create engine: %v", err)
	}

	suite.server = httptest.NewServer(engine.HttpHandler().Router())
}

func (suite *httpHandlerTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *httpHandlerTestSuite) TestGenerate() {
	body := `{
		"templateId": "maintenance-reminder",
		"tone": "Friendly",
		"contentType": "email",
		"personalization": {
			"customerName": "Sarah Johnson",
			"customFields": {"daysSinceLastTreatment": "90", "treatmentType": "Botox", "doctorName": "Dr. Chen", "availableSlots": "Mon 2pm"}
		}
	}`

	resp, err := http.Post(suite.server.URL+"/generate", "application/json", strings.NewReader(body))
	if !assert.NoError(suite.T(), err) {
		return
	}
	defer resp.Body.Close()

	assert.Equal(suite.T(), 200, resp.StatusCode)
	assert.NotEmpty(suite.T(), resp.Header.Get("X-Request-Id"))

	var result GeneratedContent
	if !assert.NoError(suite.T(), decodeJson(resp, &result)) {
		return
	}

	assert.NotEmpty(suite.T(), result.Subject)
	assert.NotEmpty(suite.T(), result.Preview)
	assert.Contains(suite.T(), result.Content, "Dr. Chen")
	assert.Contains(suite.T(), result.PersonalizationTokens, "customerName")
}

func (suite *httpHandlerTestSuite) TestGenerateUnknownTemplate() {
	body := `{"templateId": "does-not-exist", "personalization": {"customerName": "Sarah Johnson"}}`

	resp, err := http.Post(suite.server.URL+"/generate", "application/json", strings.NewReader(body))
	if !assert.NoError(suite.T(), err) {
		return
	}
	defer resp.Body.Close()

	assert.Equal(suite.T(), 422, resp.StatusCode)
}

func (suite *httpHandlerTestSuite) TestGenerateRejectsNonStringCustomField() {
	body := `{
		"templateId": "maintenance-reminder",
		"personalization": {
			"customerName": "Sarah Johnson",
			"customFields": {"daysSinceLastTreatment": 90}
		}
	}`

	resp, err := http.Post(suite.server.URL+"/generate", "application/json", strings.NewReader(body))
	if !assert.NoError(suite.T(), err) {
		return
	}
	defer resp.Body.Close()

	assert.Equal(suite.T(), 400, resp.StatusCode)
}

func (suite *httpHandlerTestSuite) TestGenerateRejectsUnknownTone() {
	body := `{"templateId": "maintenance-reminder", "tone": "Sassy", "personalization": {"customerName": "Sarah Johnson"}}`

	resp, err := http.Post(suite.server.URL+"/generate", "application/json", strings.NewReader(body))
	if !assert.NoError(suite.T(), err) {
		return
	}
	defer resp.Body.Close()

	assert.Equal(suite.T(), 400, resp.StatusCode)
}

func (suite *httpHandlerTestSuite) TestGetVariables() {
	resp, err := http.Get(suite.server.URL + "/variables")
	if !assert.NoError(suite.T(), err) {
		return
	}
	defer resp.Body.Close()

	assert.Equal(suite.T(), 200, resp.StatusCode)

	var payload struct {
		Data []VariableCategory `json:"data"`
	}
	if !assert.NoError(suite.T(), decodeJson(resp, &payload)) {
		return
	}

	assert.Len(suite.T(), payload.Data, 4)
	assert.Equal(suite.T(), "customer", payload.Data[0].ID)
}

func (suite *httpHandlerTestSuite) TestTemplateLifecycle() {
	resp, err := http.Get(suite.server.URL + "/templates/maintenance-reminder")
	if !assert.NoError(suite.T(), err) {
		return
	}
	resp.Body.Close()
	assert.Equal(suite.T(), 200, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, suite.server.URL+"/templates/maintenance-reminder", nil)
	if !assert.NoError(suite.T(), err) {
		return
	}

	resp, err = http.DefaultClient.Do(req)
	if !assert.NoError(suite.T(), err) {
		return
	}
	resp.Body.Close()
	assert.Equal(suite.T(), http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(suite.server.URL + "/templates/maintenance-reminder")
	if !assert.NoError(suite.T(), err) {
		return
	}
	resp.Body.Close()
	assert.Equal(suite.T(), 404, resp.StatusCode)
}

func (suite *httpHandlerTestSuite) TestUpdateTemplate() {
	body := `{
		"name": "Updated Reminder",
		"description": "updated",
		"category": "maintenance",
		"variables": ["treatmentType"],
		"baseContent": {"email": "Dear {{customerName}}, your {{treatmentType}} awaits.", "sms": "{{customerName}}: {{treatmentType}} due."}
	}`

	req, err := http.NewRequest(http.MethodPut, suite.server.URL+"/templates/maintenance-reminder", strings.NewReader(body))
	if !assert.NoError(suite.T(), err) {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if !assert.NoError(suite.T(), err) {
		return
	}
	defer resp.Body.Close()

	assert.Equal(suite.T(), 200, resp.StatusCode)

	var template ContentTemplate
	if !assert.NoError(suite.T(), decodeJson(resp, &template)) {
		return
	}

	assert.Equal(suite.T(), "Updated Reminder", template.Name)
	assert.Equal(suite.T(), []string{"treatmentType"}, template.Variables)
}
