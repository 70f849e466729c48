// Package jsonfile loads a template catalog from a JSON file on disk. The
// dashboard ships its catalogs as static JSON; this repository reads the
// file once at construction and serves it read-only.
package jsonfile

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"

	content "github.com/glowmed/go-content"
)

func NewTemplateRepository(path string) (content.TemplateRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read template catalog %s", path)
	}

	var payload struct {
		Templates []content.ContentTemplate `json:"templates"`
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse template catalog %s", path)
	}

	return &templateRepository{
		templates: payload.Templates,
	}, nil
}

type templateRepository struct {
	mu        sync.RWMutex
	templates []content.ContentTemplate
}

func (repo *templateRepository) Get(id string) (content.ContentTemplate, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, tpl := range repo.templates {
		if tpl.ID == id {
			return tpl, nil
		}
	}

	return content.ContentTemplate{}, content.TemplateNotFoundErr
}

func (repo *templateRepository) GetAll() ([]content.ContentTemplate, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	templates := make([]content.ContentTemplate, len(repo.templates))
	copy(templates, repo.templates)

	return templates, nil
}

func (repo *templateRepository) Create(template *content.ContentTemplate) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, tpl := range repo.templates {
		if tpl.ID == template.ID {
			return content.TemplateExistsErr
		}
	}

	repo.templates = append(repo.templates, *template)

	return nil
}

func (repo *templateRepository) Update(template *content.ContentTemplate) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, tpl := range repo.templates {
		if tpl.ID == template.ID {
			repo.templates[i] = *template
			return nil
		}
	}

	return content.TemplateNotFoundErr
}

func (repo *templateRepository) Delete(template *content.ContentTemplate) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, tpl := range repo.templates {
		if tpl.ID == template.ID {
			repo.templates = append(repo.templates[:i], repo.templates[i+1:]...)
			return nil
		}
	}

	return content.TemplateNotFoundErr
}
