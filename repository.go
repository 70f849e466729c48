package content

import "github.com/pkg/errors"

var (
	TemplateNotFoundErr = errors.New("The template was not found")
	TemplateExistsErr   = errors.New("A template with that id already exists")
)

type TemplateRepository interface {
	Get(id string) (ContentTemplate, error)
	GetAll() ([]ContentTemplate, error)

	Create(template *ContentTemplate) error
	Update(template *ContentTemplate) error
	Delete(template *ContentTemplate) error
}
