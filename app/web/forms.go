package web

import (
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/integration/backend"
	"github.com/dmitrymomot/newslens/middleware"
)

// maxFormSize caps login and register bodies.
const maxFormSize = 16 * middleware.KB

// credentialsForm is the body of the login and register forms.
type credentialsForm struct {
	Email    string
	Password string
}

func (f credentialsForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

// parseCredentials decodes and validates a credentials form. The address
// format is left to the upstream. Any failure is a BadRequest.
func parseCredentials(r *http.Request) (backend.Credentials, error) {
	if err := r.ParseForm(); err != nil {
		return backend.Credentials{}, outcome.New(outcome.BadRequest, err)
	}

	form := credentialsForm{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}
	if err := form.Validate(); err != nil {
		return backend.Credentials{}, outcome.New(outcome.BadRequest, err)
	}

	return backend.Credentials{Email: form.Email, Password: form.Password}, nil
}
