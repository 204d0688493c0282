package backend

import "errors"

// ErrMissingID is a decode failure for payloads without an identifier.
var ErrMissingID = errors.New("payload has no id")

// Credentials are the login and registration form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the account returned by login and registration.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u User) validate() error {
	if u.ID == "" {
		return ErrMissingID
	}
	return nil
}

// NewsContent is an article the upstream parsed for a user.
type NewsContent struct {
	ID              *string `json:"id"`
	Title           string  `json:"title"`
	Content         *string `json:"content"`
	Authors         string  `json:"authors"`
	PublicationDate *string `json:"publication_date"`
	URL             string  `json:"url"`
	Summary         *string `json:"summary"`
}

// ContentID returns the article identifier, or "" when the upstream sent none.
func (n NewsContent) ContentID() string {
	if n.ID == nil {
		return ""
	}
	return *n.ID
}

func (n NewsContent) validate() error {
	if n.ContentID() == "" {
		return ErrMissingID
	}
	return nil
}
