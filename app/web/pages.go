package web

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/newslens/app/web/views"
	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/response"
)

// errorPage is the localized content behind one /error/{slug} path.
type errorPage struct {
	code         int
	message      string
	instructions map[language.Tag][]string
}

// errorPages is keyed by the slug of every redirect target under /error/.
var errorPages = map[string]errorPage{
	"not-found": {
		code:    http.StatusNotFound,
		message: "Not Found",
		instructions: map[language.Tag][]string{
			language.Indonesian: {"Pastikan input sudah benar", "Hubungi pihak pengembang"},
			language.English:    {"Make sure the input is correct", "Contact the developers"},
		},
	},
	"bad-request": {
		code:    http.StatusBadRequest,
		message: "Bad Request",
		instructions: map[language.Tag][]string{
			language.Indonesian: {"Pastikan input sudah benar", "Hubungi pihak pengembang"},
			language.English:    {"Make sure the input is correct", "Contact the developers"},
		},
	},
	"server-error": {
		code:    http.StatusInternalServerError,
		message: "Internal Server Error",
		instructions: map[language.Tag][]string{
			language.Indonesian: {"Coba kembali dan refresh halaman", "Hubungi pihak pengembang"},
			language.English:    {"Go back and refresh the page", "Contact the developers"},
		},
	},
	"email-taken": {
		code:    http.StatusConflict,
		message: "Conflict",
		instructions: map[language.Tag][]string{
			language.Indonesian: {"Coba gunakan email lain", "Hubungi pihak pengembang"},
			language.English:    {"Try another email address", "Contact the developers"},
		},
	},
	"incorrect-password": {
		code:    http.StatusUnauthorized,
		message: "Unauthorized",
		instructions: map[language.Tag][]string{
			language.Indonesian: {"Pastikan password dan email sesuai", "Hubungi pihak pengembang untuk mengganti password"},
			language.English:    {"Check that the email and password match", "Contact the developers to reset your password"},
		},
	},
}

// showError renders the page for the slug in the path. The page is served
// with 200 so htmx swaps it in after an HX-Location redirect; the code is
// part of the content. Unknown slugs go to the not found page.
func (a *App) showError(ctx *Context) handler.Response {
	page, ok := errorPages[ctx.Param("slug")]
	if !ok {
		return response.Error(outcome.New(outcome.NotFound, nil))
	}

	return response.Templ(views.ErrorPage(views.ErrorMessage{
		Code:         page.code,
		Message:      page.message,
		Instructions: page.instructions[ctx.Language()],
	}))
}
