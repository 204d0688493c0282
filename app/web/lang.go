package web

import "golang.org/x/text/language"

// supportedLanguages lists the page languages; the first is the fallback.
var supportedLanguages = []language.Tag{
	language.Indonesian,
	language.English,
}
