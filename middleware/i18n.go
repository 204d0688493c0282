package middleware

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/newslens/core/handler"
)

// languageContextKey is used as a key for storing the negotiated language in request context.
type languageContextKey struct{}

// I18nConfig configures the language negotiation middleware.
type I18nConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Languages the app can answer in; the first is the fallback (required)
	Languages []language.Tag

	// LanguageExtractor returns the raw preference list to match.
	// Default: the Accept-Language header
	LanguageExtractor func(ctx handler.Context) string
}

// I18n creates a language negotiation middleware matching Accept-Language
// against the given languages. The first language is the fallback.
func I18n[C handler.Context](languages ...language.Tag) handler.Middleware[C] {
	return I18nWithConfig[C](I18nConfig{Languages: languages})
}

// I18nWithConfig stores the best supported match for the request's language
// preference in context. Missing or unparsable preferences get the fallback.
func I18nWithConfig[C handler.Context](cfg I18nConfig) handler.Middleware[C] {
	if len(cfg.Languages) == 0 {
		panic("i18n middleware: at least one language is required")
	}

	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(ctx handler.Context) string {
			return ctx.Request().Header.Get("Accept-Language")
		}
	}

	matcher := language.NewMatcher(cfg.Languages)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			ctx.SetValue(languageContextKey{}, negotiate(matcher, cfg.Languages, cfg.LanguageExtractor(ctx)))
			return next(ctx)
		}
	}
}

func negotiate(matcher language.Matcher, supported []language.Tag, pref string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// GetLanguage retrieves the negotiated language from the request context.
func GetLanguage(ctx handler.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(languageContextKey{}).(language.Tag)
	return tag, ok
}
