package i18n

import "golang.org/x/text/language"

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Dutch,
})

// Negotiate picks the site language. An explicit preference (the saved
// language cookie) wins; otherwise the Accept-Language header is matched,
// falling back to English.
func Negotiate(preferred, acceptLanguage string) Locale {
	if l, ok := ParseLocale(preferred); ok {
		return l
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	return Supported[index]
}
