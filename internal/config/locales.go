package config

const (
	LangEN = "en"
	LangES = "es"
)

func SupportedLanguages() []string {
	return []string{LangEN, LangES}
}

func IsValidLanguage(lang string) bool {
	for _, l := range SupportedLanguages() {
		if l == lang {
			return true
		}
	}
	return false
}

// LanguageName returns the English name used in prompt directives.
func LanguageName(lang string) string {
	switch lang {
	case LangES:
		return "Spanish"
	default:
		return "English"
	}
}
