package i18n

// Translator retrieves localized messages for DecodeError codes.
// data provides optional metadata to embed in the message (for example,
// "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_key":
			return "必須キーが不足しています"
		case "invalid_value":
			return "値が不正です"
		case "invalid_document":
			return "ドキュメントを解析できません"
		}
	default: // "en"
		switch code {
		case "missing_key":
			return "required key missing"
		case "invalid_value":
			return "invalid value"
		case "invalid_document":
			return "document could not be parsed"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
