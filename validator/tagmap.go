package validator

var tagMap = map[string]string{
	"required": "required",
	"len":      "invalid_length",
	"min":      "too_short",
	"max":      "too_long",
	"number":   "only_numbers_allowed",
	"numeric":  "only_numbers_allowed",
	"alpha":    "only_letters_allowed",
	"alphanum": "only_letters_and_digits_allowed",
	"e164":     "invalid_phone",
	"email":    "invalid_email",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
