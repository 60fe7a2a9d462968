package extract

// DefaultName is used when neither recognition nor the caller supplied a name.
const DefaultName = "Unknown"

func resolve(recognized, supplied, fallback string) string {
	if recognized != "" {
		return recognized
	}
	if supplied != "" {
		return supplied
	}
	return fallback
}

// ResolveName applies the name precedence: recognized, then supplied, then
// DefaultName. Recognized values win because they come straight from the
// document.
func ResolveName(recognized, supplied string) string {
	return resolve(recognized, supplied, DefaultName)
}

// ResolveEmail applies the email precedence; the final fallback is empty.
func ResolveEmail(recognized, supplied string) string {
	return resolve(recognized, supplied, "")
}

// ResolvePhone applies the phone precedence; the final fallback is empty.
func ResolvePhone(recognized, supplied string) string {
	return resolve(recognized, supplied, "")
}

// Merge combines recognized fields with caller-supplied overrides, applying
// the per-field precedence independently.
func Merge(recognized, supplied Fields) Fields {
	return Fields{
		Name:  ResolveName(recognized.Name, supplied.Name),
		Email: ResolveEmail(recognized.Email, supplied.Email),
		Phone: ResolvePhone(recognized.Phone, supplied.Phone),
	}
}
