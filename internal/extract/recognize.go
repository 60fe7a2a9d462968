package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Fields holds the contact details derived from resume text. An empty string
// means the field was not found; that is a normal outcome, not an error.
type Fields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// North-American 3-3-4 shape with optional +1 and optional parenthesized
	// area code. The separator in the prefix group requires the leading 1 so
	// the match never starts on surrounding whitespace. Shape only: numeric
	// IDs of the same form will match too.
	phonePattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
)

// Substrings that disqualify a line from being the candidate's name.
// Matching is case-sensitive on purpose.
var nameExclusions = []string{"@", "http", "Phone", "Email", "Resume", "CV"}

// FirstEmail returns the first email-shaped substring in document order.
func FirstEmail(text string) string {
	return emailPattern.FindString(text)
}

// FirstPhone returns the first phone-shaped substring in document order.
func FirstPhone(text string) string {
	return phonePattern.FindString(text)
}

// IsNameLine reports whether a trimmed line plausibly holds the candidate's
// name: between 3 and 49 characters and free of contact-detail markers.
func IsNameLine(line string) bool {
	length := utf8.RuneCountInString(line)
	if length <= 2 || length >= 50 {
		return false
	}
	for _, excl := range nameExclusions {
		if strings.Contains(line, excl) {
			return false
		}
	}
	return true
}

// FirstNameLine returns the first line of the text that qualifies as a name.
// Resumes conventionally open with the candidate's name, before any
// contact-detail labels.
func FirstNameLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if IsNameLine(line) {
			return line
		}
	}
	return ""
}

// Recognize scans plain text for name, email and phone candidates. It is a
// pure function and never fails; an all-empty result is valid.
func Recognize(text string) Fields {
	return Fields{
		Name:  FirstNameLine(text),
		Email: FirstEmail(text),
		Phone: FirstPhone(text),
	}
}
