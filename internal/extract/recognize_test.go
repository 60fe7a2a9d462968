package extract

import "testing"

func TestRecognize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Fields
	}{
		{
			name: "typical resume header",
			text: "Jane Doe\nSoftware Engineer\njane.doe@example.com\n(555) 123-4567",
			want: Fields{Name: "Jane Doe", Email: "jane.doe@example.com", Phone: "(555) 123-4567"},
		},
		{
			name: "labelled lines disqualify the name",
			text: "Email: x@y.com\nPhone: 555-1234",
			want: Fields{Name: "", Email: "x@y.com", Phone: ""},
		},
		{
			name: "empty text",
			text: "",
			want: Fields{},
		},
		{
			name: "single long line still yields email and phone",
			text: "John Smith is a software engineer reachable at john@work.io or 555-123-4567 most days",
			want: Fields{Name: "", Email: "john@work.io", Phone: "555-123-4567"},
		},
		{
			name: "name after blank and oversized lines",
			text: "\n   \nThis introductory line is way too long to plausibly be anyone's actual name at all\nMary Major\nmary@major.dev",
			want: Fields{Name: "Mary Major", Email: "mary@major.dev", Phone: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recognize(tt.text)
			if got != tt.want {
				t.Errorf("Recognize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFirstEmail_FirstMatchWins(t *testing.T) {
	text := "contact primary@example.com or fallback secondary@example.org"
	if got := FirstEmail(text); got != "primary@example.com" {
		t.Errorf("FirstEmail() = %q, want first match", got)
	}
}

func TestFirstPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"parenthesized area code", "call (555) 123-4567 now", "(555) 123-4567"},
		{"preceding newline is not part of the match", "Jane Doe\n(555) 123-4567", "(555) 123-4567"},
		{"preceding space is not part of the match", "tel 555-123-4567", "555-123-4567"},
		{"dotted", "555.123.4567", "555.123.4567"},
		{"plus one prefix", "+1 555 123 4567", "+1 555 123 4567"},
		{"seven digits is not enough", "call 555-1234", ""},
		{"numeric id of the same shape matches", "order 555 123 4567 shipped", "555 123 4567"},
		{"no digits", "no number here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstPhone(tt.text); got != tt.want {
				t.Errorf("FirstPhone(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsNameLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"plausible name", "Jane Doe", true},
		{"two characters is too short", "Jo", false},
		{"three characters qualifies", "Kim", true},
		{"fifty characters is too long", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcdef", false},
		{"forty-nine characters qualifies", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcde", true},
		{"contains at sign", "jane@doe", false},
		{"contains url", "see http://example.com", false},
		{"contains Phone label", "Phone number below", false},
		{"contains Email label", "My Email address", false},
		{"contains Resume word", "Resume of Jane", false},
		{"contains CV substring", "CVS Pharmacy", false},
		{"exclusions are case-sensitive", "resume writer", true},
		{"length is counted in characters not bytes", "Александра Константинопольская", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNameLine(tt.line); got != tt.want {
				t.Errorf("IsNameLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFirstNameLine_TakesFirstQualifying(t *testing.T) {
	text := "Resume\nJane Doe\nJohn Roe"
	if got := FirstNameLine(text); got != "Jane Doe" {
		t.Errorf("FirstNameLine() = %q, want %q", got, "Jane Doe")
	}
}
