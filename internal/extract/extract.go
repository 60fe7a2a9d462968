package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned when the declared file type is not one of
// the formats this package can decode.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// ExtractionError reports a failed decode of an otherwise supported format.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s text: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ExtractText converts a raw document into plain text based on its declared
// extension. Layout, formatting, images and embedded objects are discarded.
func ExtractText(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", &ExtractionError{Format: "pdf", Err: err}
		}
		return text, nil

	case ".docx":
		text, err := extractDocxText(data)
		if err != nil {
			return "", &ExtractionError{Format: "docx", Err: err}
		}
		return text, nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(reader.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw WordprocessingML of word/document.xml;
	// flatten it to text runs with one line break per paragraph.
	return flattenDocumentXML(doc.Editable().GetContent())
}

func flattenDocumentXML(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var textBuilder strings.Builder
	var paragraph strings.Builder
	var inRun bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.CharData:
			if inRun {
				paragraph.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				if paragraph.Len() > 0 {
					textBuilder.WriteString(paragraph.String())
					textBuilder.WriteString("\n")
					paragraph.Reset()
				}
			}
		}
	}
	return textBuilder.String(), nil
}
