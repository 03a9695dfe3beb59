// Package extract converts uploaded resume documents (PDF, DOCX, or plain
// text) into plain UTF-8 text. The strategy is chosen from the file extension
// and the declared content type; PDF decoding runs through an ordered fallback
// list of decoders so a single library failure does not lose the upload.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	dslipak "github.com/dslipak/pdf"
	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// pdfStrategy is one PDF decoder in the ordered fallback list.
type pdfStrategy struct {
	name   string
	decode func(data []byte) (string, error)
}

// Extractor converts document buffers to plain text.
type Extractor struct {
	pdfStrategies []pdfStrategy
}

// New creates an Extractor with the default decoder chain.
func New() *Extractor {
	return &Extractor{
		pdfStrategies: []pdfStrategy{
			{name: "ledongthuc", decode: decodePDFPages},
			{name: "dslipak", decode: decodePDFDocument},
		},
	}
}

// Extract converts a document buffer into plain text. Strategy selection,
// first match wins: a ".pdf" extension or a content type containing "pdf"
// selects the PDF chain; a ".docx" extension or a content type containing
// "word" or "officedocument" selects the DOCX decoder; anything else is
// treated as UTF-8 text as-is.
func (e *Extractor) Extract(data []byte, fileName, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	mime := strings.ToLower(contentType)

	switch {
	case ext == ".pdf" || strings.Contains(mime, "pdf"):
		return e.extractPDF(data)
	case ext == ".docx" || strings.Contains(mime, "word") || strings.Contains(mime, "officedocument"):
		return extractDOCX(data)
	default:
		return string(data), nil
	}
}

// extractPDF tries each decoder in order and returns the first success.
// When every decoder fails the causes are aggregated into one ExtractionError.
func (e *Extractor) extractPDF(data []byte) (string, error) {
	var failures []string
	for _, s := range e.pdfStrategies {
		text, err := runPDFStrategy(s, data)
		if err == nil {
			return text, nil
		}
		failures = append(failures, fmt.Sprintf("%s: %v", s.name, err))
	}
	return "", &ExtractionError{
		Reason: "pdf-decode-failed",
		Err:    fmt.Errorf("%s", strings.Join(failures, "; ")),
	}
}

// runPDFStrategy invokes a decoder with a recover guard. Both decoder
// libraries panic on some corrupt cross-reference tables rather than
// returning an error.
func runPDFStrategy(s pdfStrategy, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return s.decode(data)
}

// decodePDFPages extracts text page by page, concatenating page text in page
// order with newline separators.
func decodePDFPages(data []byte) (string, error) {
	r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("no extractable pages")
	}
	return strings.Join(pages, "\n"), nil
}

// decodePDFDocument extracts the whole document in one pass.
func decodePDFDocument(data []byte) (string, error) {
	r, err := dslipak.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("no extractable text")
	}
	return buf.String(), nil
}

// extractDOCX decodes an Office Open XML container purely from the in-memory
// buffer and flattens the document markup to plain text.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Reason: "docx-decode-failed", Err: err}
	}
	defer doc.Close()

	return docxContentToText(doc.Editable().GetContent()), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxLineBreak    = regexp.MustCompile(`<w:br[^>]*/?>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

var docxEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// docxContentToText converts document.xml markup to plain text, preserving
// paragraph boundaries as newlines.
func docxContentToText(content string) string {
	text := docxParagraphEnd.ReplaceAllString(content, "\n")
	text = docxLineBreak.ReplaceAllString(text, "\n")
	text = docxTag.ReplaceAllString(text, "")
	text = docxEntities.Replace(text)
	return strings.TrimRight(text, "\n")
}
