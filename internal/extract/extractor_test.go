package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a minimal uncompressed PDF with one page per entry in
// pageTexts. Offsets in the cross-reference table are computed from the
// actual buffer positions so the output is a well-formed document.
func buildPDF(t *testing.T, pageTexts []string) []byte {
	t.Helper()

	n := len(pageTexts)
	catalogNum := 1
	pagesNum := 2
	pageNum := func(i int) int { return 3 + i }
	fontNum := 3 + n
	contentNum := func(i int) int { return 4 + n + i }
	objCount := 3 + 2*n // catalog, pages, font, n pages, n streams

	var buf bytes.Buffer
	offsets := make(map[int]int)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	writeObj(catalogNum, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesNum))

	kids := make([]string, n)
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", pageNum(i))
	}
	writeObj(pagesNum, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), n))

	for i := range pageTexts {
		writeObj(pageNum(i), fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			pagesNum, fontNum, contentNum(i)))
	}

	writeObj(fontNum, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(contentNum(i), fmt.Sprintf(
			"<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= objCount; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objCount+1, catalogNum, xrefStart)

	return buf.Bytes()
}

func TestExtractPlainTextPassthrough(t *testing.T) {
	e := New()

	text, err := e.Extract([]byte("just a plain resume"), "resume.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "just a plain resume", text)
}

func TestExtractPDFMultiPage(t *testing.T) {
	e := New()
	data := buildPDF(t, []string{"Hello page one", "Hello page two"})

	text, err := e.Extract(data, "resume.pdf", "application/pdf")
	require.NoError(t, err)

	first := strings.Index(text, "Hello page one")
	second := strings.Index(text, "Hello page two")
	require.GreaterOrEqual(t, first, 0, "first page text missing")
	require.GreaterOrEqual(t, second, 0, "second page text missing")
	assert.Less(t, first, second, "page text out of page order")
}

func TestExtractPDFSelectedByContentType(t *testing.T) {
	e := New()
	data := buildPDF(t, []string{"Uploaded without a file name"})

	text, err := e.Extract(data, "", "application/pdf")
	require.NoError(t, err)
	assert.Contains(t, text, "Uploaded without a file name")
}

func TestExtractCorruptPDFFailsWithExtractionError(t *testing.T) {
	e := New()

	_, err := e.Extract([]byte("this is not a pdf at all"), "resume.pdf", "application/pdf")
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "pdf-decode-failed", extErr.Reason)
	// Both decoders in the fallback chain should have reported a cause.
	assert.Contains(t, extErr.Error(), "ledongthuc")
	assert.Contains(t, extErr.Error(), "dslipak")
}

func TestExtractCorruptDOCXFailsWithExtractionError(t *testing.T) {
	e := New()

	_, err := e.Extract([]byte("not a zip archive"), "resume.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "docx-decode-failed", extErr.Reason)
	assert.True(t, errors.Unwrap(extErr) != nil, "cause should be preserved")
}

func TestUnknownTypeFallsBackToUTF8(t *testing.T) {
	e := New()

	// An unknown extension with a generic content type is returned as-is,
	// even when the bytes happen to look binary.
	text, err := e.Extract([]byte("Jane Doe\njane@example.com"), "resume.dat", "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com", text)
}

func TestDocxContentToText(t *testing.T) {
	content := `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Software Engineer &amp; Team Lead</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>First line</w:t><w:br/><w:t>Second line</w:t></w:r></w:p>`

	text := docxContentToText(content)
	assert.Equal(t, "Jane Doe\nSoftware Engineer & Team Lead\nFirst line\nSecond line", text)
}

func TestDocxExtensionBeatsDeclaredType(t *testing.T) {
	e := New()

	// A .docx name with a bogus content type still routes to the DOCX
	// decoder, which rejects the non-zip payload.
	_, err := e.Extract([]byte("plain text pretending"), "resume.docx", "text/plain")
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "docx-decode-failed", extErr.Reason)
}
