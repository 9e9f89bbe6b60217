package extract

import (
	"archive/zip"
	"bytes"
	stderrors "errors"
	"testing"

	"careerbot/internal/errors"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating archive entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("writing document body: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

func assertErrorCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatalf("error = %v, want *AppError", err)
	}
	if appErr.Code != wantCode {
		t.Errorf("error code = %q, want %q", appErr.Code, wantCode)
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("plain text"))
	assertErrorCode(t, err, errors.ErrCodeUnsupportedFormat)
}

func TestExtractTextDOCX(t *testing.T) {
	documentXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Python </w:t></w:r><w:r><w:t>developer</w:t></w:r></w:p>
  </w:body>
</w:document>`

	got, err := ExtractText("resume.docx", buildDOCX(t, documentXML))
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	want := "John Doe\nPython developer\n"
	if got != want {
		t.Errorf("ExtractText() = %q, want %q", got, want)
	}
}

func TestExtractTextDOCXNotAnArchive(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a zip file"))
	assertErrorCode(t, err, errors.ErrCodeExtractionFailed)
}

func TestExtractTextDOCXMissingDocumentBody(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("creating archive entry: %v", err)
	}
	f.Write([]byte("<styles/>"))
	w.Close()

	_, err = ExtractText("resume.docx", buf.Bytes())
	assertErrorCode(t, err, errors.ErrCodeExtractionFailed)
}

func TestExtractTextPDFInvalid(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf"))
	assertErrorCode(t, err, errors.ErrCodeExtractionFailed)
}
