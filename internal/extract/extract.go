// Package extract pulls plain text out of uploaded resume files.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"careerbot/internal/errors"
)

// ExtractText extracts the plain text of an uploaded resume. The format
// is chosen by the filename extension; PDF and DOCX are supported.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
			"Invalid file format. Please upload PDF or DOCX", nil).
			WithContext("filename", filename)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"failed to read PDF file", err)
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
				"failed to extract PDF text", err).
				WithContext("page", pageNum)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// docx structures cover just enough of the WordprocessingML schema to
// recover paragraph text from word/document.xml.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text []string `xml:"t"`
}

func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"failed to open DOCX archive", err)
	}

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document = file
			break
		}
	}
	if document == nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"DOCX archive has no document body", nil)
	}

	rc, err := document.Open()
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"failed to open DOCX document body", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"failed to read DOCX document body", err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"failed to parse DOCX document body", err)
	}

	var b strings.Builder
	for _, paragraph := range doc.Body.Paragraphs {
		for _, run := range paragraph.Runs {
			for _, text := range run.Text {
				b.WriteString(text)
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
