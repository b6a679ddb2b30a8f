// Package e2e provides end-to-end tests over a generated submission corpus; this
// file builds minimal document files for the supported types.
package e2e

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SupportedFileExtensions is the list of file extensions used in E2E file-based tests.
// PDF is not generated here (no minimal PDF with extractable text); .odt/.rtf go through
// the cat library and are covered by the extract package tests.
var SupportedFileExtensions = []string{".txt", ".md", ".docx", ".xlsx", ".pptx"}

// MinimalFile returns the bytes of a minimal file of the given extension holding text.
// Plain types get the raw text.
func MinimalFile(ext, text string) ([]byte, error) {
	switch ext {
	case ".docx":
		return minimalDocx(text)
	case ".pptx":
		return minimalPptx(text)
	case ".xlsx":
		return minimalXlsx(text)
	default:
		return []byte(text), nil
	}
}

func escape(text string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(text))
	return b.String()
}

func zipWith(name, body string) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, err := w.Create(name)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write([]byte(body)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func minimalDocx(text string) ([]byte, error) {
	return zipWith("word/document.xml",
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>`+
			escape(text)+`</w:t></w:r></w:p></w:body></w:document>`)
}

func minimalPptx(text string) ([]byte, error) {
	return zipWith("ppt/slides/slide1.xml",
		`<p:sld xmlns:p="a" xmlns:a="b"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>`+
			escape(text)+`</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`)
}

func minimalXlsx(text string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetCellValue("Sheet1", "A1", text); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
