package extract

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

const (
	docxDefaultDocumentPath = "word/document.xml"
	docxContentTypesPath    = "[Content_Types].xml"
	docxMainContentType     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

var (
	// wtTag matches <w:t>text</w:t> with any attributes.
	wtTag = regexp.MustCompile(`<w:t(?:\s[^>]*)?>([^<]*)</w:t>`)
	// overrideTag matches one Override element of [Content_Types].xml.
	overrideTag  = regexp.MustCompile(`<Override\s[^>]*>`)
	partNameAttr = regexp.MustCompile(`PartName="([^"]+)"`)
)

// docxMainPart finds the main document part name in [Content_Types].xml.
func docxMainPart(contentTypes []byte) string {
	for _, o := range overrideTag.FindAllString(string(contentTypes), -1) {
		if !strings.Contains(o, `ContentType="`+docxMainContentType+`"`) {
			continue
		}
		if m := partNameAttr.FindStringSubmatch(o); m != nil {
			return strings.TrimPrefix(m[1], "/")
		}
	}
	return ""
}

// extractDOCX returns the paragraphs of a .docx, one per line. Runs inside a
// paragraph are concatenated without separators since Word splits words across runs.
func extractDOCX(content []byte) (string, error) {
	zr, err := openZip("DOCX", content)
	if err != nil {
		return "", err
	}
	docPath := docxDefaultDocumentPath
	if ct, err := readZipFile(zr, docxContentTypesPath); err == nil && ct != nil {
		if p := docxMainPart(ct); p != "" {
			docPath = p
		}
	}
	docXML, err := readZipFile(zr, docPath)
	if err != nil {
		return "", fmt.Errorf("extract DOCX: %w", err)
	}
	if docXML == nil {
		return "", fmt.Errorf("extract DOCX: %s not found", docPath)
	}

	var paragraphs []string
	for _, para := range strings.Split(string(docXML), "</w:p>") {
		var b strings.Builder
		for _, m := range wtTag.FindAllStringSubmatch(para, -1) {
			b.WriteString(html.UnescapeString(m[1]))
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
