package extract

import (
	"html"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// atTag matches <a:t>text</a:t> with any attributes.
var atTag = regexp.MustCompile(`<a:t(?:\s[^>]*)?>([^<]*)</a:t>`)

// slideName matches slide parts and captures the slide number.
var slideName = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractPPTX returns the text of every slide in slide order, one slide per line.
func extractPPTX(content []byte) (string, error) {
	zr, err := openZip("PPTX", content)
	if err != nil {
		return "", err
	}
	type slide struct {
		n    int
		text string
	}
	var slides []slide
	for _, f := range zr.File {
		m := slideName.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			return "", err
		}
		var parts []string
		for _, p := range atTag.FindAllStringSubmatch(string(data), -1) {
			if t := strings.TrimSpace(html.UnescapeString(p[1])); t != "" {
				parts = append(parts, t)
			}
		}
		n, _ := strconv.Atoi(m[1])
		slides = append(slides, slide{n: n, text: strings.Join(parts, " ")})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].n < slides[j].n })
	lines := make([]string, 0, len(slides))
	for _, s := range slides {
		if s.text != "" {
			lines = append(lines, s.text)
		}
	}
	return strings.Join(lines, "\n"), nil
}
