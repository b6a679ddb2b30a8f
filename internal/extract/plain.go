package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lu4p/cat"
)

// extractPlain returns content as string. Invalid UTF-8 sequences are replaced
// with the replacement character and a leading byte order mark is dropped.
func extractPlain(content []byte) (string, error) {
	if !utf8.Valid(content) {
		content = []byte(strings.ToValidUTF8(string(content), "\ufffd"))
	}
	return strings.TrimPrefix(string(content), "\ufeff"), nil
}

// extractWithCat handles OpenDocument text and RTF.
func extractWithCat(content []byte) (string, error) {
	text, err := cat.FromBytes(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// minLegacyRun is the shortest printable run kept from a binary .doc file.
const minLegacyRun = 4

// extractLegacyDoc recovers text from a Word 97-2003 file by keeping runs of
// printable characters, the way strings(1) does. Formatting tables and most
// binary noise fall below the run length.
func extractLegacyDoc(content []byte) (string, error) {
	var out, run strings.Builder
	runLen := 0
	flush := func() {
		if runLen >= minLegacyRun {
			if out.Len() > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(strings.TrimSpace(run.String()))
		}
		run.Reset()
		runLen = 0
	}
	for _, b := range content {
		r := rune(b)
		if b < utf8.RuneSelf && (unicode.IsPrint(r) || r == '\t') {
			run.WriteByte(b)
			runLen++
			continue
		}
		flush()
	}
	flush()
	return out.String(), nil
}
