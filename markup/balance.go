package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reOpenTag  = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9:-]*)([^>]*)>`)
	reCloseTag = regexp.MustCompile(`</[a-zA-Z]`)

	voidElements = map[string]bool{
		"area": true, "base": true, "br": true, "col": true, "embed": true,
		"hr": true, "img": true, "input": true, "link": true, "meta": true,
		"param": true, "source": true, "track": true, "wbr": true,
	}
)

// checkTagBalance is a cheap textual heuristic, it does not understand
// comments or script content.
func checkTagBalance(data []byte) error {
	open := 0
	for _, m := range reOpenTag.FindAllSubmatch(data, -1) {
		if voidElements[strings.ToLower(string(m[1]))] || strings.HasSuffix(strings.TrimSpace(string(m[2])), "/") {
			continue
		}
		open++
	}
	closed := len(reCloseTag.FindAllIndex(data, -1))
	if open > closed {
		return &ParseError{Msg: fmt.Sprintf("%d element(s) not closed (%d opening, %d closing tags)", open-closed, open, closed)}
	}
	return nil
}
