package dom

import "strings"

var (
	blockTags = map[string]bool{
		"div": true, "p": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"ul": true, "ol": true, "li": true, "table": true,
	}
	inlineTags = map[string]bool{
		"span": true, "a": true, "strong": true, "em": true, "b": true, "i": true, "img": true,
	}
)

// IsBlockTag reports block level tags. Tag comparison is case insensitive.
func IsBlockTag(tag string) bool {
	return blockTags[strings.ToLower(tag)]
}

// IsInlineTag reports inline level tags. Tags which are neither block nor
// inline are left unclassified.
func IsInlineTag(tag string) bool {
	return inlineTags[strings.ToLower(tag)]
}

func (e *Element) IsBlock() bool {
	return IsBlockTag(e.Tag)
}

func (e *Element) IsInline() bool {
	return IsInlineTag(e.Tag)
}
