package program

import "strings"

// keywordRule binds a question keyword to a program identifier. The
// table is a slice because declaration order is the tie-break: the
// first rule whose keyword occurs anywhere in the question wins, even
// if a later rule's keyword appears earlier in the text.
type keywordRule struct {
	Keyword string
	Program string
}

var keywordTable = []keywordRule{
	{"빅데이터", "빅데이터_전공"},
	{"지식재산", "지식재산_스마트융합"},
	{"스마트융합", "지식재산_스마트융합"},
	{"위기관리", "위기관리_전공"},
	{"보안컨설팅", "보안컨설팅_전공"},
	{"보안", "보안컨설팅_전공"},
	{"벤처비즈니스", "벤처비즈니스_전공"},
	{"벤처", "벤처비즈니스_전공"},
	{"이차전지", "이차전지_융합전공"},
	{"공공데이터사이언스", "공공데이터사이언스_전공"},
	{"공공데이터", "공공데이터사이언스_전공"},
}

// names maps program identifiers to their human-readable form.
var names = map[string]string{
	"빅데이터_전공":      "빅데이터",
	"지식재산_스마트융합":   "지식재산 스마트융합",
	"위기관리_전공":      "위기관리",
	"보안컨설팅_전공":     "보안컨설팅",
	"벤처비즈니스_전공":    "벤처비즈니스",
	"이차전지_융합전공":    "이차전지융합",
	"공공데이터사이언스_전공": "공공데이터사이언스",
}

// Extract resolves a program identifier from free question text.
// Returns "" when no keyword matches; that is not an error, it tells
// the pipeline to ask a clarifying question.
func Extract(question string) string {
	for _, rule := range keywordTable {
		if strings.Contains(question, rule.Keyword) {
			return rule.Program
		}
	}
	return ""
}

// DisplayName returns the human-readable name of a program identifier,
// falling back to the identifier itself.
func DisplayName(id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
