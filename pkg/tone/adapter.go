package tone

import (
	"math/rand"
	"strings"
	"time"
)

const answerMarker = "<answer>"
const answerClose = "</answer>"

// suffixes are the mascot speech tokens appended to answers.
var suffixes = []string{"다왕", "왕", "우왕"}

// suffixWindow is how many trailing runes are inspected for an
// existing suffix token. The check only looks at this window, so an
// input carrying a suffix token elsewhere is transformed again; that
// boundary is covered by tests.
const suffixWindow = 10

// Adapter rewrites answer endings into the mascot tone. The random
// source is injected so tests can seed it.
type Adapter struct {
	rng *rand.Rand
}

func NewAdapter(rng *rand.Rand) *Adapter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Adapter{rng: rng}
}

// Apply transforms text that carries the answer marker; anything else
// passes through untouched. When the answer ends in sentence-terminal
// punctuation and no suffix token sits in the trailing window, the
// terminator is replaced by " <suffix>!".
func (a *Adapter) Apply(text string) string {
	if !strings.Contains(text, answerMarker) {
		return text
	}

	// The closing marker is transparent: the tone applies to the
	// sentence that ends just before it.
	body, trailer := text, ""
	if strings.HasSuffix(body, answerClose) {
		body = body[:len(body)-len(answerClose)]
		trailer = answerClose
	}

	if !endsWithTerminator(body) {
		return text
	}
	if hasSuffixToken(body) {
		return text
	}

	suffix := suffixes[a.rng.Intn(len(suffixes))]
	return body[:len(body)-1] + " " + suffix + "!" + trailer
}

func endsWithTerminator(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

func hasSuffixToken(s string) bool {
	runes := []rune(s)
	if len(runes) > suffixWindow {
		runes = runes[len(runes)-suffixWindow:]
	}
	window := string(runes)
	for _, suffix := range suffixes {
		if strings.Contains(window, suffix) {
			return true
		}
	}
	return false
}
