package routing

import (
	"context"
	"log"
	"regexp"
	"strings"

	"dawangi-chatbot-be/pkg/llm"
)

// RouterSystemPrompt pins the classifier to short, parseable output.
const RouterSystemPrompt = "You are a classification router. Return only the exact label inside <output>...</output> tags."

var outputRe = regexp.MustCompile(`<output>(.+?)</output>`)

// Classifier routes a free-text question to one of the category labels
// using the LLM provider. Any failure degrades to LabelUnmatched; the
// classifier never guesses a category from ambiguous output.
type Classifier struct {
	llmProvider llm.LLMProvider
	template    string
	logger      *log.Logger
}

// NewClassifier creates a classifier around a router prompt template.
// The template carries {{profile_dept}}, {{selected_program}} and
// {{QUESTION}} placeholders.
func NewClassifier(llmProvider llm.LLMProvider, routerTemplate string, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		template:    routerTemplate,
		logger:      logger,
	}
}

// Classify resolves the category label for a question.
func (c *Classifier) Classify(ctx context.Context, question, profileDept, selectedProgram string) string {
	prompt := strings.NewReplacer(
		"{{profile_dept}}", profileDept,
		"{{selected_program}}", selectedProgram,
		"{{QUESTION}}", question,
	).Replace(c.template)

	// Low temperature, tiny budget: the router only emits a label token.
	response, err := c.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(100),
		llm.WithSystem(RouterSystemPrompt),
	)
	if err != nil {
		c.logger.Printf("[ROUTER] classification call failed, falling back to Unmatched: %v", err)
		return LabelUnmatched
	}

	return parseLabel(response)
}

// parseLabel extracts the label from the <output> wrapper. Missing
// wrapper or an unknown token both mean Unmatched.
func parseLabel(response string) string {
	match := outputRe.FindStringSubmatch(response)
	if match == nil {
		return LabelUnmatched
	}
	label := strings.TrimSpace(match[1])
	if !IsValid(label) {
		return LabelUnmatched
	}
	return label
}
