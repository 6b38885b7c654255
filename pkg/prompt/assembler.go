package prompt

import (
	"regexp"
	"strings"

	"dawangi-chatbot-be/pkg/routing"
)

// Each category is bound to a named injection block in its template.
var blockTags = map[string]string{
	routing.LabelPolicy:       "policy_data",
	routing.LabelCatalog:      "catalog_data",
	routing.LabelRequirements: "requirements",
	routing.LabelCurriculum:   "curriculum",
}

// referenceMarker matches the single "insert reference file here"
// placeholder inside an injection block.
var referenceMarker = regexp.MustCompile(`\{\{참조 파일:[^}]*\}\}`)

// BlockTag returns the injection tag bound to a label.
func BlockTag(label string) string {
	if tag, ok := blockTags[label]; ok {
		return tag
	}
	return "data"
}

// Variables are the per-request substitution values. The remaining
// placeholders of the template contract are defaulted, never left open.
type Variables struct {
	Question        string
	ProfileDept     string
	SelectedProgram string
	ProgramName     string
}

// Assemble merges a template, the knowledge text and the substitution
// variables into the final prompt. Pure function of its inputs.
//
// Knowledge injection replaces only the reference-file marker inside
// the label's block; all surrounding block content is preserved. A
// template without the block tag is returned with no injection — the
// loader flags that case at startup.
func Assemble(templateText, knowledgeText, label string, vars Variables) string {
	result := injectBlock(templateText, knowledgeText, BlockTag(label))

	// Placeholder names are disjoint, so substitution order is irrelevant.
	return strings.NewReplacer(
		"{{profile_dept}}", vars.ProfileDept,
		"{{selected_program}}", vars.SelectedProgram,
		"{{program_name}}", vars.ProgramName,
		"{{program_id}}", vars.ProgramName,
		"{{QUESTION}}", vars.Question,

		// Defaulted placeholders for fields not populated by this flow.
		"{{completed_courses_json}}", "[]",
		"{{eligible_programs_json}}", "[]",
		"{{entry_year}}", "2024",
		"{{version}}", "2025-06",
	).Replace(result)
}

func injectBlock(templateText, knowledgeText, tag string) string {
	blockRe := regexp.MustCompile(`(?s)<` + tag + `>.*?</` + tag + `>`)
	loc := blockRe.FindStringIndex(templateText)
	if loc == nil {
		return templateText
	}

	block := templateText[loc[0]:loc[1]]
	markerLoc := referenceMarker.FindStringIndex(block)
	if markerLoc == nil {
		return templateText
	}

	injected := block[:markerLoc[0]] + knowledgeText + block[markerLoc[1]:]
	return templateText[:loc[0]] + injected + templateText[loc[1]:]
}
