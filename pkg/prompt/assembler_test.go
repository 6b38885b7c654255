package prompt

import (
	"strings"
	"testing"

	"dawangi-chatbot-be/pkg/routing"
)

func TestAssembleInjectsKnowledgeIntoBlock(t *testing.T) {
	template := "머리말\n<policy_data>\n설명 앞부분\n{{참조 파일: data/common/다부전공_제도안내.md}}\n설명 뒷부분\n</policy_data>\n꼬리말"
	knowledge := "# 제도 안내\n복수전공은 36학점이다."

	result := Assemble(template, knowledge, routing.LabelPolicy, Variables{})

	if !strings.Contains(result, knowledge) {
		t.Fatalf("knowledge text not injected:\n%s", result)
	}
	if strings.Contains(result, "참조 파일") {
		t.Errorf("reference marker survived injection:\n%s", result)
	}
	// Only the marker is replaced; the rest of the block stays.
	if !strings.Contains(result, "설명 앞부분") || !strings.Contains(result, "설명 뒷부분") {
		t.Errorf("surrounding block content was not preserved:\n%s", result)
	}
	if !strings.Contains(result, "머리말") || !strings.Contains(result, "꼬리말") {
		t.Errorf("content outside the block was modified:\n%s", result)
	}
}

func TestAssembleWithoutBlockTagSkipsInjection(t *testing.T) {
	template := "블록 태그가 없는 템플릿 {{QUESTION}}"

	result := Assemble(template, "지식 본문", routing.LabelPolicy, Variables{Question: "질문"})

	if strings.Contains(result, "지식 본문") {
		t.Errorf("knowledge injected despite missing block tag:\n%s", result)
	}
	if !strings.Contains(result, "질문") {
		t.Errorf("variable substitution should still run:\n%s", result)
	}
}

func TestAssembleSubstitutesVariables(t *testing.T) {
	template := "학과={{profile_dept}} 선택={{selected_program}} 전공={{program_name}} id={{program_id}} 질문={{QUESTION}}"

	result := Assemble(template, "", routing.LabelCurriculum, Variables{
		Question:        "교과과정 알려줘",
		ProfileDept:     "소프트웨어학부",
		SelectedProgram: "빅데이터",
		ProgramName:     "빅데이터_전공",
	})

	want := "학과=소프트웨어학부 선택=빅데이터 전공=빅데이터_전공 id=빅데이터_전공 질문=교과과정 알려줘"
	if result != want {
		t.Errorf("got %q, want %q", result, want)
	}
}

func TestAssembleAppliesDefaults(t *testing.T) {
	template := "이수={{completed_courses_json}} 가능={{eligible_programs_json}} 입학={{entry_year}} 버전={{version}}"

	result := Assemble(template, "", routing.LabelRequirements, Variables{})

	want := "이수=[] 가능=[] 입학=2024 버전=2025-06"
	if result != want {
		t.Errorf("got %q, want %q", result, want)
	}
}

func TestAssembleIsPure(t *testing.T) {
	template := "<requirements>{{참조 파일: x}}</requirements> {{QUESTION}}"
	vars := Variables{Question: "졸업요건?"}

	first := Assemble(template, "요건 본문", routing.LabelRequirements, vars)
	second := Assemble(template, "요건 본문", routing.LabelRequirements, vars)

	if first != second {
		t.Errorf("repeated assembly diverged:\n%s\n---\n%s", first, second)
	}
}

func TestBlockTagFallback(t *testing.T) {
	if got := BlockTag(routing.LabelCatalog); got != "catalog_data" {
		t.Errorf("got %q, want catalog_data", got)
	}
	if got := BlockTag("없는_라벨"); got != "data" {
		t.Errorf("got %q, want data fallback", got)
	}
}
