package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfig = `{
  "routing": {
    "다전공_제도": {
      "prompt": "prompt/policy.txt",
      "data": "data/policy.md"
    },
    "융합전공_교과과정": {
      "prompt": "prompt/curriculum.txt",
      "data_template": "data/curriculum/{program_name}.md",
      "available_programs": ["빅데이터_전공", "위기관리_전공"]
    }
  },
  "router_prompt": "prompt/router.txt"
}`

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestNewLoaderRejectsMissingConfig(t *testing.T) {
	if _, err := NewLoader(t.TempDir()); err == nil {
		t.Fatal("expected error for missing config.json")
	}
}

func TestNewLoaderRejectsEmptyRouting(t *testing.T) {
	root := writeCorpus(t, map[string]string{"config.json": `{"routing": {}}`})
	if _, err := NewLoader(root); err == nil {
		t.Fatal("expected error for empty routing table")
	}
}

func TestResolve(t *testing.T) {
	root := writeCorpus(t, map[string]string{"config.json": testConfig})
	loader, err := NewLoader(root)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("fixed data path", func(t *testing.T) {
		promptPath, dataPath, err := loader.Resolve("다전공_제도", "")
		if err != nil {
			t.Fatal(err)
		}
		if promptPath != "prompt/policy.txt" || dataPath != "data/policy.md" {
			t.Errorf("got (%q, %q)", promptPath, dataPath)
		}
	})

	t.Run("parameterized data path", func(t *testing.T) {
		_, dataPath, err := loader.Resolve("융합전공_교과과정", "빅데이터_전공")
		if err != nil {
			t.Fatal(err)
		}
		if dataPath != "data/curriculum/빅데이터_전공.md" {
			t.Errorf("got %q", dataPath)
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		_, _, err := loader.Resolve("없는_라벨", "")
		if !errors.Is(err, ErrUnknownLabel) {
			t.Errorf("got %v, want ErrUnknownLabel", err)
		}
	})

	t.Run("missing program", func(t *testing.T) {
		_, _, err := loader.Resolve("융합전공_교과과정", "")
		if !errors.Is(err, ErrMissingProgram) {
			t.Errorf("got %v, want ErrMissingProgram", err)
		}
	})
}

func TestRequiresProgram(t *testing.T) {
	root := writeCorpus(t, map[string]string{"config.json": testConfig})
	loader, err := NewLoader(root)
	if err != nil {
		t.Fatal(err)
	}

	if loader.RequiresProgram("다전공_제도") {
		t.Error("fixed-data label should not require a program")
	}
	if !loader.RequiresProgram("융합전공_교과과정") {
		t.Error("parameterized label should require a program")
	}
	if loader.RequiresProgram("없는_라벨") {
		t.Error("unknown label should not require a program")
	}
}

func TestAvailablePrograms(t *testing.T) {
	root := writeCorpus(t, map[string]string{"config.json": testConfig})
	loader, err := NewLoader(root)
	if err != nil {
		t.Fatal(err)
	}

	programs := loader.AvailablePrograms()
	if len(programs) != 2 || programs[0] != "빅데이터_전공" || programs[1] != "위기관리_전공" {
		t.Errorf("got %v", programs)
	}
}

func TestLoadFile(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"config.json":    testConfig,
		"data/policy.md": "제도 본문",
	})
	loader, err := NewLoader(root)
	if err != nil {
		t.Fatal(err)
	}

	content, err := loader.LoadFile("data/policy.md")
	if err != nil {
		t.Fatal(err)
	}
	if content != "제도 본문" {
		t.Errorf("got %q", content)
	}

	if _, err := loader.LoadFile("data/none.md"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateReportsMissingPieces(t *testing.T) {
	// Only one template exists, and it lacks its injection tag. Every
	// data file and the router prompt are absent.
	root := writeCorpus(t, map[string]string{
		"config.json":       testConfig,
		"prompt/policy.txt": "태그 없는 템플릿",
	})
	loader, err := NewLoader(root)
	if err != nil {
		t.Fatal(err)
	}

	warnings := loader.Validate(func(label string) string {
		if label == "다전공_제도" {
			return "policy_data"
		}
		return "curriculum"
	})

	joined := strings.Join(warnings, "\n")
	for _, want := range []string{
		"policy_data",       // tag missing from the readable template
		"curriculum.txt",    // curriculum template unreadable
		"빅데이터_전공",           // per-program data file missing
		"위기관리_전공",           // per-program data file missing
		"data file missing", // fixed data file missing
		"router prompt",     // router prompt missing
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("warnings missing %q:\n%s", want, joined)
		}
	}
}

func TestValidateCleanCorpus(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"config.json":                     testConfig,
		"prompt/policy.txt":               "<policy_data>{{참조 파일: x}}</policy_data>",
		"prompt/curriculum.txt":           "<curriculum>{{참조 파일: x}}</curriculum>",
		"prompt/router.txt":               "{{QUESTION}}",
		"data/policy.md":                  "본문",
		"data/curriculum/빅데이터_전공.md":  "본문",
		"data/curriculum/위기관리_전공.md": "본문",
	})
	loader, err := NewLoader(root)
	if err != nil {
		t.Fatal(err)
	}

	tagFor := func(label string) string {
		if label == "다전공_제도" {
			return "policy_data"
		}
		return "curriculum"
	}
	if warnings := loader.Validate(tagFor); len(warnings) != 0 {
		t.Errorf("expected clean corpus, got warnings: %v", warnings)
	}
}

func TestRouterPromptPathDefault(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"config.json": `{"routing": {"다전공_제도": {"prompt": "p.txt", "data": "d.md"}}}`,
	})
	loader, err := NewLoader(root)
	if err != nil {
		t.Fatal(err)
	}
	if got := loader.RouterPromptPath(); got != "prompt/prompt_multi_routing.txt" {
		t.Errorf("got %q", got)
	}
}

func TestRawPassthrough(t *testing.T) {
	root := writeCorpus(t, map[string]string{"config.json": testConfig})
	loader, err := NewLoader(root)
	if err != nil {
		t.Fatal(err)
	}

	raw := loader.Raw()
	if _, ok := raw["routing"]; !ok {
		t.Errorf("raw config missing routing key: %v", raw)
	}
}
