package service

import (
	"os"
	"path/filepath"
	"testing"

	"dawangi-chatbot-be/pkg/knowledge"
	"dawangi-chatbot-be/pkg/program"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgramService(t *testing.T) IProgramService {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"config.json": `{
  "routing": {
    "전공_현황": {
      "prompt": "prompt/catalog.txt",
      "data": "data/catalog.md"
    },
    "융합전공_교과과정": {
      "prompt": "prompt/curriculum.txt",
      "data_template": "data/curriculum/{program_name}.md",
      "available_programs": ["빅데이터_전공", "이차전지_융합전공"]
    }
  }
}`,
		"data/catalog.md": "### 빅데이터 융합전공\n- 주관: 소프트웨어학부\n### 문화콘텐츠 연계전공\n- 주관: 국어국문학과\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	loader, err := knowledge.NewLoader(root)
	require.NoError(t, err)
	return NewProgramService(loader, "data/catalog.md")
}

func TestAvailablePrograms(t *testing.T) {
	svc := newTestProgramService(t)

	res := svc.AvailablePrograms()
	require.Len(t, res.Programs, 2)

	assert.Equal(t, "빅데이터_전공", res.Programs[0].Id)
	assert.Equal(t, "빅데이터", res.Programs[0].Name)
	assert.Equal(t, program.TypeFusion, res.Programs[0].Type)
	assert.Equal(t, "이차전지융합", res.Programs[1].Name)
}

func TestCatalog(t *testing.T) {
	svc := newTestProgramService(t)

	res, err := svc.Catalog()
	require.NoError(t, err)
	require.Len(t, res.Programs, 2)
	assert.Equal(t, program.TypeFusion, res.Programs[0].Type)
	assert.Equal(t, program.TypeJoint, res.Programs[1].Type)
}

func TestRawConfig(t *testing.T) {
	svc := newTestProgramService(t)

	raw := svc.RawConfig()
	assert.Contains(t, raw, "routing")
}
