package program

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{"direct keyword", "빅데이터 전공 교과과정 알려줘", "빅데이터_전공"},
		{"alias keyword", "스마트융합 과목이 궁금해", "지식재산_스마트융합"},
		{"short alias", "벤처 쪽 커리큘럼은?", "벤처비즈니스_전공"},
		{"security alias", "보안 과목 뭐 들어야 해?", "보안컨설팅_전공"},
		{"public data long form", "공공데이터사이언스 교과과정", "공공데이터사이언스_전공"},
		{"no keyword", "졸업하려면 몇 학점 필요해?", ""},
		{"empty question", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.question); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestExtractTableOrderWins(t *testing.T) {
	// 빅데이터 precedes 보안 in the table, so it wins even though 보안
	// appears first in the text.
	got := Extract("보안 말고 빅데이터 과목이 궁금해")
	if got != "빅데이터_전공" {
		t.Errorf("got %q, want 빅데이터_전공 (table order tie-break)", got)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("이차전지_융합전공"); got != "이차전지융합" {
		t.Errorf("got %q, want 이차전지융합", got)
	}
	if got := DisplayName("미등록_전공"); got != "미등록_전공" {
		t.Errorf("got %q, want identifier fallback", got)
	}
}
