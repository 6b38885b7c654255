package tone

import (
	"math/rand"
	"strings"
	"testing"
)

func seededAdapter() *Adapter {
	return NewAdapter(rand.New(rand.NewSource(1)))
}

func TestApplyAppendsSuffix(t *testing.T) {
	a := seededAdapter()

	got := a.Apply("<answer>36학점을 이수하면 충분합니다.</answer>")

	if strings.HasSuffix(got, ".</answer>") {
		t.Fatalf("terminator was not rewritten: %q", got)
	}
	if !strings.HasSuffix(got, "!</answer>") {
		t.Fatalf("expected suffix before closing tag: %q", got)
	}
	found := false
	for _, s := range suffixes {
		if strings.Contains(got, " "+s+"!") {
			found = true
		}
	}
	if !found {
		t.Errorf("no mascot suffix in output: %q", got)
	}
}

func TestApplyWithoutMarkerPassesThrough(t *testing.T) {
	a := seededAdapter()
	in := "마커가 없는 일반 텍스트입니다."
	if got := a.Apply(in); got != in {
		t.Errorf("got %q, want unchanged input", got)
	}
}

func TestApplyWithoutTerminatorPassesThrough(t *testing.T) {
	a := seededAdapter()
	in := "<answer>끝이 문장부호가 아님</answer>"
	if got := a.Apply(in); got != in {
		t.Errorf("got %q, want unchanged input", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	a := seededAdapter()

	once := a.Apply("<answer>신청은 2월에 하면 됩니다.</answer>")
	twice := a.Apply(once)

	if once != twice {
		t.Errorf("second application changed the text:\n%q\n%q", once, twice)
	}
}

func TestApplySuffixWindowBoundary(t *testing.T) {
	a := seededAdapter()

	// A suffix token outside the trailing 10-rune window does not block
	// the transformation.
	in := "<answer>다왕이가 말하길, 신청 기간은 이월부터라고 전해들었습니다."
	got := a.Apply(in)
	if got == in {
		t.Errorf("distant suffix token should not suppress the rewrite: %q", got)
	}

	// A token inside the window does.
	in2 := "<answer>알겠다왕!"
	if got2 := a.Apply(in2); got2 != in2 {
		t.Errorf("got %q, want unchanged input", got2)
	}
}
