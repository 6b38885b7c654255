package routing

// Category labels a question can be routed to. The label strings double
// as keys into the routing table in config.json, so they stay in the
// corpus language.
const (
	LabelPolicy       = "다전공_제도"
	LabelCatalog      = "전공_현황"
	LabelRequirements = "융합전공_졸업요건"
	LabelCurriculum   = "융합전공_교과과정"

	// LabelUnmatched is the fail-closed sentinel for questions outside
	// the supported categories.
	LabelUnmatched = "Unmatched"
)

var validLabels = []string{
	LabelPolicy,
	LabelCatalog,
	LabelRequirements,
	LabelCurriculum,
	LabelUnmatched,
}

// RoutableLabels returns the categories that resolve to a template and
// a data source (everything except the sentinel).
func RoutableLabels() []string {
	return []string{LabelPolicy, LabelCatalog, LabelRequirements, LabelCurriculum}
}

func IsValid(label string) bool {
	for _, l := range validLabels {
		if l == label {
			return true
		}
	}
	return false
}
