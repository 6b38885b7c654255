package program

import "strings"

// CatalogEntry is one program parsed from the catalog knowledge file.
type CatalogEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

const (
	TypeFusion = "융합전공"
	TypeJoint  = "연계전공"
)

// ParseCatalog extracts program entries from the catalog markdown.
// Programs are "###" headings carrying a 융합전공 or 연계전공 type
// marker; everything else is prose and ignored.
func ParseCatalog(md string) []CatalogEntry {
	var entries []CatalogEntry

	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "###") {
			continue
		}

		name := strings.TrimSpace(strings.TrimPrefix(line, "###"))
		switch {
		case strings.Contains(line, TypeFusion):
			entries = append(entries, CatalogEntry{Name: name, Type: TypeFusion})
		case strings.Contains(line, TypeJoint):
			entries = append(entries, CatalogEntry{Name: name, Type: TypeJoint})
		}
	}

	return entries
}
