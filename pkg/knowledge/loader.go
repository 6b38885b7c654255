package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownLabel means the label has no entry in the routing table.
	ErrUnknownLabel = errors.New("unknown routing label")

	// ErrMissingProgram means the label needs a program identifier and
	// none was supplied.
	ErrMissingProgram = errors.New("program identifier required")
)

// RouteConfig is one routing-table entry: a prompt template plus either
// a fixed data file or a program-parameterized data path pattern.
type RouteConfig struct {
	Prompt            string   `json:"prompt"`
	Data              string   `json:"data,omitempty"`
	DataTemplate      string   `json:"data_template,omitempty"`
	AvailablePrograms []string `json:"available_programs,omitempty"`
}

type routingConfig struct {
	Routing      map[string]RouteConfig `json:"routing"`
	RouterPrompt string                 `json:"router_prompt"`
}

// Loader resolves category labels to prompt/data files and reads the
// markdown corpus. Pure lookup after construction; no mutable state.
type Loader struct {
	rootDir string
	cfg     routingConfig
	raw     map[string]interface{}
}

// NewLoader reads config.json under rootDir.
func NewLoader(rootDir string) (*Loader, error) {
	configPath := filepath.Join(rootDir, "config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read routing config: %w", err)
	}

	var cfg routingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse routing config: %w", err)
	}
	if len(cfg.Routing) == 0 {
		return nil, fmt.Errorf("routing config has no routing table")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse routing config: %w", err)
	}

	return &Loader{
		rootDir: rootDir,
		cfg:     cfg,
		raw:     raw,
	}, nil
}

// Resolve maps a label (and, for parameterized categories, a program
// identifier) to its prompt template path and data file path.
func (l *Loader) Resolve(label, programName string) (promptPath, dataPath string, err error) {
	route, ok := l.cfg.Routing[label]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownLabel, label)
	}

	if route.DataTemplate != "" {
		if programName == "" {
			return "", "", fmt.Errorf("%w for label %s", ErrMissingProgram, label)
		}
		dataPath = strings.ReplaceAll(route.DataTemplate, "{program_name}", programName)
	} else {
		dataPath = route.Data
	}

	return route.Prompt, dataPath, nil
}

// RequiresProgram reports whether the label's data source is
// parameterized by a program identifier.
func (l *Loader) RequiresProgram(label string) bool {
	route, ok := l.cfg.Routing[label]
	return ok && route.DataTemplate != ""
}

// AvailablePrograms returns the declared program identifiers of the
// parameterized category, in declaration order.
func (l *Loader) AvailablePrograms() []string {
	for _, route := range l.cfg.Routing {
		if route.DataTemplate != "" {
			return route.AvailablePrograms
		}
	}
	return nil
}

// RouterPromptPath returns the router template location.
func (l *Loader) RouterPromptPath() string {
	if l.cfg.RouterPrompt != "" {
		return l.cfg.RouterPrompt
	}
	return "prompt/prompt_multi_routing.txt"
}

// LoadFile reads a corpus file addressed relative to the root dir.
func (l *Loader) LoadFile(relPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(l.rootDir, relPath))
	if err != nil {
		return "", fmt.Errorf("load corpus file %s: %w", relPath, err)
	}
	return string(data), nil
}

// Raw returns the parsed configuration for API passthrough.
func (l *Loader) Raw() map[string]interface{} {
	return l.raw
}

// Validate checks every routing entry at startup: template and data
// files must exist, the parameterized pattern must resolve for every
// declared program, and each template should carry its injection tag.
// A missing tag is reported but tolerated — assembly silently skips
// injection for such templates, matching the served behavior.
func (l *Loader) Validate(tagFor func(label string) string) []string {
	var warnings []string

	for label, route := range l.cfg.Routing {
		templateText, err := l.LoadFile(route.Prompt)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("label %s: prompt template unreadable: %v", label, err))
		} else if tag := tagFor(label); !strings.Contains(templateText, "<"+tag+">") {
			warnings = append(warnings, fmt.Sprintf("label %s: template %s lacks <%s> injection tag, knowledge text will not be injected", label, route.Prompt, tag))
		}

		if route.DataTemplate != "" {
			for _, program := range route.AvailablePrograms {
				_, dataPath, err := l.Resolve(label, program)
				if err != nil {
					warnings = append(warnings, fmt.Sprintf("label %s: %v", label, err))
					continue
				}
				if _, err := os.Stat(filepath.Join(l.rootDir, dataPath)); err != nil {
					warnings = append(warnings, fmt.Sprintf("label %s: data file for program %s missing: %v", label, program, err))
				}
			}
			continue
		}

		if _, err := os.Stat(filepath.Join(l.rootDir, route.Data)); err != nil {
			warnings = append(warnings, fmt.Sprintf("label %s: data file missing: %v", label, err))
		}
	}

	if _, err := os.Stat(filepath.Join(l.rootDir, l.RouterPromptPath())); err != nil {
		warnings = append(warnings, fmt.Sprintf("router prompt missing: %v", err))
	}

	return warnings
}
