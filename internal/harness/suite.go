package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Outcome is the result of evaluating a subject against a pattern.
type Outcome string

// Outcome values. Assertions may only expect OutcomeMatch or OutcomeNoMatch.
const (
	OutcomeMatch   Outcome = "match"
	OutcomeNoMatch Outcome = "no_match"
	OutcomeError   Outcome = "error"
)

// Format identifies a suite file encoding.
type Format string

// Supported suite encodings.
const (
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// Suite is an ordered collection of koans.
type Suite struct {
	// Name uniquely identifies the suite (e.g. "repeating-characters").
	Name string `yaml:"name" json:"name"`

	// Description is the human-readable title printed above the report.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Koans run in declaration order.
	Koans []Koan `yaml:"koans" json:"koans"`
}

// Koan is one lesson: a pattern to fix and the assertions it must satisfy.
type Koan struct {
	// ID is a short slug used for filtering and in the run ledger.
	ID string `yaml:"id" json:"id"`

	// Name is the sentence shown in the report.
	Name string `yaml:"name" json:"name"`

	// Lesson is optional prose for the learner.
	Lesson string `yaml:"lesson,omitempty" json:"lesson,omitempty"`

	// Pattern is the pattern under edit. Assertions without their own
	// pattern are evaluated against it.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Assertions are evaluated in order.
	Assertions []Assertion `yaml:"assertions" json:"assertions"`

	// SourceMustMatch lists patterns the text of Pattern itself must match.
	SourceMustMatch []string `yaml:"source_must_match,omitempty" json:"source_must_match,omitempty"`
}

// Assertion states whether Subject is expected to match Pattern.
type Assertion struct {
	Subject string  `yaml:"subject" json:"subject"`
	Pattern string  `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Expect  Outcome `yaml:"expect" json:"expect"`

	// Source marks a structural check: Subject is the koan pattern's text.
	Source bool `yaml:"-" json:"source,omitempty"`
}

// Checks expands the koan into the assertions the harness evaluates:
// its own assertions with the koan pattern filled in, followed by one
// assertion per SourceMustMatch entry.
func (k *Koan) Checks() []Assertion {
	checks := make([]Assertion, 0, len(k.Assertions)+len(k.SourceMustMatch))
	for _, a := range k.Assertions {
		if a.Pattern == "" {
			a.Pattern = k.Pattern
		}
		checks = append(checks, a)
	}
	for _, meta := range k.SourceMustMatch {
		checks = append(checks, Assertion{
			Subject: k.Pattern,
			Pattern: meta,
			Expect:  OutcomeMatch,
			Source:  true,
		})
	}
	return checks
}

// FormatForPath returns the suite encoding implied by a file extension.
func FormatForPath(path string) (Format, error) {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", fmt.Errorf("unsupported suite file extension %q (want .yaml, .yml or .cue)", ext)
	}
}

// LoadSuite reads, parses and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	suite, err := parseSuite(data, format, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}

// ParseSuite parses and validates suite data in the given format.
func ParseSuite(data []byte, format Format) (*Suite, error) {
	return parseSuite(data, format, "suite."+string(format))
}

func parseSuite(data []byte, format Format, filename string) (*Suite, error) {
	var suite *Suite
	var err error

	switch format {
	case FormatYAML:
		suite, err = decodeYAML(data)
	case FormatCUE:
		suite, err = decodeCUE(data, filename)
	default:
		return nil, fmt.Errorf("unsupported suite format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := validateSuite(suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return suite, nil
}

func decodeYAML(data []byte) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &suite, nil
}

// validateSuite checks structure only. Pattern syntax is left to the engine
// so that a broken pattern fails its own check instead of the whole suite.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(s.Koans) == 0 {
		return fmt.Errorf("koans list is required and must be non-empty")
	}

	seen := make(map[string]int, len(s.Koans))
	for i, k := range s.Koans {
		if k.ID == "" {
			return fmt.Errorf("koans[%d]: id is required", i)
		}
		if prev, dup := seen[k.ID]; dup {
			return fmt.Errorf("koans[%d]: duplicate id %q (first used by koans[%d])", i, k.ID, prev)
		}
		seen[k.ID] = i

		if k.Name == "" {
			return fmt.Errorf("koans[%d]: name is required", i)
		}
		if len(k.Assertions) == 0 {
			return fmt.Errorf("koans[%d]: assertions list is required and must be non-empty", i)
		}
		if len(k.SourceMustMatch) > 0 && k.Pattern == "" {
			return fmt.Errorf("koans[%d]: source_must_match requires a koan pattern", i)
		}

		for j, a := range k.Assertions {
			if a.Expect != OutcomeMatch && a.Expect != OutcomeNoMatch {
				return fmt.Errorf("koans[%d].assertions[%d]: expect must be %q or %q, got %q",
					i, j, OutcomeMatch, OutcomeNoMatch, a.Expect)
			}
			if a.Pattern == "" && k.Pattern == "" {
				return fmt.Errorf("koans[%d].assertions[%d]: pattern is required when the koan has none", i, j)
			}
		}

		for j, meta := range k.SourceMustMatch {
			if meta == "" {
				return fmt.Errorf("koans[%d].source_must_match[%d]: pattern must be non-empty", i, j)
			}
		}
	}

	return nil
}
