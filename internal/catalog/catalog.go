// Package catalog holds the versioned question battery the assessment
// engine evaluates. The catalog is loaded once at startup and never
// mutated afterwards.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/fundlens/readiness-cli/internal/model"
)

// Catalog is an immutable, versioned set of scoring questions.
type Catalog struct {
	version   string
	questions []model.Question
	byID      map[string]model.Question
}

// New builds a Catalog from a version tag and question list and
// validates it. Catalog conventions (boolean polarity, issue text
// coverage) are checked here, at load time, rather than silently
// mis-scoring at evaluation time.
func New(version string, questions []model.Question) (*Catalog, error) {
	c := &Catalog{
		version:   version,
		questions: questions,
		byID:      make(map[string]model.Question, len(questions)),
	}
	for _, q := range questions {
		c.byID[q.ID] = q
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Version returns the catalog version tag.
func (c *Catalog) Version() string { return c.version }

// Questions returns the full question list in catalog order.
func (c *Catalog) Questions() []model.Question { return c.questions }

// ByID looks up a question by its stable id.
func (c *Catalog) ByID(id string) (model.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int { return len(c.questions) }

// Validate checks the catalog for internal consistency.
func (c *Catalog) Validate() error {
	var errs []string

	if c.version == "" {
		errs = append(errs, "catalog version must be set")
	}
	if len(c.questions) == 0 {
		errs = append(errs, "catalog must contain at least one question")
	}

	seen := make(map[string]bool, len(c.questions))
	for _, q := range c.questions {
		if q.ID == "" {
			errs = append(errs, "question with empty id")
			continue
		}
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question id %q", q.ID))
		}
		seen[q.ID] = true

		if !q.Category.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown category %q", q.ID, q.Category))
		}
		if !q.Type.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown type %q", q.ID, q.Type))
		}
		if q.Weight <= 0 {
			errs = append(errs, fmt.Sprintf("%s: weight must be > 0", q.ID))
		}

		switch q.Type {
		case model.TypeChoice:
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("%s: choice question has no options", q.ID))
			}
			for _, opt := range q.Options {
				if opt.Label == "" {
					errs = append(errs, fmt.Sprintf("%s: option with empty label", q.ID))
				}
				if opt.Score < 0 || opt.Score > 100 {
					errs = append(errs, fmt.Sprintf("%s: option %q score %.1f out of range 0-100", q.ID, opt.Label, opt.Score))
				}
				if !opt.Tier.Valid() {
					errs = append(errs, fmt.Sprintf("%s: option %q has unknown tier %q", q.ID, opt.Label, opt.Tier))
				}
			}
		default:
			if len(q.Options) > 0 {
				errs = append(errs, fmt.Sprintf("%s: options only allowed on choice questions", q.ID))
			}
		}

		if q.CriticalThreshold != nil {
			if q.Type != model.TypePercentage && q.Type != model.TypeNumber {
				errs = append(errs, fmt.Sprintf("%s: critical_threshold only allowed on percentage/number questions", q.ID))
			} else if *q.CriticalThreshold <= 0 {
				errs = append(errs, fmt.Sprintf("%s: critical_threshold must be > 0", q.ID))
			}
		}

		// Business-killers must have issue text so the detector never
		// falls back to the generic message for catalog-owned questions.
		if q.BusinessKiller {
			if _, ok := issueTexts[q.ID]; !ok {
				errs = append(errs, fmt.Sprintf("%s: business-killer has no issue text entry", q.ID))
			}
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("catalog: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// file is the on-disk YAML shape of a catalog artifact.
type file struct {
	Version   string           `yaml:"version"`
	Questions []model.Question `yaml:"questions"`
}

// LoadFile reads a versioned catalog artifact from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "catalog: parse %s", path)
	}

	return New(f.Version, f.Questions)
}

// MarshalArtifact serializes the catalog back into the artifact shape,
// for the export command.
func (c *Catalog) MarshalArtifact() ([]byte, error) {
	data, err := yaml.Marshal(file{Version: c.version, Questions: c.questions})
	if err != nil {
		return nil, eris.Wrap(err, "catalog: marshal")
	}
	return data, nil
}
