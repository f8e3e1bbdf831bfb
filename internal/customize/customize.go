// Package customize brands the landing page and README for an organization.
//
// Two approaches are offered. Rules rewrite an existing hand-authored page by
// matching fixed markup fragments; Render produces a fresh page from a template
// with named slots and is the preferred path for new workspaces.
package customize

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/pandeptwidyaop/landing-kit/internal/profile"
)

// ErrSourceNotFound is returned when a document to customize does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// RuleResult records what one rule did to a document.
type RuleResult struct {
	Name    string `json:"name"`
	Matches int    `json:"matches"`
	Skipped bool   `json:"skipped,omitempty"`
}

// Report summarizes one document pass.
type Report struct {
	Path    string       `json:"path,omitempty"`
	Changed bool         `json:"changed"`
	Rules   []RuleResult `json:"rules"`
}

// Matched returns the number of rules that replaced at least one region.
func (r Report) Matched() int {
	n := 0
	for _, rr := range r.Rules {
		if rr.Matches > 0 {
			n++
		}
	}
	return n
}

// Apply runs rules over doc in order. Each rule sees the output of the
// previous one.
func Apply(doc string, rules []Rule) (string, Report) {
	report := Report{Rules: make([]RuleResult, 0, len(rules))}
	out := doc

	for _, rule := range rules {
		result := RuleResult{Name: rule.Name}
		if rule.Applied != nil && rule.Applied(out) {
			result.Skipped = true
			report.Rules = append(report.Rules, result)
			continue
		}

		out = rule.Pattern.ReplaceAllStringFunc(out, func(match string) string {
			result.Matches++
			return rule.Replace(rule.Pattern.FindStringSubmatch(match))
		})
		report.Rules = append(report.Rules, result)
	}

	report.Changed = out != doc
	return out, report
}

// RunResult is the outcome of customizing both documents.
type RunResult struct {
	LandingPage   Report  `json:"landing_page"`
	Readme        *Report `json:"readme,omitempty"`
	ReadmeSkipped bool    `json:"readme_skipped,omitempty"`
}

// Run customizes the landing page and README for p. The landing page must
// exist; a missing README is skipped. Both documents are read and transformed
// before either is written, so a missing landing page leaves the README
// untouched as well. Writes then happen landing page first, README second,
// each atomic on its own: a failed README write leaves the landing page
// already rewritten.
func Run(landingPath, readmePath string, p profile.Profile) (*RunResult, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	landing, err := readSource(landingPath)
	if err != nil {
		return nil, err
	}

	readme, err := readSource(readmePath)
	readmeSkipped := errors.Is(err, ErrSourceNotFound)
	if err != nil && !readmeSkipped {
		return nil, err
	}

	landingOut, landingReport := Apply(landing, LandingPageRules(p))
	landingReport.Path = landingPath

	result := &RunResult{LandingPage: landingReport, ReadmeSkipped: readmeSkipped}

	var readmeOut string
	if !readmeSkipped {
		var readmeReport Report
		readmeOut, readmeReport = Apply(readme, ReadmeRules(p))
		readmeReport.Path = readmePath
		result.Readme = &readmeReport
	}

	if landingReport.Changed {
		if err := atomic.WriteFile(landingPath, strings.NewReader(landingOut)); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", landingPath, err)
		}
	}
	if result.Readme != nil && result.Readme.Changed {
		if err := atomic.WriteFile(readmePath, strings.NewReader(readmeOut)); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", readmePath, err)
		}
	}

	return result, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
