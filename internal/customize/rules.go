package customize

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/pandeptwidyaop/landing-kit/internal/profile"
)

// Rule is one fixed pattern plus a profile-derived replacement.
//
// Replace receives the full match followed by its capture groups and returns
// the literal replacement text. Applied, when set, reports that the rule's
// output is already present in the document; the rule is then skipped so a
// second pass cannot duplicate inserted content.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace func(groups []string) string
	Applied func(doc string) bool
}

const (
	footerIndent = "                    "
	heroIndent   = "            "
)

var (
	titlePattern       = regexp.MustCompile(`<title>Access Shield - Secure Access\. Simplified\.</title>`)
	heroPattern        = regexp.MustCompile(`<h1 class="display-4 fw-bold mb-4">\s*<i class="fas fa-shield-alt me-3"></i>Access Shield\s*</h1>`)
	taglinePattern     = regexp.MustCompile(`<p class="lead mb-4">Secure Access\. Simplified\.</p>`)
	descriptionPattern = regexp.MustCompile(`<p class="mb-5">Access Shield continuously monitors accounts, teams, and repos for excessive privileges, risky workflows, and misconfigurations\.<br>Built on Zero Trust principles with AI explainability — so you see not just alerts, but the "why" behind them\.</p>`)
	footerPattern      = regexp.MustCompile(`<h5><i class="fas fa-shield-alt me-2"></i>Access Shield</h5>\s*<p class="text-muted">AI-Powered GitHub Access Governance</p>`)
	copyrightPattern   = regexp.MustCompile(`<p class="text-muted">&copy; (\d{4}) Access Shield\. All rights reserved\.</p>`)

	readmeTitlePattern   = regexp.MustCompile(`# 🎨 Access Shield Landing Page Package`)
	readmeSummaryPattern = regexp.MustCompile(`(A professional, responsive landing page system for Access Shield AI - the AI-powered GitHub access governance platform\.)`)
)

const (
	productSentence = "Access Shield continuously monitors accounts, teams, and repos for excessive privileges, risky workflows, and misconfigurations."
	orgSectionTitle = "## 🏢 Organization Information"
)

// LandingPageRules returns the landing page rules in application order:
// title, hero heading, tagline, description, footer, copyright.
func LandingPageRules(p profile.Profile) []Rule {
	esc := template.HTMLEscapeString
	display := esc(p.DisplayName)
	emailLine := `<p class="text-muted">Email: ` + esc(p.Email) + `</p>`

	return []Rule{
		{
			Name:    "title",
			Pattern: titlePattern,
			Replace: literal(`<title>` + display + ` - Access Shield Landing Page</title>`),
		},
		{
			Name:    "hero",
			Pattern: heroPattern,
			Replace: literal(`<h1 class="display-4 fw-bold mb-4">` + "\n" +
				heroIndent + `    <i class="fas fa-shield-alt me-3"></i>` + esc(p.Headline) + "\n" +
				heroIndent + `</h1>`),
		},
		{
			Name:    "tagline",
			Pattern: taglinePattern,
			Replace: literal(`<p class="lead mb-4">` + esc(p.Tagline) + `</p>`),
		},
		{
			Name:    "description",
			Pattern: descriptionPattern,
			Replace: literal(`<p class="mb-5">` + esc(p.Description) + `<br>` + productSentence + `</p>`),
		},
		{
			Name:    "footer",
			Pattern: footerPattern,
			Replace: literal(`<h5><i class="fas fa-shield-alt me-2"></i>` + display + `</h5>` + "\n" +
				footerIndent + `<p class="text-muted">` + esc(p.Description) + `</p>`),
		},
		{
			Name:    "copyright",
			Pattern: copyrightPattern,
			Replace: func(groups []string) string {
				return "\n" +
					footerIndent + emailLine + "\n" +
					footerIndent + `<p class="text-muted">Website: ` + esc(p.Website) + `</p>` + "\n" +
					footerIndent + `<p class="text-muted">&copy; ` + groups[1] + ` ` + display + `. All rights reserved.</p>`
			},
			Applied: func(doc string) bool {
				return strings.Contains(doc, emailLine)
			},
		},
	}
}

// ReadmeRules returns the README rules: heading, then the organization
// section inserted after the product summary sentence.
func ReadmeRules(p profile.Profile) []Rule {
	section := "\n\n" + orgSectionTitle + "\n\n" +
		"- **Organization**: " + p.Name + "\n" +
		"- **Display Name**: " + p.DisplayName + "\n" +
		"- **Description**: " + p.Description + "\n" +
		"- **Email**: " + p.Email + "\n" +
		"- **Website**: " + p.Website + "\n" +
		"- **GitHub Pages URL**: " + p.PagesURL()

	return []Rule{
		{
			Name:    "readme-title",
			Pattern: readmeTitlePattern,
			Replace: literal(`# 🎨 ` + p.DisplayName + ` - Access Shield Landing Page`),
		},
		{
			Name:    "readme-organization",
			Pattern: readmeSummaryPattern,
			Replace: func(groups []string) string {
				return groups[1] + section
			},
			Applied: func(doc string) bool {
				return strings.Contains(doc, orgSectionTitle)
			},
		},
	}
}

func literal(s string) func([]string) string {
	return func([]string) string { return s }
}
