package customize

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pandeptwidyaop/landing-kit/internal/assets"
	"github.com/pandeptwidyaop/landing-kit/internal/profile"
)

const indent20 = "                    "

func codeXApp() profile.Profile {
	return profile.Profile{
		Name:        "code-x-app",
		DisplayName: "Code X App",
		Description: "Professional software development and AI solutions",
		Email:       "contact@code-x-app.com",
		Website:     "https://code-x-app.com",
		RepoName:    "access-shield-landing",
		Headline:    "Code X App",
		Tagline:     "Professional Software Solutions",
	}.Normalize()
}

// withoutGuards strips the Applied checks so tests can observe what a plain
// second pass of the rule set does.
func withoutGuards(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Applied = nil
		out[i] = r
	}
	return out
}

func TestApply_StockLandingPage(t *testing.T) {
	stock := assets.LandingPage()
	p := codeXApp()

	replacements := []struct{ old, new string }{
		{
			`<title>Access Shield - Secure Access. Simplified.</title>`,
			`<title>Code X App - Access Shield Landing Page</title>`,
		},
		{
			"<h1 class=\"display-4 fw-bold mb-4\">\n                <i class=\"fas fa-shield-alt me-3\"></i>Access Shield\n            </h1>",
			"<h1 class=\"display-4 fw-bold mb-4\">\n                <i class=\"fas fa-shield-alt me-3\"></i>Code X App\n            </h1>",
		},
		{
			`<p class="lead mb-4">Secure Access. Simplified.</p>`,
			`<p class="lead mb-4">Professional Software Solutions</p>`,
		},
		{
			`<p class="mb-5">Access Shield continuously monitors accounts, teams, and repos for excessive privileges, risky workflows, and misconfigurations.<br>Built on Zero Trust principles with AI explainability — so you see not just alerts, but the "why" behind them.</p>`,
			`<p class="mb-5">Professional software development and AI solutions<br>Access Shield continuously monitors accounts, teams, and repos for excessive privileges, risky workflows, and misconfigurations.</p>`,
		},
		{
			"<h5><i class=\"fas fa-shield-alt me-2\"></i>Access Shield</h5>\n" + indent20 + "<p class=\"text-muted\">AI-Powered GitHub Access Governance</p>",
			"<h5><i class=\"fas fa-shield-alt me-2\"></i>Code X App</h5>\n" + indent20 + "<p class=\"text-muted\">Professional software development and AI solutions</p>",
		},
		{
			`<p class="text-muted">&copy; 2024 Access Shield. All rights reserved.</p>`,
			"\n" + indent20 + `<p class="text-muted">Email: contact@code-x-app.com</p>` +
				"\n" + indent20 + `<p class="text-muted">Website: https://code-x-app.com</p>` +
				"\n" + indent20 + `<p class="text-muted">&copy; 2024 Code X App. All rights reserved.</p>`,
		},
	}

	expected := stock
	for _, r := range replacements {
		if strings.Count(expected, r.old) != 1 {
			t.Fatalf("stock page should contain marker exactly once: %q", r.old)
		}
		expected = strings.Replace(expected, r.old, r.new, 1)
	}

	got, report := Apply(stock, LandingPageRules(p))

	if got != expected {
		t.Errorf("customized page differs from expected output\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
	if !report.Changed {
		t.Error("expected report to mark the document as changed")
	}

	wantOrder := []string{"title", "hero", "tagline", "description", "footer", "copyright"}
	if len(report.Rules) != len(wantOrder) {
		t.Fatalf("expected %d rule results, got %d", len(wantOrder), len(report.Rules))
	}
	for i, name := range wantOrder {
		rr := report.Rules[i]
		if rr.Name != name {
			t.Errorf("rule %d: expected %s, got %s", i, name, rr.Name)
		}
		if rr.Matches != 1 {
			t.Errorf("rule %s: expected exactly one match, got %d", rr.Name, rr.Matches)
		}
	}
	if report.Matched() != len(wantOrder) {
		t.Errorf("expected all rules matched, got %d", report.Matched())
	}
}

func TestApply_NoMarkersLeavesDocument(t *testing.T) {
	doc := "<html><body><h1>Already branded</h1></body></html>"

	got, report := Apply(doc, LandingPageRules(codeXApp()))

	if got != doc {
		t.Errorf("expected document unchanged, got %q", got)
	}
	if report.Changed {
		t.Error("expected Changed=false")
	}
	for _, rr := range report.Rules {
		if rr.Matches != 0 {
			t.Errorf("rule %s should not match", rr.Name)
		}
	}
}

func TestApply_SecondPassIsStable(t *testing.T) {
	rules := LandingPageRules(codeXApp())

	first, _ := Apply(assets.LandingPage(), rules)
	second, report := Apply(first, rules)

	if second != first {
		t.Error("second pass changed an already customized page")
	}
	if report.Changed {
		t.Error("expected Changed=false on second pass")
	}
}

// A plain second pass is stable for ordinary profiles because no replacement
// reproduces its own marker. When the display name equals the stock product
// name the copyright marker survives the first pass, and an unguarded rule set
// inserts the contact block again.
func TestApply_UnguardedSecondPass(t *testing.T) {
	t.Run("ordinary profile", func(t *testing.T) {
		rules := withoutGuards(LandingPageRules(codeXApp()))
		first, _ := Apply(assets.LandingPage(), rules)
		second, _ := Apply(first, rules)
		if second != first {
			t.Error("expected unguarded second pass to be stable for an ordinary profile")
		}
	})

	t.Run("display name equals stock name", func(t *testing.T) {
		p := codeXApp()
		p.DisplayName = "Access Shield"

		unguarded := withoutGuards(LandingPageRules(p))
		first, _ := Apply(assets.LandingPage(), unguarded)
		second, _ := Apply(first, unguarded)
		if got := strings.Count(second, "Email: contact@code-x-app.com"); got != 2 {
			t.Errorf("expected unguarded rules to duplicate the contact block, found %d copies", got)
		}

		guarded := LandingPageRules(p)
		first, _ = Apply(assets.LandingPage(), guarded)
		second, report := Apply(first, guarded)
		if got := strings.Count(second, "Email: contact@code-x-app.com"); got != 1 {
			t.Errorf("expected guarded rules to keep one contact block, found %d", got)
		}
		if !report.Rules[5].Skipped {
			t.Error("expected copyright rule to be skipped on second pass")
		}
	})
}

func TestApply_ReplacementIsLiteralAndEscaped(t *testing.T) {
	p := codeXApp()
	p.DisplayName = `Dollar $1 & <Co>`
	p.Tagline = `${0}`

	got, _ := Apply(assets.LandingPage(), LandingPageRules(p))

	if !strings.Contains(got, `<title>Dollar $1 &amp; &lt;Co&gt; - Access Shield Landing Page</title>`) {
		t.Error("expected display name to be inserted literally and HTML-escaped")
	}
	if !strings.Contains(got, `<p class="lead mb-4">${0}</p>`) {
		t.Error("expected tagline to be inserted without group expansion")
	}
}

func TestApply_Readme(t *testing.T) {
	p := codeXApp()
	rules := ReadmeRules(p)

	first, report := Apply(assets.Readme(), rules)

	if !strings.HasPrefix(first, "# 🎨 Code X App - Access Shield Landing Page\n") {
		t.Errorf("expected README heading to be replaced, got %q", strings.SplitN(first, "\n", 2)[0])
	}
	if strings.Count(first, orgSectionTitle) != 1 {
		t.Error("expected one organization section")
	}
	if !strings.Contains(first, "- **GitHub Pages URL**: https://code-x-app.github.io/access-shield-landing") {
		t.Error("expected pages URL in organization section")
	}
	if report.Matched() != 2 {
		t.Errorf("expected both README rules to match, got %d", report.Matched())
	}

	second, _ := Apply(first, rules)
	if second != first {
		t.Error("expected guarded README rules to be stable on second pass")
	}

	unguarded, _ := Apply(first, withoutGuards(rules))
	if got := strings.Count(unguarded, orgSectionTitle); got != 2 {
		t.Errorf("expected unguarded insertion rule to duplicate the section, found %d", got)
	}
}

func TestRun_MissingLandingPageWritesNothing(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	original := assets.Readme()
	if err := os.WriteFile(readme, []byte(original), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}

	_, err := Run(filepath.Join(dir, "landing_page.html"), readme, codeXApp())
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}

	data, _ := os.ReadFile(readme)
	if string(data) != original {
		t.Error("README must not be modified when the landing page is missing")
	}
}

func TestRun_MissingReadmeIsSkipped(t *testing.T) {
	dir := t.TempDir()
	landing := filepath.Join(dir, "landing_page.html")
	if err := os.WriteFile(landing, []byte(assets.LandingPage()), 0644); err != nil {
		t.Fatalf("failed to write page: %v", err)
	}

	result, err := Run(landing, filepath.Join(dir, "README.md"), codeXApp())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.ReadmeSkipped || result.Readme != nil {
		t.Errorf("expected README to be skipped, got %+v", result)
	}
	if !result.LandingPage.Changed || result.LandingPage.Path != landing {
		t.Errorf("unexpected landing page report %+v", result.LandingPage)
	}

	data, err := os.ReadFile(landing)
	if err != nil {
		t.Fatalf("failed to read page: %v", err)
	}
	if !strings.Contains(string(data), "<title>Code X App - Access Shield Landing Page</title>") {
		t.Error("expected landing page to be rewritten in place")
	}
}

func TestRun_InvalidProfile(t *testing.T) {
	dir := t.TempDir()
	landing := filepath.Join(dir, "landing_page.html")
	if err := os.WriteFile(landing, []byte(assets.LandingPage()), 0644); err != nil {
		t.Fatalf("failed to write page: %v", err)
	}

	_, err := Run(landing, filepath.Join(dir, "README.md"), profile.Profile{})
	if !errors.Is(err, profile.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	data, _ := os.ReadFile(landing)
	if string(data) != assets.LandingPage() {
		t.Error("landing page must not change for an invalid profile")
	}
}
