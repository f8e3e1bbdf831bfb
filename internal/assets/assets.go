// Package assets provides the stock landing page and README shipped with the tool.
package assets

import (
	"embed"
)

// EmbeddedFiles contains the unbranded landing page and README that
// `landingkit init` seeds into a workspace.
//
//go:embed stock
var EmbeddedFiles embed.FS

const (
	StockLandingPage = "stock/landing_page.html"
	StockReadme      = "stock/README.md"
)

// LandingPage returns the stock landing page markup.
func LandingPage() string {
	return mustRead(StockLandingPage)
}

// Readme returns the stock README.
func Readme() string {
	return mustRead(StockReadme)
}

func mustRead(name string) string {
	data, err := EmbeddedFiles.ReadFile(name)
	if err != nil {
		panic("missing embedded asset " + name + ": " + err.Error())
	}
	return string(data)
}
