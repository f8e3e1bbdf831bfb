package packager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// ManifestFile is the sidecar written into every staging directory.
const ManifestFile = "package_info.json"

// Manifest describes one deployment bundle.
type Manifest struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Files        []string `json:"files"`
	Requirements []string `json:"requirements"`
	Deployment   string   `json:"deployment"`
	Created      string   `json:"created"`
	BuildID      string   `json:"build_id"`
}

func writeManifest(dir string, m Manifest) error {
	if m.Files == nil {
		m.Files = []string{}
	}
	if m.Requirements == nil {
		m.Requirements = []string{}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	path := filepath.Join(dir, ManifestFile)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
