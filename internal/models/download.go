package models

// DownloadEvent is one served download.
type DownloadEvent struct {
	Artifact  string
	IPAddress string
	UserAgent string
}

// DownloadStats summarizes served downloads.
type DownloadStats struct {
	Total      int            `json:"total"`
	Last24h    int            `json:"last_24h"`
	ByArtifact map[string]int `json:"by_artifact"`
}
