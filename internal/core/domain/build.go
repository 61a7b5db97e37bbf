package domain

import "time"

type BuildStatus string

const (
	BuildSuccess BuildStatus = "success"
	BuildFailed  BuildStatus = "failed"
)

// BuildResult describes one finished image build. It is returned to the
// caller and never stored.
type BuildResult struct {
	ID         string      `json:"id"`
	Image      string      `json:"image"`
	RepoURL    string      `json:"repo_url"`
	Status     BuildStatus `json:"status"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Output     string      `json:"output"`
}
