package box

import (
	"os"
	"time"

	"github.com/gzai/boxfs/backend/box/api"
)

// Options holds configuration options for the Box FileSystem.
type Options struct {
	// TokenProvider supplies bearer tokens for API calls (required unless a
	// pre-built client is supplied). Use auth.Manager.TokenProvider for the
	// full refresh lifecycle, or api.StaticTokenProvider for a fixed token.
	TokenProvider api.TokenProvider

	// RootFolderID anchors all path resolution. Defaults to the account root.
	RootFolderID string

	// APIBaseURL overrides the content API base URL. Mostly useful in tests.
	APIBaseURL string

	// UploadBaseURL overrides the upload API base URL. Mostly useful in tests.
	UploadBaseURL string

	// TempDir is the directory for temporary files used during read/write
	// operations. Defaults to os.TempDir() if not specified.
	TempDir string

	// LinkTTL is the lifetime requested for shared links (default: 60s).
	LinkTTL time.Duration
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		RootFolderID: api.SentinelID,
		TempDir:      os.TempDir(),
		LinkTTL:      60 * time.Second,
	}
}
