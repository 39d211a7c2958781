package box

import (
	"context"
	"io"
	"time"

	"github.com/gzai/boxfs/backend/box/api"
)

// Client defines the subset of the Box API client used by this backend.
// This interface limits the API surface and enables efficient mocking in tests.
// The api.Client automatically implements this interface.
type Client interface {
	// RootFolderID returns the configured root folder ID.
	RootFolderID() string

	// CreateFolder creates a folder under the given parent.
	CreateFolder(ctx context.Context, name, parentID string) (*api.Entry, error)

	// DeleteFolder deletes a folder by ID.
	DeleteFolder(ctx context.Context, folderID string) error

	// FolderItems lists the immediate children of a folder.
	FolderItems(ctx context.Context, folderID string) (*api.ItemCollection, error)

	// FolderIDByName resolves a folder name to its ID by scoped search.
	FolderIDByName(ctx context.Context, name, ancestorID string) (string, error)

	// FolderExistsByName reports whether a folder with exactly the given name exists.
	FolderExistsByName(ctx context.Context, name, ancestorID string) (bool, error)

	// FileByName returns the entry of the file with exactly the given name, or nil.
	FileByName(ctx context.Context, name, ancestorID string) (*api.Entry, error)

	// FileIDByName resolves a file name to its ID by scoped search.
	FileIDByName(ctx context.Context, name, ancestorID string) (string, error)

	// FileExistsByName reports whether a file with exactly the given name exists.
	FileExistsByName(ctx context.Context, name, ancestorID string) (bool, error)

	// CopyFile copies a file into the given parent, optionally renaming the copy.
	CopyFile(ctx context.Context, fileID, parentID, newName string) (*api.Entry, error)

	// MoveFile moves a file into the given parent, optionally renaming it.
	MoveFile(ctx context.Context, fileID, parentID, newName string) (*api.Entry, error)

	// DeleteFile deletes a file by ID.
	DeleteFile(ctx context.Context, fileID string) error

	// Download streams a file's content.
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)

	// Upload stores a local file under the given parent, routing by size.
	Upload(ctx context.Context, localPath, parentID, fileName string) (*api.Entry, error)

	// TemporaryLink creates a short-lived shared link for a file.
	TemporaryLink(ctx context.Context, fileID string, ttl time.Duration) (*api.Entry, error)
}

var _ Client = (*api.Client)(nil)
