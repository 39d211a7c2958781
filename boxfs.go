// Package boxfs provides a filesystem-style interface over the Box content API.
// Box organizes content around opaque folder/file IDs rather than paths, so the
// backend simulates a hierarchical namespace by resolving path segments to IDs
// through the provider's search endpoint.
package boxfs

import (
	"fmt"
	"io"
	"time"

	"github.com/gzai/boxfs/options"
)

// EntryType discriminates directory entries returned by Location.Contents.
type EntryType string

const (
	// EntryTypeFile marks a file entry.
	EntryTypeFile EntryType = "file"

	// EntryTypeDir marks a directory entry.
	EntryTypeDir EntryType = "dir"
)

// VisibilityPrivate is the only visibility Box content ever reports. The
// provider exposes no POSIX-style ACLs through this surface.
const VisibilityPrivate = "private"

// Attributes describes a single file or directory entry as reported by a
// listing or metadata call.
type Attributes struct {
	// Path is the normalized, slash-delimited logical path of the entry
	// (no leading or trailing slash).
	Path string

	// Type reports whether the entry is a file or a directory.
	Type EntryType

	// Size is the entry size in bytes. Zero for directories.
	Size int64

	// LastModified is the provider-reported modification time, when known.
	LastModified *time.Time

	// MimeType is derived from the file extension, never from content
	// sniffing. Empty for directories and unknown extensions.
	MimeType string

	// Visibility is always VisibilityPrivate for Box content.
	Visibility string
}

// IsDir returns true for directory entries.
func (a Attributes) IsDir() bool {
	return a.Type == EntryTypeDir
}

// FileSystem represents a filesystem with any authentication accounted for.
type FileSystem interface {
	// NewFile initializes a File on the specified authority at the absolute path 'name'.
	// On error, nil is returned for the file.
	NewFile(authority, name string, opts ...options.NewFileOption) (File, error)

	// NewLocation initializes a Location on the specified authority with the given absolute path.
	// On error, nil is returned for the location.
	NewLocation(authority, path string) (Location, error)

	// Name returns the name of the FileSystem ie: Box, disk, etc...
	Name() string

	// Scheme, related to Name, is the uri scheme used by the FileSystem: box, file, etc...
	Scheme() string
}

// Location represents a filesystem path which serves as a start point for
// directory-like functionality. A location may or may not actually exist on
// the remote filesystem.
type Location interface {
	fmt.Stringer

	// List returns a slice of strings representing the base names of the files found at the
	// Location. All implementations are expected to return ([]string{}, nil) in the case of a
	// non-existent directory. If the caller cares about the distinction between an empty
	// location and a non-existent one, Location.Exists() should be checked first.
	List() ([]string, error)

	// Contents returns attribute records for every entry at the Location, files and
	// directories both. When recursive is true, child directories are walked one folder
	// level at a time and their entries merged into the result. Entries that normalize to
	// a path already seen within the call are suppressed.
	Contents(recursive bool) ([]Attributes, error)

	// Exists returns true if the location exists on the remote filesystem.
	Exists() (bool, error)

	// Mkdir creates the directory named by the location's last path segment under its
	// resolved parent folder.
	Mkdir() error

	// Delete removes the directory named by the location's last path segment.
	Delete() error

	// Path returns the absolute path of the Location with leading and trailing slashes,
	// ie /some/path/to/
	Path() string

	// Authority returns the authority portion of the location's URI. Box uses a single
	// namespace per token, so this is normally empty.
	Authority() string

	// NewLocation is an initializer for a new Location relative to the existing one.
	NewLocation(relativePath string) (Location, error)

	// NewFile will instantiate a File instance relative to the current location's path.
	NewFile(relativePath string, opts ...options.NewFileOption) (File, error)

	// DeleteFile deletes the file of the given name at the location. This is a shortcut
	// for instantiating a new file and calling delete on it.
	DeleteFile(fileName string, opts ...options.DeleteOption) error

	// FileSystem returns the underlying FileSystem struct for the Location.
	FileSystem() FileSystem

	// URI returns the fully qualified URI for the Location. IE, box:///some/path/
	URI() string
}

// File represents a file on a filesystem. A File may or may not actually
// exist on the remote filesystem.
type File interface {
	io.Closer
	io.Reader
	io.Seeker
	io.Writer
	fmt.Stringer

	// Exists returns true if the file exists on the remote filesystem.
	Exists() (bool, error)

	// Location returns the Location for the File.
	Location() Location

	// CopyToLocation will copy the current file to the provided location. On error, nil is
	// returned for the file.
	CopyToLocation(location Location) (File, error)

	// CopyToFile will copy the current file to the provided file instance. If the file
	// already exists, the contents will be overwritten.
	CopyToFile(file File) error

	// MoveToLocation will move the current file to the provided location. On error, nil is
	// returned for the file.
	MoveToLocation(location Location) (File, error)

	// MoveToFile will move the current file to the provided file instance. The current
	// instance of the file is removed afterward.
	MoveToFile(file File) error

	// Delete unlinks the File on the remote filesystem.
	Delete(opts ...options.DeleteOption) error

	// Touch creates the file as a zero-length file if it does not exist. Box has no
	// timestamp-only update, so touching an existing file is a no-op.
	Touch() error

	// LastModified returns the timestamp the file was last modified.
	LastModified() (*time.Time, error)

	// Size returns the size of the file in bytes.
	Size() (uint64, error)

	// MimeType returns the file's MIME type derived from its extension.
	MimeType() (string, error)

	// Visibility returns the file's visibility marker. Box reports
	// VisibilityPrivate for all content.
	Visibility() (string, error)

	// URL requests a short-lived shared link for the file and returns its URL. An empty
	// string is returned when the provider reports success but supplies no link.
	URL() (string, error)

	// Path returns the absolute path (with leading slash) including filename,
	// ie /some/path/to/file.txt
	Path() string

	// Name returns the base name of the file path. For /some/path/to/file.txt, it would
	// return file.txt
	Name() string

	// URI returns the fully qualified URI for the File. IE, box:///some/path/to/file.txt
	URI() string
}
