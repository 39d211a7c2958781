package box

import (
	"errors"
	"os"
	"path"

	"github.com/gzai/boxfs"
	"github.com/gzai/boxfs/backend"
	"github.com/gzai/boxfs/backend/box/api"
	"github.com/gzai/boxfs/options"
	"github.com/gzai/boxfs/utils"
)

// Scheme defines the file system type.
const Scheme = "box"

const name = "Box"

var (
	errFileSystemRequired       = errors.New("non-nil box.FileSystem pointer is required")
	errAuthorityAndNameRequired = errors.New("non-empty string for name is required")
	errTokenRequired            = errors.New("a token provider or access token is required for Box authentication")
)

// FileSystem implements boxfs.FileSystem for Box.
type FileSystem struct {
	client  Client
	options Options
}

// NewFileSystem initializer for FileSystem struct.
func NewFileSystem(opts ...options.NewFileSystemOption[FileSystem]) *FileSystem {
	fs := &FileSystem{
		options: NewOptions(),
	}

	options.ApplyOptions(fs, opts...)

	return fs
}

// NewFile function returns the Box implementation of boxfs.File.
func (fs *FileSystem) NewFile(authorityStr, name string, opts ...options.NewFileOption) (boxfs.File, error) {
	if fs == nil {
		return nil, errFileSystemRequired
	}

	if name == "" {
		return nil, errAuthorityAndNameRequired
	}

	if err := utils.ValidateAbsoluteFilePath(name); err != nil {
		return nil, err
	}

	absLocPath := utils.EnsureTrailingSlash(path.Dir(name))
	loc, err := fs.NewLocation(authorityStr, absLocPath)
	if err != nil {
		return nil, err
	}

	filename := path.Base(name)
	return loc.NewFile(filename, opts...)
}

// NewLocation function returns the Box implementation of boxfs.Location.
func (fs *FileSystem) NewLocation(authorityStr, name string) (boxfs.Location, error) {
	if fs == nil {
		return nil, errFileSystemRequired
	}

	if name == "" {
		return nil, errAuthorityAndNameRequired
	}

	if err := utils.ValidateAbsoluteLocationPath(name); err != nil {
		return nil, err
	}

	// Box uses a single namespace per token, so the authority is normally empty.
	return &Location{
		fileSystem: fs,
		path:       utils.EnsureTrailingSlash(path.Clean(name)),
		authority:  utils.RemoveTrailingSlash(authorityStr),
	}, nil
}

// Name returns "Box"
func (fs *FileSystem) Name() string {
	return name
}

// Scheme returns "box" as the initial part of a file URI ie: box://
func (fs *FileSystem) Scheme() string {
	return Scheme
}

// Client returns the underlying Box API client, creating it if necessary.
func (fs *FileSystem) Client() (Client, error) {
	if fs.client == nil {
		provider := fs.options.TokenProvider

		// If no provider in options, try environment variable
		if provider == nil {
			if token := os.Getenv("BOXFS_ACCESS_TOKEN"); token != "" {
				provider = api.StaticTokenProvider(token)
			}
		}

		if provider == nil {
			return nil, errTokenRequired
		}

		clientOpts := []api.ClientOption{
			api.WithRootFolderID(fs.options.RootFolderID),
		}
		if fs.options.APIBaseURL != "" {
			clientOpts = append(clientOpts, api.WithAPIURL(fs.options.APIBaseURL))
		}
		if fs.options.UploadBaseURL != "" {
			clientOpts = append(clientOpts, api.WithUploadURL(fs.options.UploadBaseURL))
		}

		fs.client = api.NewClient(provider, clientOpts...)
	}

	return fs.client, nil
}

func init() {
	// Register a default FileSystem
	backend.Register(Scheme, NewFileSystem())
}
