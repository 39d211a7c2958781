package box

import (
	"context"
	"errors"
	"path"

	"github.com/gzai/boxfs"
	"github.com/gzai/boxfs/backend/box/api"
	"github.com/gzai/boxfs/options"
	"github.com/gzai/boxfs/utils"
)

var (
	errLocationRequired = errors.New("non-nil box.Location pointer is required")
	errPathRequired     = errors.New("non-empty string for path is required")
)

// Location implements the boxfs.Location interface for Box.
type Location struct {
	fileSystem *FileSystem
	path       string
	authority  string
}

// List returns a list of file names in the location. A location that does not
// resolve to a remote folder lists as empty rather than failing.
func (l *Location) List() ([]string, error) {
	client, err := l.fileSystem.Client()
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	ctx := context.Background()

	folderID, err := l.fileSystem.folderID(ctx, client, l.path)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	if folderID == api.SentinelID && utils.StandardizePath(l.path) != "" {
		return []string{}, nil
	}

	items, err := client.FolderItems(ctx, folderID)
	if err != nil {
		if api.IsNotFound(err) {
			return []string{}, nil
		}
		return nil, utils.WrapListError(err)
	}

	fileNames := []string{}
	for i := range items.Entries {
		if items.Entries[i].Type == api.EntryTypeFile {
			fileNames = append(fileNames, items.Entries[i].Name)
		}
	}

	return fileNames, nil
}

// Contents returns attribute records for every entry at the location. When
// recursive is true child folders are walked one level at a time, their entries
// merged in after their parent's. Entries whose normalized path was already
// produced within the call are suppressed.
func (l *Location) Contents(recursive bool) ([]boxfs.Attributes, error) {
	client, err := l.fileSystem.Client()
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	ctx := context.Background()

	folderID, err := l.fileSystem.folderID(ctx, client, l.path)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	base := utils.StandardizePath(l.path)
	if folderID == api.SentinelID && base != "" {
		return []boxfs.Attributes{}, nil
	}

	seen := make(map[string]struct{})
	attrs, err := l.contents(ctx, client, folderID, base, recursive, seen)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	return attrs, nil
}

func (l *Location) contents(
	ctx context.Context,
	client Client,
	folderID, basePath string,
	recursive bool,
	seen map[string]struct{},
) ([]boxfs.Attributes, error) {
	items, err := client.FolderItems(ctx, folderID)
	if err != nil {
		if api.IsNotFound(err) {
			return []boxfs.Attributes{}, nil
		}
		return nil, err
	}

	attrs := []boxfs.Attributes{}
	for i := range items.Entries {
		entry := &items.Entries[i]
		entryPath := utils.StandardizePath(path.Join(basePath, entry.Name))
		if _, ok := seen[entryPath]; ok {
			continue
		}
		seen[entryPath] = struct{}{}

		attrs = append(attrs, entryAttributes(entry, entryPath))

		if recursive && entry.Type == api.EntryTypeFolder {
			children, err := l.contents(ctx, client, entry.ID, entryPath, recursive, seen)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, children...)
		}
	}

	return attrs, nil
}

// entryAttributes maps a provider entry onto the attribute record for the given
// normalized path.
func entryAttributes(entry *api.Entry, entryPath string) boxfs.Attributes {
	attr := boxfs.Attributes{
		Path:       entryPath,
		Visibility: boxfs.VisibilityPrivate,
	}

	if entry.Type == api.EntryTypeFolder {
		attr.Type = boxfs.EntryTypeDir
		return attr
	}

	attr.Type = boxfs.EntryTypeFile
	attr.Size = entry.Size
	attr.MimeType = mimeTypeByName(entry.Name)
	if entry.ModifiedAt != nil {
		modified := *entry.ModifiedAt
		attr.LastModified = &modified
	}

	return attr
}

// Exists checks if the location exists. The root location always exists.
func (l *Location) Exists() (bool, error) {
	client, err := l.fileSystem.Client()
	if err != nil {
		return false, utils.WrapExistsError(err)
	}

	p := utils.StandardizePath(l.path)
	if p == "" {
		return true, nil
	}

	ctx := context.Background()
	info := l.fileSystem.splitPath(ctx, client, p)

	exists, err := client.FolderExistsByName(ctx, info.name, info.parentID)
	if err != nil {
		return false, utils.WrapExistsError(err)
	}

	return exists, nil
}

// Mkdir creates the directory named by the location's last path segment under
// its resolved parent folder. The root location is a no-op.
func (l *Location) Mkdir() error {
	client, err := l.fileSystem.Client()
	if err != nil {
		return utils.WrapMkdirError(err)
	}

	p := utils.StandardizePath(l.path)
	if p == "" {
		return nil
	}

	ctx := context.Background()
	info := l.fileSystem.splitPath(ctx, client, p)

	if _, err := client.CreateFolder(ctx, info.name, info.parentID); err != nil {
		return utils.WrapMkdirError(err)
	}

	return nil
}

// Delete removes the directory named by the location's last path segment.
func (l *Location) Delete() error {
	client, err := l.fileSystem.Client()
	if err != nil {
		return utils.WrapDeleteError(err)
	}

	ctx := context.Background()

	folderID, err := l.fileSystem.folderID(ctx, client, l.path)
	if err != nil {
		return utils.WrapDeleteError(err)
	}

	// DeleteFolder rejects the sentinel with a not-found envelope, covering the
	// unresolved-path case.
	if err := client.DeleteFolder(ctx, folderID); err != nil {
		return utils.WrapDeleteError(err)
	}

	return nil
}

// Authority returns the authority for this location. Box uses a single
// namespace per token, so this is normally empty.
func (l *Location) Authority() string {
	return l.authority
}

// Path returns the path of the location.
func (l *Location) Path() string {
	return utils.EnsureLeadingSlash(utils.EnsureTrailingSlash(l.path))
}

// NewLocation creates a new Location relative to the current one.
func (l *Location) NewLocation(relativePath string) (boxfs.Location, error) {
	if l == nil {
		return nil, errLocationRequired
	}

	if relativePath == "" {
		return nil, errPathRequired
	}

	if err := utils.ValidateRelativeLocationPath(relativePath); err != nil {
		return nil, err
	}

	return &Location{
		fileSystem: l.fileSystem,
		path:       utils.EnsureTrailingSlash(path.Join(l.path, relativePath)),
		authority:  l.authority,
	}, nil
}

// NewFile creates a new File at the location.
func (l *Location) NewFile(relFilePath string, opts ...options.NewFileOption) (boxfs.File, error) {
	if l == nil {
		return nil, errLocationRequired
	}

	if relFilePath == "" {
		return nil, errPathRequired
	}

	if err := utils.ValidateRelativeFilePath(relFilePath); err != nil {
		return nil, err
	}

	newLocation, err := l.NewLocation(utils.EnsureTrailingSlash(path.Dir(relFilePath)))
	if err != nil {
		return nil, err
	}

	newFile := &File{
		location: newLocation.(*Location),
		path:     path.Join(l.path, relFilePath),
		opts:     opts,
	}

	return newFile, nil
}

// DeleteFile deletes a file at the location.
func (l *Location) DeleteFile(fileName string, opts ...options.DeleteOption) error {
	file, err := l.NewFile(fileName)
	if err != nil {
		return err
	}

	return file.Delete(opts...)
}

// FileSystem returns the underlying FileSystem.
func (l *Location) FileSystem() boxfs.FileSystem {
	return l.fileSystem
}

// URI returns the location's URI.
func (l *Location) URI() string {
	return utils.GetLocationURI(l)
}

// String returns the location's URI as a string.
func (l *Location) String() string {
	return l.URI()
}
