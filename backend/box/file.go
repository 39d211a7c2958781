package box

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"time"

	"github.com/gzai/boxfs"
	"github.com/gzai/boxfs/backend/box/api"
	"github.com/gzai/boxfs/options"
	"github.com/gzai/boxfs/options/newfile"
	"github.com/gzai/boxfs/utils"
)

// File implements boxfs.File for Box.
type File struct {
	location *Location
	path     string
	opts     []options.NewFileOption

	// State management
	cursorPos   int64
	seekCalled  bool
	readCalled  bool
	writeCalled bool
	readEOFSeen bool

	// Read buffering (for Seek support)
	tempFileRead *os.File

	// Write buffering
	tempFileWrite *os.File
}

// ctx returns the context supplied at file creation, or a background context.
func (f *File) ctx() context.Context {
	for _, o := range f.opts {
		if c, ok := o.(*newfile.Context); ok {
			return c.Context
		}
	}
	return context.Background()
}

// pathInfo resolves the file's path to its leaf name and parent folder ID.
func (f *File) pathInfo(ctx context.Context, client Client) pathInfo {
	return f.location.fileSystem.splitPath(ctx, client, f.path)
}

// entry fetches the file's provider entry, or nil when no exact-name match
// exists under the resolved parent.
func (f *File) entry(ctx context.Context, client Client) (*api.Entry, error) {
	info := f.pathInfo(ctx, client)
	return client.FileByName(ctx, info.name, info.parentID)
}

// fileID resolves the file's path to its provider ID, yielding the sentinel ID
// when the file does not exist.
func (f *File) fileID(ctx context.Context, client Client) (string, error) {
	info := f.pathInfo(ctx, client)
	return client.FileIDByName(ctx, info.name, info.parentID)
}

// Info Functions

// LastModified returns the last modified time of the file.
func (f *File) LastModified() (*time.Time, error) {
	client, err := f.location.fileSystem.Client()
	if err != nil {
		return nil, utils.WrapLastModifiedError(err)
	}

	entry, err := f.entry(f.ctx(), client)
	if err != nil {
		return nil, utils.WrapLastModifiedError(err)
	}
	if entry == nil {
		return nil, utils.WrapLastModifiedError(boxfs.ErrNotExist)
	}

	return entry.ModifiedAt, nil
}

// Name returns the base name of the file.
func (f *File) Name() string {
	return path.Base(f.path)
}

// Path returns the full path of the file.
func (f *File) Path() string {
	return utils.EnsureLeadingSlash(f.path)
}

// Exists checks if the file exists.
func (f *File) Exists() (bool, error) {
	client, err := f.location.fileSystem.Client()
	if err != nil {
		return false, utils.WrapExistsError(err)
	}

	ctx := f.ctx()
	info := f.pathInfo(ctx, client)

	exists, err := client.FileExistsByName(ctx, info.name, info.parentID)
	if err != nil {
		return false, utils.WrapExistsError(err)
	}

	return exists, nil
}

// Size returns the size of the file in bytes.
func (f *File) Size() (uint64, error) {
	client, err := f.location.fileSystem.Client()
	if err != nil {
		return 0, utils.WrapSizeError(err)
	}

	entry, err := f.entry(f.ctx(), client)
	if err != nil {
		return 0, utils.WrapSizeError(err)
	}
	if entry == nil {
		return 0, utils.WrapSizeError(boxfs.ErrNotExist)
	}

	return uint64(entry.Size), nil
}

// MimeType returns the file's MIME type derived from its extension. Content is
// never sniffed.
func (f *File) MimeType() (string, error) {
	return mimeTypeByName(f.Name()), nil
}

// Visibility returns the file's visibility marker. Box exposes no POSIX-style
// ACLs through this surface, so all content reports as private.
func (f *File) Visibility() (string, error) {
	return boxfs.VisibilityPrivate, nil
}

// URL requests a short-lived shared link for the file and returns its URL. A
// file that cannot be resolved remotely, and a provider response carrying no
// link, both yield an empty string with no error.
func (f *File) URL() (string, error) {
	client, err := f.location.fileSystem.Client()
	if err != nil {
		return "", utils.WrapURLError(err)
	}

	ctx := f.ctx()

	entry, err := f.entry(ctx, client)
	if err != nil {
		return "", utils.WrapURLError(err)
	}
	if entry == nil {
		return "", nil
	}

	linked, err := client.TemporaryLink(ctx, entry.ID, f.location.fileSystem.options.LinkTTL)
	if err != nil {
		return "", utils.WrapURLError(err)
	}
	if linked.SharedLink == nil {
		return "", nil
	}

	return linked.SharedLink.URL, nil
}

// Location returns the file's location.
func (f *File) Location() boxfs.Location {
	return f.location
}

// URI returns the file's URI.
func (f *File) URI() string {
	return utils.GetFileURI(f)
}

// String returns the file's URI as a string.
func (f *File) String() string {
	return f.URI()
}

// Read implements io.Reader for the file.
func (f *File) Read(p []byte) (n int, err error) {
	if f.readEOFSeen {
		return 0, io.EOF
	}

	// If we have a write buffer, read from that instead of downloading. This
	// handles the case where we've written to a file that doesn't exist yet.
	if f.tempFileWrite != nil {
		if _, err := f.tempFileWrite.Seek(f.cursorPos, io.SeekStart); err != nil {
			return 0, utils.WrapReadError(err)
		}

		n, err := f.tempFileWrite.Read(p)
		f.cursorPos += int64(n)
		f.readCalled = true

		if err != nil && !errors.Is(err, io.EOF) {
			return n, utils.WrapReadError(err)
		}
		if errors.Is(err, io.EOF) {
			f.readEOFSeen = true
		}
		return n, err
	}

	if err := f.ensureTempFileRead(); err != nil {
		return 0, utils.WrapReadError(err)
	}

	n, err = f.tempFileRead.Read(p)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, utils.WrapReadError(err)
		}
		f.readEOFSeen = true
	}

	f.cursorPos += int64(n)
	f.readCalled = true

	return n, err
}

// ensureTempFileRead downloads the file to a temp file if not already done.
// Box serves content as a single stream, so random access happens locally.
func (f *File) ensureTempFileRead() error {
	if f.tempFileRead != nil {
		return nil
	}

	client, err := f.location.fileSystem.Client()
	if err != nil {
		return err
	}

	ctx := f.ctx()

	fileID, err := f.fileID(ctx, client)
	if err != nil {
		return err
	}
	if fileID == api.SentinelID {
		return boxfs.ErrNotExist
	}

	reader, err := client.Download(ctx, fileID)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	tempDir := f.location.fileSystem.options.TempDir
	f.tempFileRead, err = os.CreateTemp(tempDir, "boxfs-read-*")
	if err != nil {
		return err
	}

	if _, err := io.Copy(f.tempFileRead, reader); err != nil {
		f.discardTempFileRead()
		return err
	}

	if _, err := f.tempFileRead.Seek(f.cursorPos, io.SeekStart); err != nil {
		f.discardTempFileRead()
		return err
	}

	return nil
}

func (f *File) discardTempFileRead() {
	_ = f.tempFileRead.Close()
	_ = os.Remove(f.tempFileRead.Name())
	f.tempFileRead = nil
}

// Write implements io.Writer for the file.
func (f *File) Write(data []byte) (int, error) {
	if err := f.ensureTempFileWrite(); err != nil {
		return 0, utils.WrapWriteError(err)
	}

	n, err := f.tempFileWrite.Write(data)
	if err != nil {
		return 0, utils.WrapWriteError(err)
	}

	f.cursorPos += int64(n)
	f.writeCalled = true

	return n, nil
}

// ensureTempFileWrite creates a temp file for writing if not already done.
func (f *File) ensureTempFileWrite() error {
	if f.tempFileWrite != nil {
		return nil
	}

	tempDir := f.location.fileSystem.options.TempDir
	var err error

	// If seek or read preceded the first write, stage the existing content so
	// the write lands at the right offset.
	if f.seekCalled || f.readCalled {
		if err := f.ensureTempFileRead(); err != nil {
			if !errors.Is(err, boxfs.ErrNotExist) && !api.IsNotFound(err) {
				return err
			}
		}

		if f.tempFileRead != nil {
			f.tempFileWrite = f.tempFileRead
			f.tempFileRead = nil
			return nil
		}
	}

	f.tempFileWrite, err = os.CreateTemp(tempDir, "boxfs-write-*")
	if err != nil {
		return err
	}

	if f.cursorPos > 0 {
		if _, err := f.tempFileWrite.Seek(f.cursorPos, io.SeekStart); err != nil {
			_ = f.tempFileWrite.Close()
			_ = os.Remove(f.tempFileWrite.Name())
			f.tempFileWrite = nil
			return err
		}
	}

	return nil
}

// Seek implements io.Seeker for the file.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	var size uint64
	switch {
	case f.writeCalled && f.tempFileWrite != nil:
		stat, err := f.tempFileWrite.Stat()
		if err != nil {
			return 0, utils.WrapSeekError(err)
		}
		size = uint64(stat.Size())
	case f.readCalled && f.tempFileRead != nil:
		stat, err := f.tempFileRead.Stat()
		if err != nil {
			return 0, utils.WrapSeekError(err)
		}
		size = uint64(stat.Size())
	default:
		// Seeking on a non-existent file should fail.
		exists, err := f.Exists()
		if err != nil {
			return 0, utils.WrapSeekError(err)
		}
		if !exists {
			return 0, utils.WrapSeekError(errors.New("cannot seek on non-existent file"))
		}

		size, err = f.Size()
		if err != nil {
			return 0, utils.WrapSeekError(err)
		}
	}

	newPos, err := utils.SeekTo(int64(size), f.cursorPos, offset, whence)
	if err != nil {
		return 0, utils.WrapSeekError(err)
	}

	if f.tempFileRead != nil {
		if _, err := f.tempFileRead.Seek(newPos, io.SeekStart); err != nil {
			return 0, utils.WrapSeekError(err)
		}
	}

	if f.tempFileWrite != nil {
		if _, err := f.tempFileWrite.Seek(newPos, io.SeekStart); err != nil {
			return 0, utils.WrapSeekError(err)
		}
	}

	f.cursorPos = newPos
	f.seekCalled = true
	f.readEOFSeen = f.cursorPos >= int64(size)

	return f.cursorPos, nil
}

// Close closes the file and uploads any buffered writes. Temp files are always
// removed, upload success or not.
func (f *File) Close() error {
	var uploadErr error

	if f.writeCalled && f.tempFileWrite != nil {
		uploadErr = f.uploadStaged()
	}

	if f.tempFileRead != nil {
		_ = f.tempFileRead.Close()
		_ = os.Remove(f.tempFileRead.Name())
		f.tempFileRead = nil
	}

	if f.tempFileWrite != nil {
		_ = f.tempFileWrite.Close()
		_ = os.Remove(f.tempFileWrite.Name())
		f.tempFileWrite = nil
	}

	f.cursorPos = 0
	f.seekCalled = false
	f.readCalled = false
	f.writeCalled = false
	f.readEOFSeen = false

	if uploadErr != nil {
		return utils.WrapCloseError(uploadErr)
	}

	return nil
}

// uploadStaged uploads the staged temp file under the file's leaf name. The
// client routes between single-request and session upload by size.
func (f *File) uploadStaged() error {
	client, err := f.location.fileSystem.Client()
	if err != nil {
		return err
	}

	if err := f.tempFileWrite.Sync(); err != nil {
		return err
	}

	ctx := f.ctx()
	info := f.pathInfo(ctx, client)

	// Replace rather than duplicate: Box rejects uploads that collide with an
	// existing name.
	existingID, err := client.FileIDByName(ctx, info.name, info.parentID)
	if err != nil {
		return err
	}
	if existingID != api.SentinelID {
		if err := client.DeleteFile(ctx, existingID); err != nil {
			return err
		}
	}

	_, err = client.Upload(ctx, f.tempFileWrite.Name(), info.parentID, info.name)
	return err
}

// Delete deletes the file from Box.
func (f *File) Delete(_ ...options.DeleteOption) error {
	if err := f.Close(); err != nil {
		return utils.WrapDeleteError(err)
	}

	client, err := f.location.fileSystem.Client()
	if err != nil {
		return utils.WrapDeleteError(err)
	}

	ctx := f.ctx()

	fileID, err := f.fileID(ctx, client)
	if err != nil {
		return utils.WrapDeleteError(err)
	}

	// DeleteFile rejects the sentinel with a not-found envelope, covering the
	// unresolved-path case.
	if err := client.DeleteFile(ctx, fileID); err != nil {
		return utils.WrapDeleteError(err)
	}

	return nil
}

// Touch creates the file as a zero-length file if it does not exist. Box has no
// timestamp-only update, so touching an existing file is a no-op.
func (f *File) Touch() error {
	exists, err := f.Exists()
	if err != nil {
		return utils.WrapTouchError(err)
	}
	if exists {
		return nil
	}

	if _, err := f.Write(nil); err != nil {
		return utils.WrapTouchError(err)
	}

	return utils.WrapTouchError(f.Close())
}

// CopyToFile copies the file to the target file.
func (f *File) CopyToFile(targetFile boxfs.File) error {
	if f.cursorPos != 0 {
		return boxfs.ErrCopyToNotPossible
	}

	defer func() {
		_ = targetFile.Close()
		_ = f.Close()
	}()

	// If target is also Box on the same filesystem, use native copy.
	if tf, ok := targetFile.(*File); ok && f.location.fileSystem == tf.location.fileSystem {
		return utils.WrapCopyToFileError(f.copyNative(tf))
	}

	if err := utils.TouchCopyBuffered(targetFile, f, 0); err != nil {
		return utils.WrapCopyToFileError(err)
	}

	return nil
}

// copyNative performs a server-side copy, renaming the copy when the target
// leaf name differs from the source.
func (f *File) copyNative(target *File) error {
	client, err := f.location.fileSystem.Client()
	if err != nil {
		return err
	}

	ctx := f.ctx()

	fileID, err := f.fileID(ctx, client)
	if err != nil {
		return err
	}
	if fileID == api.SentinelID {
		return boxfs.ErrNotExist
	}

	// Box rejects copies that collide with an existing name.
	exists, err := target.Exists()
	if err != nil {
		return err
	}
	if exists {
		if err := target.Delete(); err != nil {
			return err
		}
	}

	targetInfo := target.pathInfo(ctx, client)
	newName := ""
	if targetInfo.name != f.Name() {
		newName = targetInfo.name
	}

	_, err = client.CopyFile(ctx, fileID, targetInfo.parentID, newName)
	return err
}

// CopyToLocation copies the file to the target location.
func (f *File) CopyToLocation(location boxfs.Location) (boxfs.File, error) {
	newFile, err := location.NewFile(f.Name())
	if err != nil {
		return nil, utils.WrapCopyToLocationError(err)
	}

	if err := f.CopyToFile(newFile); err != nil {
		return nil, utils.WrapCopyToLocationError(err)
	}

	return newFile, nil
}

// MoveToFile moves the file to the target file.
func (f *File) MoveToFile(targetFile boxfs.File) error {
	if f.cursorPos != 0 {
		return boxfs.ErrCopyToNotPossible
	}

	// If target is also Box on the same filesystem, use native move.
	if tf, ok := targetFile.(*File); ok && f.location.fileSystem == tf.location.fileSystem {
		return utils.WrapMoveToFileError(f.moveNative(tf))
	}

	if err := f.CopyToFile(targetFile); err != nil {
		return utils.WrapMoveToFileError(err)
	}

	return utils.WrapMoveToFileError(f.Delete())
}

// moveNative performs a server-side move, renaming when the target leaf name
// differs from the source.
func (f *File) moveNative(target *File) error {
	client, err := f.location.fileSystem.Client()
	if err != nil {
		return err
	}

	ctx := f.ctx()

	fileID, err := f.fileID(ctx, client)
	if err != nil {
		return err
	}
	if fileID == api.SentinelID {
		return boxfs.ErrNotExist
	}

	targetInfo := target.pathInfo(ctx, client)
	newName := ""
	if targetInfo.name != f.Name() {
		newName = targetInfo.name
	}

	_, err = client.MoveFile(ctx, fileID, targetInfo.parentID, newName)
	return err
}

// MoveToLocation moves the file to the target location.
func (f *File) MoveToLocation(location boxfs.Location) (boxfs.File, error) {
	newFile, err := f.CopyToLocation(location)
	if err != nil {
		return nil, utils.WrapMoveToLocationError(err)
	}

	if err := f.Delete(); err != nil {
		return newFile, utils.WrapMoveToLocationError(err)
	}

	return newFile, nil
}

var _ boxfs.File = (*File)(nil)
