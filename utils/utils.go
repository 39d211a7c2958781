// Package utils provides path normalization, validation, and error-wrapping
// helpers shared by boxfs filesystem implementations.
package utils

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/gzai/boxfs"
)

const (
	// ErrBadAbsFilePath constant is returned when a file path is not absolute
	ErrBadAbsFilePath = "absolute file path is invalid - must include leading slash and may not include trailing slash"

	// ErrBadRelFilePath constant is returned when a file path is not relative
	ErrBadRelFilePath = "relative file path is invalid - may not include leading or trailing slashes"

	// ErrBadAbsLocationPath constant is returned when a file path is not absolute
	ErrBadAbsLocationPath = "absolute location path is invalid - must include leading and trailing slashes"

	// ErrBadRelLocationPath constant is returned when a file path is not relative
	ErrBadRelLocationPath = "relative location path is invalid - may not include leading slash but must include trailing slash"
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

// ValidateAbsoluteFilePath ensures that a file path has a leading slash but not a trailing slash
func ValidateAbsoluteFilePath(name string) error {
	if !strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return errors.New(ErrBadAbsFilePath)
	}
	return nil
}

// ValidateRelativeFilePath ensures that a file path has neither leading nor trailing slashes
func ValidateRelativeFilePath(name string) error {
	if name == "" || name == "." || strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return errors.New(ErrBadRelFilePath)
	}
	return nil
}

// ValidateAbsoluteLocationPath ensures that a location path has both leading and trailing slashes
func ValidateAbsoluteLocationPath(name string) error {
	if !strings.HasPrefix(name, "/") || !strings.HasSuffix(name, "/") {
		return errors.New(ErrBadAbsLocationPath)
	}
	return nil
}

// ValidateRelativeLocationPath ensures that a location path has no leading slash but does have a
// trailing slash
func ValidateRelativeLocationPath(name string) error {
	if name == "" || strings.HasPrefix(name, "/") || !strings.HasSuffix(name, "/") {
		return errors.New(ErrBadRelLocationPath)
	}
	return nil
}

// EnsureTrailingSlash returns the path with a trailing slash added, if none was present.
func EnsureTrailingSlash(dir string) string {
	if dir == "" || hasTrailingSlash.MatchString(dir) {
		return dir
	}
	return dir + "/"
}

// EnsureLeadingSlash returns the path with a leading slash added, if none was present.
func EnsureLeadingSlash(dir string) string {
	if dir == "" || hasLeadingSlash.MatchString(dir) {
		return dir
	}
	return "/" + dir
}

// RemoveTrailingSlash returns the path with any trailing slash removed.
func RemoveTrailingSlash(dir string) string {
	return strings.TrimSuffix(dir, "/")
}

// RemoveLeadingSlash returns the path with any leading slash removed.
func RemoveLeadingSlash(dir string) string {
	return strings.TrimPrefix(dir, "/")
}

// StandardizePath normalizes a logical path for namespace simulation: cleans dot segments
// and strips leading and trailing slashes, so "/reports/2024/" becomes "reports/2024".
func StandardizePath(p string) string {
	p = path.Clean(p)
	if p == "." || p == "/" {
		return ""
	}
	return strings.Trim(p, "/")
}

// GetFileURI returns a File URI
func GetFileURI(f boxfs.File) string {
	return fmt.Sprintf("%s://%s%s", f.Location().FileSystem().Scheme(), f.Location().Authority(), f.Path())
}

// GetLocationURI returns a Location URI
func GetLocationURI(l boxfs.Location) string {
	return fmt.Sprintf("%s://%s%s", l.FileSystem().Scheme(), l.Authority(), l.Path())
}

// SeekTo validates a seek request against the file length and current position and returns the
// resulting absolute position.
func SeekTo(length, position, offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = position + offset
	case io.SeekEnd:
		newPos = length + offset
	default:
		return 0, boxfs.ErrSeekInvalidWhence
	}

	if newPos < 0 {
		return 0, boxfs.ErrSeekInvalidOffset
	}

	return newPos, nil
}

// TouchCopyBuffered copies the reader's contents to the writer file using a buffer of the given
// size (or a 1MB default when bufferSize is 0), ensuring an empty write occurs for zero-length
// sources so the target file is still created.
func TouchCopyBuffered(writer boxfs.File, reader boxfs.File, bufferSize int) error {
	if bufferSize == 0 {
		bufferSize = 1024 * 1024
	}

	buffer := make([]byte, bufferSize)
	if n, err := io.CopyBuffer(writer, reader, buffer); err != nil {
		return err
	} else if n == 0 {
		// force a write so zero-length files are materialized
		if _, err := writer.Write([]byte{}); err != nil {
			return err
		}
	}

	return nil
}
