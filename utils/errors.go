package utils

import "fmt"

func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// WrapReadError returns a wrapped read error
func WrapReadError(err error) error { return wrapError("read error", err) }

// WrapWriteError returns a wrapped write error
func WrapWriteError(err error) error { return wrapError("write error", err) }

// WrapSeekError returns a wrapped seek error
func WrapSeekError(err error) error { return wrapError("seek error", err) }

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error { return wrapError("close error", err) }

// WrapExistsError returns a wrapped exists error
func WrapExistsError(err error) error { return wrapError("exists error", err) }

// WrapSizeError returns a wrapped size error
func WrapSizeError(err error) error { return wrapError("size error", err) }

// WrapLastModifiedError returns a wrapped last-modified error
func WrapLastModifiedError(err error) error { return wrapError("last modified error", err) }

// WrapMimeTypeError returns a wrapped mime-type error
func WrapMimeTypeError(err error) error { return wrapError("mime type error", err) }

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error { return wrapError("delete error", err) }

// WrapTouchError returns a wrapped touch error
func WrapTouchError(err error) error { return wrapError("touch error", err) }

// WrapMkdirError returns a wrapped mkdir error
func WrapMkdirError(err error) error { return wrapError("mkdir error", err) }

// WrapListError returns a wrapped list error
func WrapListError(err error) error { return wrapError("list error", err) }

// WrapURLError returns a wrapped url error
func WrapURLError(err error) error { return wrapError("url error", err) }

// WrapCopyToFileError returns a wrapped copy-to-file error
func WrapCopyToFileError(err error) error { return wrapError("copy to file error", err) }

// WrapCopyToLocationError returns a wrapped copy-to-location error
func WrapCopyToLocationError(err error) error { return wrapError("copy to location error", err) }

// WrapMoveToFileError returns a wrapped move-to-file error
func WrapMoveToFileError(err error) error { return wrapError("move to file error", err) }

// WrapMoveToLocationError returns a wrapped move-to-location error
func WrapMoveToLocationError(err error) error { return wrapError("move to location error", err) }
