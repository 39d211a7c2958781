package boxsimple

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gzai/boxfs"
	"github.com/gzai/boxfs/backend"
	_ "github.com/gzai/boxfs/backend/box" // register the box backend
)

var (
	ErrMissingScheme = errors.New("unable to determine uri scheme")
	ErrRegFsNotFound = errors.New("no matching registered filesystem found")
	ErrBlankURI      = errors.New("uri is blank")
)

// NewLocation is a convenience function that allows for instantiating a location based on
// a uri string, e.g. "box:///reports/2026/". Box uses a single namespace per token, so the
// authority portion is normally empty.
func NewLocation(uri string) (boxfs.Location, error) {
	fs, host, path, err := parseSupportedURI(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to create boxfs.Location for uri %q: %w", uri, err)
	}

	return fs.NewLocation(host, path)
}

// NewFile is a convenience function that allows for instantiating a file based on a uri
// string, e.g. "box:///reports/2026/summary.pdf".
func NewFile(uri string) (boxfs.File, error) {
	fs, host, path, err := parseSupportedURI(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to create boxfs.File for uri %q: %w", uri, err)
	}

	return fs.NewFile(host, path)
}

// parseURI attempts to parse a URI and validate that it returns required results
func parseURI(uri string) (scheme, authority, path string, err error) {
	// return early if blank uri
	if uri == "" {
		err = ErrBlankURI
		return
	}

	// parse URI
	var u *url.URL
	u, err = url.Parse(uri)
	if err != nil {
		err = fmt.Errorf("unknown url.Parse error: %w", err)
		return
	}

	// validate scheme
	scheme = u.Scheme
	if u.Scheme == "" {
		err = ErrMissingScheme
		return
	}

	authority = u.Host
	path = u.Path
	if u.User.String() != "" {
		authority = fmt.Sprintf("%s@%s", u.User, u.Host)
	}

	return
}

// parseSupportedURI checks if the URI matches any registered backend name as prefix,
// capturing the longest (most specific) match found. A filesystem registered under
// "box://workspace/" wins over the scheme-level "box" registration for URIs beneath it.
func parseSupportedURI(uri string) (boxfs.FileSystem, string, string, error) {
	_, authority, path, err := parseURI(uri)
	if err != nil {
		return nil, "", "", err
	}

	var longest string
	backends := backend.RegisteredBackends()
	for _, backendName := range backends {
		if strings.HasPrefix(uri, backendName) {
			// The first match always becomes the longest
			if longest == "" {
				longest = backendName
				continue
			}

			// we found a longer (more specific) backend prefix matching URI
			if len(backendName) > len(longest) {
				longest = backendName
			}
		}
	}

	if longest == "" {
		err = ErrRegFsNotFound
	}

	return backend.Backend(longest), authority, path, err
}
