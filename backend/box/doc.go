/*
Package box provides a boxfs.FileSystem backed by the Box content API.

Box addresses files and folders by opaque IDs rather than paths. The backend
simulates a hierarchical namespace on top of that: each path segment is resolved
to a folder ID through the provider's search endpoint with exact-name filtering,
and file operations then work against the resolved IDs. Resolution degrades to
the configured root folder when a parent segment cannot be found.

# Usage

Rely on the default registered filesystem with an access token from the
BOXFS_ACCESS_TOKEN environment variable:

	import "github.com/gzai/boxfs/boxsimple"

	file, err := boxsimple.NewFile("box:///reports/2026/summary.pdf")

Or compose one explicitly, typically with an auth.Manager for token refresh:

	fs := box.NewFileSystem(
		box.WithTokenProvider(manager.TokenProvider("")),
		box.WithRootFolderID("184052"),
	)
	file, err := fs.NewFile("", "/reports/2026/summary.pdf")

# Buffering

Reads download the full object to a temp file so Seek works against content the
provider only serves as a stream. Writes stage to a temp file and upload on
Close; the client picks single-request or resumable session upload by size.

# Authentication

API calls authenticate with OAuth2 bearer tokens. The auth subpackage implements
the authorization-code flow, token persistence, and serialized expiry-driven
refresh.
*/
package box
