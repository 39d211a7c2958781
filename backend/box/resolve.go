package box

import (
	"context"
	"path"
	"strings"

	"github.com/gzai/boxfs/backend/box/api"
	"github.com/gzai/boxfs/utils"
)

// pathInfo is a file path resolved against the remote folder structure: the
// leaf name plus the provider ID of the folder it lives in.
type pathInfo struct {
	name     string
	parentID string
}

// splitPath resolves a slash-delimited file path to its leaf name and parent
// folder ID. Box addresses content by ID, so the parent segment is translated
// through a scoped folder search. A path with no parent segment, a search miss,
// and a search failure all resolve to the root folder: the provider cannot
// distinguish "folder absent" from "folder unreachable" through search, so
// resolution degrades to the root rather than failing the operation.
func (fs *FileSystem) splitPath(ctx context.Context, client Client, p string) pathInfo {
	p = utils.StandardizePath(p)

	info := pathInfo{
		name:     p,
		parentID: client.RootFolderID(),
	}

	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return info
	}
	info.name = p[idx+1:]

	parentName := path.Base(p[:idx])
	id, err := client.FolderIDByName(ctx, parentName, client.RootFolderID())
	if err == nil && id != api.SentinelID {
		info.parentID = id
	}

	return info
}

// folderID resolves a location path to its provider folder ID. The root
// location maps straight to the configured root folder; any other location is
// addressed by its leaf folder name, searched under the resolved parent so a
// same-named folder in another subtree is never picked up.
func (fs *FileSystem) folderID(ctx context.Context, client Client, locPath string) (string, error) {
	p := utils.StandardizePath(locPath)
	if p == "" {
		return client.RootFolderID(), nil
	}

	info := fs.splitPath(ctx, client, p)
	return client.FolderIDByName(ctx, info.name, info.parentID)
}
