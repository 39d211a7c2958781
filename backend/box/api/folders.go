package api

import (
	"context"
	"net/http"
	"net/url"
)

// itemFields is the fixed field set requested on folder listings.
const itemFields = "id,type,name,file_version,size,owned_by,created_by,created_at,modified_by,modified_at,parent"

// Folder returns the folder entry for the given ID.
func (c *Client) Folder(ctx context.Context, folderID string) (*Entry, error) {
	var entry Entry
	if err := c.doJSON(ctx, http.MethodGet, c.apiURL+"/folders/"+folderID, nil, &entry, nil); err != nil {
		return nil, err
	}
	return &entry, nil
}

// FolderExists reports whether a folder with the given ID exists.
func (c *Client) FolderExists(ctx context.Context, folderID string) (bool, error) {
	_, err := c.Folder(ctx, folderID)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateFolder creates a folder under the given parent and returns its entry.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (*Entry, error) {
	body := struct {
		Name   string `json:"name"`
		Parent Parent `json:"parent"`
	}{
		Name:   name,
		Parent: Parent{ID: c.defaultParent(parentID)},
	}

	var entry Entry
	if err := c.doJSON(ctx, http.MethodPost, c.apiURL+"/folders", body, &entry, nil); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteFolder deletes the folder with the given ID. Deleting the sentinel ID fails
// immediately with a not-found envelope rather than issuing a remote call.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	if folderID == SentinelID {
		return &Error{Code: "not_found", Message: "Folder is not found!", Status: http.StatusNotFound}
	}
	return c.doJSON(ctx, http.MethodDelete, c.apiURL+"/folders/"+folderID, nil, nil, nil)
}

// FolderItems lists the immediate children of a folder, requesting the fixed item
// field set used for attribute mapping.
func (c *Client) FolderItems(ctx context.Context, folderID string) (*ItemCollection, error) {
	q := url.Values{}
	q.Set("fields", itemFields)

	var items ItemCollection
	if err := c.doJSON(ctx, http.MethodGet, c.apiURL+"/folders/"+folderID+"/items?"+q.Encode(), nil, &items, nil); err != nil {
		return nil, err
	}
	return &items, nil
}

// SearchFolders runs the provider's full-text search for folders with the given name,
// scoped under the ancestor folder. Results may include partial matches; callers use
// the *ByName helpers for exact-match filtering.
func (c *Client) SearchFolders(ctx context.Context, name, ancestorID string) (*ItemCollection, error) {
	q := url.Values{}
	q.Set("type", EntryTypeFolder)
	q.Set("ancestor_folder_ids", c.defaultParent(ancestorID))
	q.Set("content_types", "name,description")
	q.Set("query", `"`+name+`"`)

	var items ItemCollection
	if err := c.doJSON(ctx, http.MethodGet, c.apiURL+"/search?"+q.Encode(), nil, &items, nil); err != nil {
		return nil, err
	}
	return &items, nil
}

// FolderIDByName resolves a folder name to an ID by scoped search with exact-match
// filtering. A search that matches nothing yields the sentinel ID, never an error.
func (c *Client) FolderIDByName(ctx context.Context, name, ancestorID string) (string, error) {
	items, err := c.SearchFolders(ctx, name, ancestorID)
	if err != nil {
		return SentinelID, err
	}

	if entry := exactMatch(items, name); entry != nil {
		return entry.ID, nil
	}
	return SentinelID, nil
}

// FolderExistsByName reports whether a folder with exactly the given name exists under
// the ancestor folder.
func (c *Client) FolderExistsByName(ctx context.Context, name, ancestorID string) (bool, error) {
	items, err := c.SearchFolders(ctx, name, ancestorID)
	if err != nil {
		return false, err
	}
	return exactMatch(items, name) != nil, nil
}

// FolderByName returns the full entry of the folder with exactly the given name under
// the ancestor folder, or nil when no exact match exists.
func (c *Client) FolderByName(ctx context.Context, name, ancestorID string) (*Entry, error) {
	items, err := c.SearchFolders(ctx, name, ancestorID)
	if err != nil {
		return nil, err
	}
	return exactMatch(items, name), nil
}
