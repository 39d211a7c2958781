package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// File returns the file entry for the given ID.
func (c *Client) File(ctx context.Context, fileID string) (*Entry, error) {
	var entry Entry
	if err := c.doJSON(ctx, http.MethodGet, c.apiURL+"/files/"+fileID, nil, &entry, nil); err != nil {
		return nil, err
	}
	return &entry, nil
}

// FileExists reports whether a file with the given ID exists.
func (c *Client) FileExists(ctx context.Context, fileID string) (bool, error) {
	_, err := c.File(ctx, fileID)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RenameFile renames the file with the given ID.
func (c *Client) RenameFile(ctx context.Context, fileID, newName string) (*Entry, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: newName}

	var entry Entry
	if err := c.doJSON(ctx, http.MethodPut, c.apiURL+"/files/"+fileID, body, &entry, nil); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CopyFile copies the file into the given parent folder. When newName is non-empty the
// copy is renamed in a second call; the provider's copy endpoint has no name field.
func (c *Client) CopyFile(ctx context.Context, fileID, parentID, newName string) (*Entry, error) {
	body := struct {
		Parent Parent `json:"parent"`
	}{Parent: Parent{ID: parentID}}

	var entry Entry
	if err := c.doJSON(ctx, http.MethodPost, c.apiURL+"/files/"+fileID+"/copy", body, &entry, nil); err != nil {
		return nil, err
	}

	if newName != "" {
		return c.RenameFile(ctx, entry.ID, newName)
	}
	return &entry, nil
}

// MoveFile moves the file into the given parent folder, optionally renaming it in the
// same call.
func (c *Client) MoveFile(ctx context.Context, fileID, parentID, newName string) (*Entry, error) {
	body := map[string]any{
		"parent": Parent{ID: parentID},
	}
	if newName != "" {
		body["name"] = newName
	}

	var entry Entry
	if err := c.doJSON(ctx, http.MethodPut, c.apiURL+"/files/"+fileID, body, &entry, nil); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteFile deletes the file with the given ID. Deleting the sentinel ID fails
// immediately with a not-found envelope rather than issuing a remote call.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if fileID == SentinelID {
		return &Error{Code: "not_found", Message: "File is not found!", Status: http.StatusNotFound}
	}
	return c.doJSON(ctx, http.MethodDelete, c.apiURL+"/files/"+fileID, nil, nil, nil)
}

// SearchFiles runs the provider's full-text search for files with the given name,
// scoped under the ancestor folder and filtered by the name's extension.
func (c *Client) SearchFiles(ctx context.Context, name, ancestorID string) (*ItemCollection, error) {
	q := url.Values{}
	q.Set("type", EntryTypeFile)
	q.Set("ancestor_folder_ids", c.defaultParent(ancestorID))
	q.Set("content_types", "name")
	if ext := strings.TrimPrefix(path.Ext(name), "."); ext != "" {
		q.Set("file_extensions", ext)
	}
	q.Set("query", `"`+path.Base(name)+`"`)

	var items ItemCollection
	if err := c.doJSON(ctx, http.MethodGet, c.apiURL+"/search?"+q.Encode(), nil, &items, nil); err != nil {
		return nil, err
	}
	return &items, nil
}

// FileIDByName resolves a file name to an ID by scoped search with exact-match
// filtering. A search that matches nothing yields the sentinel ID, never an error.
func (c *Client) FileIDByName(ctx context.Context, name, ancestorID string) (string, error) {
	items, err := c.SearchFiles(ctx, name, ancestorID)
	if err != nil {
		return SentinelID, err
	}

	if entry := exactMatch(items, name); entry != nil {
		return entry.ID, nil
	}
	return SentinelID, nil
}

// FileExistsByName reports whether a file with exactly the given name exists under the
// ancestor folder.
func (c *Client) FileExistsByName(ctx context.Context, name, ancestorID string) (bool, error) {
	items, err := c.SearchFiles(ctx, name, ancestorID)
	if err != nil {
		return false, err
	}
	return exactMatch(items, name) != nil, nil
}

// FileByName returns the full entry of the file with exactly the given name under the
// ancestor folder, or nil when no exact match exists.
func (c *Client) FileByName(ctx context.Context, name, ancestorID string) (*Entry, error) {
	items, err := c.SearchFiles(ctx, name, ancestorID)
	if err != nil {
		return nil, err
	}
	return exactMatch(items, name), nil
}

// Download streams the content of the file with the given ID. The caller owns the
// returned ReadCloser.
func (c *Client) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.apiURL+"/files/"+fileID+"/content", nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("read error response failed: %w", readErr)
		}
		return nil, parseError(resp.StatusCode, body)
	}

	return resp.Body, nil
}

// DownloadTo downloads the file into the given directory (created when absent), naming
// it after the remote entry, and returns the local path.
func (c *Client) DownloadTo(ctx context.Context, fileID, dir string) (string, error) {
	entry, err := c.File(ctx, fileID)
	if err != nil {
		return "", err
	}

	body, err := c.Download(ctx, fileID)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory failed: %w", err)
	}

	savePath := filepath.Join(dir, entry.Name)
	out, err := os.Create(savePath)
	if err != nil {
		return "", fmt.Errorf("create download file failed: %w", err)
	}

	if _, err := io.Copy(out, body); err != nil {
		_ = out.Close()
		_ = os.Remove(savePath)
		return "", fmt.Errorf("save download failed: %w", err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close download file failed: %w", err)
	}

	return savePath, nil
}

// TemporaryLink sets an open shared link on the file, expiring after ttl, with
// download and preview permissions, and returns the updated entry.
func (c *Client) TemporaryLink(ctx context.Context, fileID string, ttl time.Duration) (*Entry, error) {
	type permissions struct {
		CanDownload bool `json:"can_download"`
		CanPreview  bool `json:"can_preview"`
	}
	type sharedLinkReq struct {
		Access      string      `json:"access"`
		UnsharedAt  string      `json:"unshared_at"`
		Permissions permissions `json:"permissions"`
	}
	body := struct {
		SharedLink sharedLinkReq `json:"shared_link"`
	}{
		SharedLink: sharedLinkReq{
			Access:      "open",
			UnsharedAt:  time.Now().Add(ttl).Format(time.RFC3339),
			Permissions: permissions{CanDownload: true, CanPreview: true},
		},
	}

	var entry Entry
	if err := c.doJSON(ctx, http.MethodPut, c.apiURL+"/files/"+fileID, body, &entry, nil); err != nil {
		return nil, err
	}
	return &entry, nil
}
