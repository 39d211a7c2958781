package api

import (
	"bytes"
	"context"
	"crypto/sha1" //nolint:gosec // Box's upload protocol mandates SHA-1 digests
	"encoding/base64"
	"encoding/json"
	"fmt"
	"hash"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
)

// smallUploadLimitKB is the single-request upload ceiling. Box requires resumable
// sessions above 50 MB; the boundary is inclusive on the single-request side.
const smallUploadLimitKB = 50 * 1024

// useSession reports whether a file of the given byte size must go through the
// resumable session protocol. The size is rounded to whole KB first, matching the
// provider's documented limit arithmetic.
func useSession(sizeBytes int64) bool {
	sizeKB := int64(math.Round(float64(sizeBytes) / 1024))
	return sizeKB > smallUploadLimitKB
}

// GeneratedName returns a unique, time-ordered file name carrying the given extension
// (with or without leading dot). Used when an upload supplies no explicit name.
func GeneratedName(ext string) string {
	id := uuid.Must(uuid.NewV7())
	name := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}
	return name
}

// Upload stores the local file under the given parent folder. Files at or below the
// 50 MB threshold use a single multipart request; larger files use a resumable upload
// session with per-chunk integrity digests. When fileName is empty a generated unique
// name with the source file's extension is used.
func (c *Client) Upload(ctx context.Context, localPath, parentID, fileName string) (*Entry, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		return nil, fmt.Errorf("stat upload file failed: %w", err)
	}

	if fileName == "" {
		fileName = GeneratedName(path.Ext(localPath))
	}
	parentID = c.defaultParent(parentID)

	if !useSession(info.Size()) {
		return c.uploadSmall(ctx, localPath, parentID, fileName)
	}
	return c.uploadSession(ctx, localPath, parentID, fileName, info.Size())
}

// uploadSmall issues a single multipart request: an attributes JSON part followed by
// the binary file part.
func (c *Client) uploadSmall(ctx context.Context, localPath, parentID, fileName string) (*Entry, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open upload file failed: %w", err)
	}
	defer func() { _ = f.Close() }()

	attrs, err := json.Marshal(struct {
		Name   string `json:"name"`
		Parent Parent `json:"parent"`
	}{Name: fileName, Parent: Parent{ID: parentID}})
	if err != nil {
		return nil, fmt.Errorf("marshal upload attributes failed: %w", err)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer func() { _ = pw.Close() }()

		fw, err := mw.CreateFormField("attributes")
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := fw.Write(attrs); err != nil {
			pw.CloseWithError(err)
			return
		}

		part, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			pw.CloseWithError(err)
			return
		}

		pw.CloseWithError(mw.Close())
	}()

	req, err := c.newRequest(ctx, http.MethodPost, c.uploadURL+"/files/content", pr, map[string]string{
		"Content-Type": mw.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(resp.StatusCode, body)
	}

	return firstEntry(body)
}

// uploadSession runs the resumable protocol: create a session, PUT the file in
// part_size chunks with Content-Range and per-chunk SHA-1 Digest headers, then commit
// the ordered part descriptors with the whole-file digest.
func (c *Client) uploadSession(ctx context.Context, localPath, parentID, fileName string, fileSize int64) (*Entry, error) {
	session, err := c.createUploadSession(ctx, parentID, fileName, fileSize)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open upload file failed: %w", err)
	}
	defer func() { _ = f.Close() }()

	fileDigest := sha1.New() //nolint:gosec // protocol requirement
	parts, err := c.uploadParts(ctx, session, f, fileSize, fileDigest)
	if err != nil {
		return nil, err
	}

	return c.commitUploadSession(ctx, session, parts, fileDigest)
}

// createUploadSession negotiates a session: the server returns the part size and the
// session-scoped upload_part/commit URLs.
func (c *Client) createUploadSession(ctx context.Context, parentID, fileName string, fileSize int64) (*UploadSession, error) {
	body := struct {
		FolderID string `json:"folder_id"`
		FileName string `json:"file_name"`
		FileSize int64  `json:"file_size"`
	}{FolderID: parentID, FileName: fileName, FileSize: fileSize}

	var session UploadSession
	if err := c.doJSON(ctx, http.MethodPost, c.uploadURL+"/files/upload_sessions", body, &session, nil); err != nil {
		return nil, err
	}
	return &session, nil
}

// uploadParts streams the file sequentially in part_size chunks. Each chunk's offset
// depends on the prior chunk's length, so there is no parallel transmission. The
// running fileDigest accumulates every byte sent for the commit header.
func (c *Client) uploadParts(ctx context.Context, session *UploadSession, f io.Reader, fileSize int64, fileDigest hash.Hash) ([]UploadPart, error) {
	var parts []UploadPart
	var offset int64

	buf := make([]byte, session.PartSize)
	for offset < fileSize {
		n, err := io.ReadFull(f, buf)
		if err != nil && err != io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("read upload chunk failed: %w", err)
		}
		if n == 0 {
			break
		}
		chunk := buf[:n]

		chunkSum := sha1.Sum(chunk) //nolint:gosec // protocol requirement
		digest := base64.StdEncoding.EncodeToString(chunkSum[:])
		_, _ = fileDigest.Write(chunk)

		part, err := c.uploadPart(ctx, session, chunk, offset, fileSize, digest)
		if err != nil {
			return nil, err
		}

		parts = append(parts, *part)
		offset += int64(n)
	}

	return parts, nil
}

// uploadPart PUTs one chunk with its inclusive byte range and digest.
func (c *Client) uploadPart(ctx context.Context, session *UploadSession, chunk []byte, offset, fileSize int64, digest string) (*UploadPart, error) {
	end := offset + int64(len(chunk)) - 1
	headers := map[string]string{
		"Content-Type":  "application/octet-stream",
		"Digest":        "SHA=" + digest,
		"Content-Range": fmt.Sprintf("bytes %d-%d/%d", offset, end, fileSize),
	}

	req, err := c.newRequest(ctx, http.MethodPut, session.SessionEndpoints.UploadPart, bytes.NewReader(chunk), headers)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(resp.StatusCode, body)
	}

	var parsed struct {
		Part UploadPart `json:"part"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode part response failed: %w", err)
	}

	return &parsed.Part, nil
}

// commitUploadSession submits the ordered part descriptors atomically, carrying the
// whole-file digest so the server can verify integrity before finalizing.
func (c *Client) commitUploadSession(ctx context.Context, session *UploadSession, parts []UploadPart, fileDigest hash.Hash) (*Entry, error) {
	body, err := json.Marshal(struct {
		Parts []UploadPart `json:"parts"`
	}{Parts: parts})
	if err != nil {
		return nil, fmt.Errorf("marshal commit request failed: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Digest":       "SHA=" + base64.StdEncoding.EncodeToString(fileDigest.Sum(nil)),
	}

	req, err := c.newRequest(ctx, http.MethodPost, session.SessionEndpoints.Commit, bytes.NewReader(body), headers)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(resp.StatusCode, respBody)
	}

	return firstEntry(respBody)
}

// firstEntry decodes an upload response, which Box returns as a one-element item
// collection, into the finalized file entry.
func firstEntry(body []byte) (*Entry, error) {
	var items ItemCollection
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}
	if len(items.Entries) == 0 {
		return nil, fmt.Errorf("upload response contained no entries")
	}
	return &items.Entries[0], nil
}
