package api

import "time"

// EntryTypeFile and EntryTypeFolder are the entry discriminators used by the Box items
// and search endpoints.
const (
	EntryTypeFile   = "file"
	EntryTypeFolder = "folder"
)

// Parent identifies the folder containing an entry.
type Parent struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// SharedLink is the shared-link block attached to a file entry after a link request.
type SharedLink struct {
	URL         string     `json:"url"`
	DownloadURL string     `json:"download_url,omitempty"`
	Access      string     `json:"access,omitempty"`
	UnsharedAt  *time.Time `json:"unshared_at,omitempty"`
}

// Entry is the transient record returned by Box folder, file, listing, and search calls.
type Entry struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Name       string      `json:"name"`
	Size       int64       `json:"size,omitempty"`
	ModifiedAt *time.Time  `json:"modified_at,omitempty"`
	CreatedAt  *time.Time  `json:"created_at,omitempty"`
	Parent     *Parent     `json:"parent,omitempty"`
	SharedLink *SharedLink `json:"shared_link,omitempty"`
}

// ItemCollection is the paged collection shape shared by the items and search endpoints.
type ItemCollection struct {
	TotalCount int     `json:"total_count"`
	Entries    []Entry `json:"entries"`
}

// User is the authenticated Box user as reported by /users/me.
type User struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Login string `json:"login"`
}

// sessionEndpoints carries the per-session URLs returned when an upload session is created.
type sessionEndpoints struct {
	UploadPart string `json:"upload_part"`
	Commit     string `json:"commit"`
}

// UploadSession describes a resumable upload session: where to send parts, where to
// commit, and the server-negotiated part size. It lives only for the duration of one
// large-file upload.
type UploadSession struct {
	ID               string           `json:"id"`
	PartSize         int64            `json:"part_size"`
	TotalParts       int              `json:"total_parts"`
	SessionEndpoints sessionEndpoints `json:"session_endpoints"`
}

// UploadPart is the descriptor the server returns for each transmitted chunk. The
// ordered sequence of descriptors is submitted at commit.
type UploadPart struct {
	PartID string `json:"part_id"`
	Offset int64  `json:"offset"`
	Size   int64  `json:"size"`
	SHA1   string `json:"sha1"`
}
