package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(
		StaticTokenProvider("test-token"),
		WithAPIURL(srv.URL),
		WithUploadURL(srv.URL),
		WithHTTPClient(srv.Client()),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *ClientTestSuite) TestAuthorizationHeader() {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, User{ID: "u1", Login: "dev@example.com"})
	}))
	defer srv.Close()

	user, err := newTestClient(srv).User(context.Background())
	s.Require().NoError(err)
	s.Equal("Bearer test-token", gotAuth)
	s.Equal("u1", user.ID)
}

func (s *ClientTestSuite) TestErrorEnvelope() {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "oauth style error",
			status:          http.StatusBadRequest,
			body:            `{"error":"invalid_grant","error_description":"Refresh token has expired"}`,
			expectedCode:    "invalid_grant",
			expectedMessage: "Refresh token has expired",
		},
		{
			name:            "content api style error",
			status:          http.StatusNotFound,
			body:            `{"code":"not_found","message":"Not Found"}`,
			expectedCode:    "not_found",
			expectedMessage: "Not Found",
		},
		{
			name:            "fallbacks when fields absent",
			status:          http.StatusInternalServerError,
			body:            `{}`,
			expectedCode:    "unknown_error",
			expectedMessage: "Box API error",
		},
		{
			name:            "fallbacks when body is not json",
			status:          http.StatusBadGateway,
			body:            `upstream exploded`,
			expectedCode:    "unknown_error",
			expectedMessage: "Box API error",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).Folder(context.Background(), "12345")
			s.Require().Error(err)

			var apiErr *Error
			s.Require().ErrorAs(err, &apiErr)
			s.Equal(tt.expectedCode, apiErr.Code)
			s.Equal(tt.expectedMessage, apiErr.Message)
			s.Equal(tt.status, apiErr.Status)
		})
	}
}

func (s *ClientTestSuite) TestFolderExists() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/folders/100" {
			writeJSON(w, http.StatusOK, Entry{ID: "100", Type: EntryTypeFolder, Name: "reports"})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "not_found", "message": "Not Found"})
	}))
	defer srv.Close()

	c := newTestClient(srv)

	exists, err := c.FolderExists(context.Background(), "100")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = c.FolderExists(context.Background(), "200")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *ClientTestSuite) TestSearchExactMatchFiltering() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/search", r.URL.Path)
		writeJSON(w, http.StatusOK, ItemCollection{
			TotalCount: 2,
			Entries: []Entry{
				{ID: "2", Type: EntryTypeFolder, Name: "report_final"},
				{ID: "1", Type: EntryTypeFolder, Name: "report"},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv)

	id, err := c.FolderIDByName(context.Background(), "report", "0")
	s.Require().NoError(err)
	s.Equal("1", id, "must select the exact name match, never a prefix match")

	exists, err := c.FolderExistsByName(context.Background(), "report", "0")
	s.Require().NoError(err)
	s.True(exists)

	entry, err := c.FolderByName(context.Background(), "report", "0")
	s.Require().NoError(err)
	s.Require().NotNil(entry)
	s.Equal("report", entry.Name)
}

func (s *ClientTestSuite) TestSearchMissYieldsSentinel() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ItemCollection{TotalCount: 1, Entries: []Entry{
			{ID: "9", Type: EntryTypeFile, Name: "report_final.pdf"},
		}})
	}))
	defer srv.Close()

	c := newTestClient(srv)

	id, err := c.FileIDByName(context.Background(), "report.pdf", "0")
	s.Require().NoError(err)
	s.Equal(SentinelID, id, "a miss resolves to the sentinel ID, never an error")

	exists, err := c.FileExistsByName(context.Background(), "report.pdf", "0")
	s.Require().NoError(err)
	s.False(exists)

	entry, err := c.FileByName(context.Background(), "report.pdf", "0")
	s.Require().NoError(err)
	s.Nil(entry)
}

func (s *ClientTestSuite) TestSearchScopingAndExtensionFilter() {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		writeJSON(w, http.StatusOK, ItemCollection{})
	}))
	defer srv.Close()

	c := NewClient(
		StaticTokenProvider("t"),
		WithAPIURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithRootFolderID("42"),
	)

	_, err := c.SearchFiles(context.Background(), "report.pdf", "")
	s.Require().NoError(err)
	s.Equal("file", gotQuery["type"])
	s.Equal("42", gotQuery["ancestor_folder_ids"], "sentinel ancestor falls back to the configured root")
	s.Equal("pdf", gotQuery["file_extensions"])
	s.Equal(`"report.pdf"`, gotQuery["query"])

	_, err = c.SearchFolders(context.Background(), "reports", "77")
	s.Require().NoError(err)
	s.Equal("folder", gotQuery["type"])
	s.Equal("77", gotQuery["ancestor_folder_ids"])
	s.Equal("name,description", gotQuery["content_types"])
}

func (s *ClientTestSuite) TestCopyFileWithRenameIssuesTwoCalls() {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/files/1/copy":
			writeJSON(w, http.StatusCreated, Entry{ID: "2", Type: EntryTypeFile, Name: "report.pdf"})
		case r.Method == http.MethodPut && r.URL.Path == "/files/2":
			var body struct {
				Name string `json:"name"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			writeJSON(w, http.StatusOK, Entry{ID: "2", Type: EntryTypeFile, Name: body.Name})
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"code": "not_found"})
		}
	}))
	defer srv.Close()

	c := newTestClient(srv)

	entry, err := c.CopyFile(context.Background(), "1", "10", "renamed.pdf")
	s.Require().NoError(err)
	s.Equal("renamed.pdf", entry.Name)
	s.Equal([]string{"POST /files/1/copy", "PUT /files/2"}, calls)

	calls = nil
	_, err = c.CopyFile(context.Background(), "1", "10", "")
	s.Require().NoError(err)
	s.Equal([]string{"POST /files/1/copy"}, calls, "no rename call when no new name supplied")
}

func (s *ClientTestSuite) TestMoveFileOptionalRename() {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, Entry{ID: "1", Type: EntryTypeFile, Name: "report.pdf"})
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.MoveFile(context.Background(), "1", "10", "")
	s.Require().NoError(err)
	_, hasName := gotBody["name"]
	s.False(hasName, "name field omitted when not renaming")

	_, err = c.MoveFile(context.Background(), "1", "10", "renamed.pdf")
	s.Require().NoError(err)
	s.Equal("renamed.pdf", gotBody["name"])
}

func (s *ClientTestSuite) TestDeleteSentinelGuards() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Fail("no remote call expected for sentinel deletes")
	}))
	defer srv.Close()

	c := newTestClient(srv)

	err := c.DeleteFile(context.Background(), SentinelID)
	s.Require().Error(err)
	s.True(IsNotFound(err))

	err = c.DeleteFolder(context.Background(), SentinelID)
	s.Require().Error(err)
	s.True(IsNotFound(err))
}

func (s *ClientTestSuite) TestDownload() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/files/5/content" {
			fmt.Fprint(w, "hello box")
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "not_found"})
	}))
	defer srv.Close()

	c := newTestClient(srv)

	rc, err := c.Download(context.Background(), "5")
	s.Require().NoError(err)
	defer func() { _ = rc.Close() }()

	buf := make([]byte, 32)
	n, _ := rc.Read(buf)
	s.Equal("hello box", string(buf[:n]))

	_, err = c.Download(context.Background(), "6")
	s.Require().Error(err)
	s.True(IsNotFound(err))
}

func (s *ClientTestSuite) TestTemporaryLink() {
	var gotBody struct {
		SharedLink struct {
			Access      string `json:"access"`
			UnsharedAt  string `json:"unshared_at"`
			Permissions struct {
				CanDownload bool `json:"can_download"`
				CanPreview  bool `json:"can_preview"`
			} `json:"permissions"`
		} `json:"shared_link"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, Entry{
			ID:         "5",
			Type:       EntryTypeFile,
			Name:       "report.pdf",
			SharedLink: &SharedLink{URL: "https://app.box.com/s/abc"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv)

	entry, err := c.TemporaryLink(context.Background(), "5", 60*time.Second)
	s.Require().NoError(err)
	s.Require().NotNil(entry.SharedLink)
	s.Equal("https://app.box.com/s/abc", entry.SharedLink.URL)
	s.Equal("open", gotBody.SharedLink.Access)
	s.NotEmpty(gotBody.SharedLink.UnsharedAt)
	s.True(gotBody.SharedLink.Permissions.CanDownload)
	s.True(gotBody.SharedLink.Permissions.CanPreview)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
