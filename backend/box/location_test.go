package box

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gzai/boxfs"
	"github.com/gzai/boxfs/backend/box/api"
	"github.com/gzai/boxfs/backend/box/mocks"
)

type LocationTestSuite struct {
	suite.Suite
	mockClient *mocks.Client
	fs         *FileSystem
	location   *Location
}

func (s *LocationTestSuite) SetupTest() {
	s.mockClient = mocks.NewClient(s.T())
	s.fs = &FileSystem{
		client:  s.mockClient,
		options: NewOptions(),
	}
	s.location = &Location{
		fileSystem: s.fs,
		path:       "/projects/alpha/",
	}
}

func (s *LocationTestSuite) TestPath() {
	s.Equal("/projects/alpha/", s.location.Path())
}

func (s *LocationTestSuite) TestURI() {
	uri := s.location.URI()
	s.Contains(uri, "box://")
	s.Contains(uri, "/projects/alpha/")
}

func (s *LocationTestSuite) TestList() {
	s.Run("Success - files only", func() {
		s.mockClient.EXPECT().RootFolderID().Return("0")
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "projects", "0").
			Return("11", nil).
			Once()
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "alpha", "11").
			Return("33", nil).
			Once()
		s.mockClient.EXPECT().
			FolderItems(mock.Anything, "33").
			Return(&api.ItemCollection{
				TotalCount: 3,
				Entries: []api.Entry{
					{ID: "1", Type: api.EntryTypeFile, Name: "a.txt"},
					{ID: "2", Type: api.EntryTypeFolder, Name: "sub"},
					{ID: "3", Type: api.EntryTypeFile, Name: "b.csv"},
				},
			}, nil).
			Once()

		names, err := s.location.List()
		s.Require().NoError(err)
		s.Equal([]string{"a.txt", "b.csv"}, names)
	})

	s.Run("Success - unresolved folder lists as empty", func() {
		s.mockClient.EXPECT().RootFolderID().Return("0")
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "projects", "0").
			Return("11", nil).
			Once()
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "alpha", "11").
			Return(api.SentinelID, nil).
			Once()

		names, err := s.location.List()
		s.Require().NoError(err)
		s.Empty(names)
	})
}

func (s *LocationTestSuite) TestContents() {
	modified := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)

	s.Run("flat listing maps attributes", func() {
		s.mockClient.EXPECT().RootFolderID().Return("0")
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "projects", "0").
			Return("11", nil).
			Once()
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "alpha", "11").
			Return("33", nil).
			Once()
		s.mockClient.EXPECT().
			FolderItems(mock.Anything, "33").
			Return(&api.ItemCollection{
				TotalCount: 2,
				Entries: []api.Entry{
					{ID: "1", Type: api.EntryTypeFile, Name: "report.pdf", Size: 2048, ModifiedAt: &modified},
					{ID: "2", Type: api.EntryTypeFolder, Name: "sub"},
				},
			}, nil).
			Once()

		attrs, err := s.location.Contents(false)
		s.Require().NoError(err)
		s.Require().Len(attrs, 2)

		s.Equal("projects/alpha/report.pdf", attrs[0].Path)
		s.Equal(boxfs.EntryTypeFile, attrs[0].Type)
		s.Equal(int64(2048), attrs[0].Size)
		s.Equal("application/pdf", attrs[0].MimeType)
		s.Equal(boxfs.VisibilityPrivate, attrs[0].Visibility)
		s.Require().NotNil(attrs[0].LastModified)
		s.Equal(modified, *attrs[0].LastModified)

		s.Equal("projects/alpha/sub", attrs[1].Path)
		s.True(attrs[1].IsDir())
		s.Zero(attrs[1].Size)
		s.Empty(attrs[1].MimeType)
	})

	s.Run("recursive walk merges children and suppresses duplicates", func() {
		s.mockClient.EXPECT().RootFolderID().Return("0")
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "projects", "0").
			Return("11", nil).
			Once()
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "alpha", "11").
			Return("33", nil).
			Once()
		s.mockClient.EXPECT().
			FolderItems(mock.Anything, "33").
			Return(&api.ItemCollection{
				TotalCount: 3,
				Entries: []api.Entry{
					{ID: "1", Type: api.EntryTypeFile, Name: "a.txt"},
					{ID: "1b", Type: api.EntryTypeFile, Name: "a.txt"},
					{ID: "2", Type: api.EntryTypeFolder, Name: "sub"},
				},
			}, nil).
			Once()
		s.mockClient.EXPECT().
			FolderItems(mock.Anything, "2").
			Return(&api.ItemCollection{
				TotalCount: 1,
				Entries: []api.Entry{
					{ID: "3", Type: api.EntryTypeFile, Name: "c.txt"},
				},
			}, nil).
			Once()

		attrs, err := s.location.Contents(true)
		s.Require().NoError(err)

		paths := make([]string, len(attrs))
		for i, a := range attrs {
			paths[i] = a.Path
		}
		s.Equal([]string{
			"projects/alpha/a.txt",
			"projects/alpha/sub",
			"projects/alpha/sub/c.txt",
		}, paths, "duplicate paths must appear once, children after their parent")
	})
}

func (s *LocationTestSuite) TestExists() {
	s.Run("root always exists", func() {
		root := &Location{fileSystem: s.fs, path: "/"}
		exists, err := root.Exists()
		s.Require().NoError(err)
		s.True(exists)
	})

	s.Run("leaf checked under its resolved parent", func() {
		s.mockClient.EXPECT().RootFolderID().Return("0")
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "projects", "0").
			Return("11", nil).
			Once()
		s.mockClient.EXPECT().
			FolderExistsByName(mock.Anything, "alpha", "11").
			Return(true, nil).
			Once()

		exists, err := s.location.Exists()
		s.Require().NoError(err)
		s.True(exists)
	})

	s.Run("same name elsewhere does not count", func() {
		// an "alpha" folder exists somewhere under the root, but not under
		// /projects/; the scoped check must come back false
		s.mockClient.EXPECT().RootFolderID().Return("0")
		s.mockClient.EXPECT().
			FolderIDByName(mock.Anything, "projects", "0").
			Return("11", nil).
			Once()
		s.mockClient.EXPECT().
			FolderExistsByName(mock.Anything, "alpha", "11").
			Return(false, nil).
			Once()

		exists, err := s.location.Exists()
		s.Require().NoError(err)
		s.False(exists)
	})
}

func (s *LocationTestSuite) TestMkdir() {
	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "projects", "0").
		Return("11", nil).
		Once()
	s.mockClient.EXPECT().
		CreateFolder(mock.Anything, "alpha", "11").
		Return(&api.Entry{ID: "33", Type: api.EntryTypeFolder, Name: "alpha"}, nil).
		Once()

	s.Require().NoError(s.location.Mkdir())
}

func (s *LocationTestSuite) TestMkdirParentFallsBackToRoot() {
	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "projects", "0").
		Return(api.SentinelID, nil).
		Once()
	s.mockClient.EXPECT().
		CreateFolder(mock.Anything, "alpha", "0").
		Return(&api.Entry{ID: "33", Type: api.EntryTypeFolder, Name: "alpha"}, nil).
		Once()

	s.Require().NoError(s.location.Mkdir())
}

func (s *LocationTestSuite) TestDelete() {
	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "projects", "0").
		Return("11", nil).
		Once()
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "alpha", "11").
		Return("33", nil).
		Once()
	s.mockClient.EXPECT().
		DeleteFolder(mock.Anything, "33").
		Return(nil).
		Once()

	s.Require().NoError(s.location.Delete())
}

func (s *LocationTestSuite) TestDeleteScopedToParent() {
	// the leaf search runs under the resolved parent; a miss there yields the
	// sentinel even when a same-named folder exists in another subtree, and
	// the provider rejects the sentinel delete
	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "projects", "0").
		Return("11", nil).
		Once()
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "alpha", "11").
		Return(api.SentinelID, nil).
		Once()
	s.mockClient.EXPECT().
		DeleteFolder(mock.Anything, api.SentinelID).
		Return(&api.Error{Code: "not_found", Message: "Not Found", Status: 404}).
		Once()

	s.Require().Error(s.location.Delete())
}

func (s *LocationTestSuite) TestNewLocation() {
	s.Run("relative join", func() {
		loc, err := s.location.NewLocation("beta/")
		s.Require().NoError(err)
		s.Equal("/projects/alpha/beta/", loc.Path())
	})

	s.Run("leading slash rejected", func() {
		_, err := s.location.NewLocation("/beta/")
		s.Require().Error(err)
	})

	s.Run("empty rejected", func() {
		_, err := s.location.NewLocation("")
		s.Require().ErrorIs(err, errPathRequired)
	})
}

func (s *LocationTestSuite) TestNewFile() {
	s.Run("same directory", func() {
		file, err := s.location.NewFile("notes.md")
		s.Require().NoError(err)
		s.Equal("/projects/alpha/notes.md", file.Path())
		s.Equal("/projects/alpha/", file.Location().Path())
	})

	s.Run("nested path", func() {
		file, err := s.location.NewFile("sub/notes.md")
		s.Require().NoError(err)
		s.Equal("/projects/alpha/sub/notes.md", file.Path())
		s.Equal("/projects/alpha/sub/", file.Location().Path())
	})

	s.Run("trailing slash rejected", func() {
		_, err := s.location.NewFile("notes/")
		s.Require().Error(err)
	})
}

func TestLocationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationTestSuite))
}
