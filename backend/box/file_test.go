package box

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gzai/boxfs"
	"github.com/gzai/boxfs/backend/box/api"
	"github.com/gzai/boxfs/backend/box/mocks"
)

type FileTestSuite struct {
	suite.Suite
	mockClient *mocks.Client
	fs         *FileSystem
	location   *Location
	file       *File
}

func (s *FileTestSuite) SetupTest() {
	s.mockClient = mocks.NewClient(s.T())

	opts := NewOptions()
	opts.TempDir = s.T().TempDir()

	s.fs = &FileSystem{
		client:  s.mockClient,
		options: opts,
	}
	s.location = &Location{
		fileSystem: s.fs,
		path:       "/projects/alpha/",
	}
	s.file = &File{
		location: s.location,
		path:     "/projects/alpha/report.pdf",
	}
}

// expectResolve primes the parent-folder resolution every file operation runs:
// the parent segment "alpha" searched under the root, yielding folder 33.
func (s *FileTestSuite) expectResolve() {
	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "alpha", "0").
		Return("33", nil)
}

func (s *FileTestSuite) TestName() {
	s.Equal("report.pdf", s.file.Name())
}

func (s *FileTestSuite) TestPath() {
	s.Equal("/projects/alpha/report.pdf", s.file.Path())
}

func (s *FileTestSuite) TestURI() {
	uri := s.file.URI()
	s.Contains(uri, "box://")
	s.Contains(uri, "/projects/alpha/report.pdf")
}

func (s *FileTestSuite) TestExists() {
	s.Run("Success - file exists", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileExistsByName(mock.Anything, "report.pdf", "33").
			Return(true, nil).
			Once()

		exists, err := s.file.Exists()
		s.Require().NoError(err)
		s.True(exists)
	})

	s.Run("Success - file does not exist", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileExistsByName(mock.Anything, "report.pdf", "33").
			Return(false, nil).
			Once()

		exists, err := s.file.Exists()
		s.Require().NoError(err)
		s.False(exists)
	})
}

func (s *FileTestSuite) TestSize() {
	s.Run("Success - returns file size", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileByName(mock.Anything, "report.pdf", "33").
			Return(&api.Entry{ID: "99", Type: api.EntryTypeFile, Name: "report.pdf", Size: 4096}, nil).
			Once()

		size, err := s.file.Size()
		s.Require().NoError(err)
		s.Equal(uint64(4096), size)
	})

	s.Run("Error - missing file", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileByName(mock.Anything, "report.pdf", "33").
			Return(nil, nil).
			Once()

		_, err := s.file.Size()
		s.Require().ErrorIs(err, boxfs.ErrNotExist)
	})
}

func (s *FileTestSuite) TestLastModified() {
	modified := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)

	s.expectResolve()
	s.mockClient.EXPECT().
		FileByName(mock.Anything, "report.pdf", "33").
		Return(&api.Entry{ID: "99", Type: api.EntryTypeFile, Name: "report.pdf", ModifiedAt: &modified}, nil).
		Once()

	got, err := s.file.LastModified()
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(modified, *got)
}

func (s *FileTestSuite) TestMimeType() {
	mimeType, err := s.file.MimeType()
	s.Require().NoError(err)
	s.Equal("application/pdf", mimeType)
}

func (s *FileTestSuite) TestVisibility() {
	visibility, err := s.file.Visibility()
	s.Require().NoError(err)
	s.Equal(boxfs.VisibilityPrivate, visibility)
}

func (s *FileTestSuite) TestURL() {
	s.Run("Success - returns link URL", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileByName(mock.Anything, "report.pdf", "33").
			Return(&api.Entry{ID: "99", Type: api.EntryTypeFile, Name: "report.pdf"}, nil).
			Once()
		s.mockClient.EXPECT().
			TemporaryLink(mock.Anything, "99", 60*time.Second).
			Return(&api.Entry{
				ID:         "99",
				SharedLink: &api.SharedLink{URL: "https://app.box.com/s/abc"},
			}, nil).
			Once()

		url, err := s.file.URL()
		s.Require().NoError(err)
		s.Equal("https://app.box.com/s/abc", url)
	})

	s.Run("Success - no link in response yields empty string", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileByName(mock.Anything, "report.pdf", "33").
			Return(&api.Entry{ID: "99", Type: api.EntryTypeFile, Name: "report.pdf"}, nil).
			Once()
		s.mockClient.EXPECT().
			TemporaryLink(mock.Anything, "99", 60*time.Second).
			Return(&api.Entry{ID: "99"}, nil).
			Once()

		url, err := s.file.URL()
		s.Require().NoError(err)
		s.Empty(url)
	})

	s.Run("Success - unresolved file yields empty string, not an error", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileByName(mock.Anything, "report.pdf", "33").
			Return(nil, nil).
			Once()

		url, err := s.file.URL()
		s.Require().NoError(err)
		s.Empty(url)
	})
}

func (s *FileTestSuite) TestRead() {
	s.expectResolve()
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return("99", nil).
		Once()
	s.mockClient.EXPECT().
		Download(mock.Anything, "99").
		Return(io.NopCloser(strings.NewReader("file content")), nil).
		Once()

	data, err := io.ReadAll(s.file)
	s.Require().NoError(err)
	s.Equal("file content", string(data))

	s.Require().NoError(s.file.Close())
}

func (s *FileTestSuite) TestWriteUploadsOnClose() {
	s.expectResolve()
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return(api.SentinelID, nil).
		Once()

	s.mockClient.EXPECT().
		Upload(mock.Anything, mock.Anything, "33", "report.pdf").
		Run(func(_ context.Context, localPath, _, _ string) {
			staged, err := os.ReadFile(localPath)
			s.Require().NoError(err)
			s.Equal("fresh content", string(staged), "the staged temp file must hold the written bytes")
		}).
		Return(&api.Entry{ID: "100", Type: api.EntryTypeFile, Name: "report.pdf"}, nil).
		Once()

	n, err := s.file.Write([]byte("fresh content"))
	s.Require().NoError(err)
	s.Equal(13, n)

	s.Require().NoError(s.file.Close())
}

func (s *FileTestSuite) TestWriteReplacesExistingFile() {
	s.expectResolve()
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return("99", nil).
		Once()
	s.mockClient.EXPECT().
		DeleteFile(mock.Anything, "99").
		Return(nil).
		Once()
	s.mockClient.EXPECT().
		Upload(mock.Anything, mock.Anything, "33", "report.pdf").
		Return(&api.Entry{ID: "100", Type: api.EntryTypeFile, Name: "report.pdf"}, nil).
		Once()

	_, err := s.file.Write([]byte("replacement"))
	s.Require().NoError(err)

	s.Require().NoError(s.file.Close())
}

func (s *FileTestSuite) TestCloseCleansUpTempFileOnUploadFailure() {
	s.expectResolve()
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return(api.SentinelID, nil).
		Once()
	s.mockClient.EXPECT().
		Upload(mock.Anything, mock.Anything, "33", "report.pdf").
		Return(nil, &api.Error{Code: "upload_failed", Message: "boom", Status: 502}).
		Once()

	_, err := s.file.Write([]byte("doomed content"))
	s.Require().NoError(err)

	err = s.file.Close()
	s.Require().Error(err)

	entries, readErr := os.ReadDir(s.fs.options.TempDir)
	s.Require().NoError(readErr)
	s.Empty(entries, "staging temp file must be removed even when the upload fails")
}

func (s *FileTestSuite) TestSeekAndReadBack() {
	s.expectResolve()
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return(api.SentinelID, nil).
		Once()
	s.mockClient.EXPECT().
		Upload(mock.Anything, mock.Anything, "33", "report.pdf").
		Return(&api.Entry{ID: "100", Type: api.EntryTypeFile, Name: "report.pdf"}, nil).
		Once()

	_, err := s.file.Write([]byte("hello world"))
	s.Require().NoError(err)

	pos, err := s.file.Seek(6, io.SeekStart)
	s.Require().NoError(err)
	s.Equal(int64(6), pos)

	buf := make([]byte, 5)
	n, err := s.file.Read(buf)
	s.Require().NoError(err)
	s.Equal("world", string(buf[:n]))

	s.Require().NoError(s.file.Close())
}

func (s *FileTestSuite) TestSeekNonExistentFileFails() {
	s.expectResolve()
	s.mockClient.EXPECT().
		FileExistsByName(mock.Anything, "report.pdf", "33").
		Return(false, nil).
		Once()

	_, err := s.file.Seek(0, io.SeekStart)
	s.Require().Error(err)
}

func (s *FileTestSuite) TestDelete() {
	s.expectResolve()
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return("99", nil).
		Once()
	s.mockClient.EXPECT().
		DeleteFile(mock.Anything, "99").
		Return(nil).
		Once()

	s.Require().NoError(s.file.Delete())
}

func (s *FileTestSuite) TestTouch() {
	s.Run("existing file is a no-op", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileExistsByName(mock.Anything, "report.pdf", "33").
			Return(true, nil).
			Once()

		s.Require().NoError(s.file.Touch())
	})

	s.Run("missing file is created empty", func() {
		s.expectResolve()
		s.mockClient.EXPECT().
			FileExistsByName(mock.Anything, "report.pdf", "33").
			Return(false, nil).
			Once()
		s.mockClient.EXPECT().
			FileIDByName(mock.Anything, "report.pdf", "33").
			Return(api.SentinelID, nil).
			Once()
		s.mockClient.EXPECT().
			Upload(mock.Anything, mock.Anything, "33", "report.pdf").
			Return(&api.Entry{ID: "100", Type: api.EntryTypeFile, Name: "report.pdf", Size: 0}, nil).
			Once()

		s.Require().NoError(s.file.Touch())
	})
}

func (s *FileTestSuite) TestCopyToFileNative() {
	target := &File{
		location: &Location{fileSystem: s.fs, path: "/projects/beta/"},
		path:     "/projects/beta/renamed.pdf",
	}

	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "alpha", "0").
		Return("33", nil)
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "beta", "0").
		Return("77", nil)
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return("99", nil).
		Once()
	s.mockClient.EXPECT().
		FileExistsByName(mock.Anything, "renamed.pdf", "77").
		Return(false, nil).
		Once()
	s.mockClient.EXPECT().
		CopyFile(mock.Anything, "99", "77", "renamed.pdf").
		Return(&api.Entry{ID: "101", Type: api.EntryTypeFile, Name: "renamed.pdf"}, nil).
		Once()

	s.Require().NoError(s.file.CopyToFile(target))
}

func (s *FileTestSuite) TestCopyToFileSameNameOmitsRename() {
	target := &File{
		location: &Location{fileSystem: s.fs, path: "/projects/beta/"},
		path:     "/projects/beta/report.pdf",
	}

	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "alpha", "0").
		Return("33", nil)
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "beta", "0").
		Return("77", nil)
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return("99", nil).
		Once()
	s.mockClient.EXPECT().
		FileExistsByName(mock.Anything, "report.pdf", "77").
		Return(false, nil).
		Once()
	s.mockClient.EXPECT().
		CopyFile(mock.Anything, "99", "77", "").
		Return(&api.Entry{ID: "101", Type: api.EntryTypeFile, Name: "report.pdf"}, nil).
		Once()

	s.Require().NoError(s.file.CopyToFile(target))
}

func (s *FileTestSuite) TestMoveToFileNative() {
	target := &File{
		location: &Location{fileSystem: s.fs, path: "/projects/beta/"},
		path:     "/projects/beta/renamed.pdf",
	}

	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "alpha", "0").
		Return("33", nil)
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "beta", "0").
		Return("77", nil)
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return("99", nil).
		Once()
	s.mockClient.EXPECT().
		MoveFile(mock.Anything, "99", "77", "renamed.pdf").
		Return(&api.Entry{ID: "99", Type: api.EntryTypeFile, Name: "renamed.pdf"}, nil).
		Once()

	s.Require().NoError(s.file.MoveToFile(target))
}

func (s *FileTestSuite) TestCopyToFileNonZeroCursorRejected() {
	s.file.cursorPos = 10

	target := &File{
		location: &Location{fileSystem: s.fs, path: "/projects/beta/"},
		path:     "/projects/beta/report.pdf",
	}

	err := s.file.CopyToFile(target)
	s.Require().ErrorIs(err, boxfs.ErrCopyToNotPossible)
}

func (s *FileTestSuite) TestCopyToLocation() {
	loc := &Location{fileSystem: s.fs, path: "/projects/beta/"}

	s.mockClient.EXPECT().RootFolderID().Return("0")
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "alpha", "0").
		Return("33", nil)
	s.mockClient.EXPECT().
		FolderIDByName(mock.Anything, "beta", "0").
		Return("77", nil)
	s.mockClient.EXPECT().
		FileIDByName(mock.Anything, "report.pdf", "33").
		Return("99", nil).
		Once()
	s.mockClient.EXPECT().
		FileExistsByName(mock.Anything, "report.pdf", "77").
		Return(false, nil).
		Once()
	s.mockClient.EXPECT().
		CopyFile(mock.Anything, "99", "77", "").
		Return(&api.Entry{ID: "101", Type: api.EntryTypeFile, Name: "report.pdf"}, nil).
		Once()

	newFile, err := s.file.CopyToLocation(loc)
	s.Require().NoError(err)
	s.Equal("/projects/beta/report.pdf", newFile.Path())
}

func TestFileTestSuite(t *testing.T) {
	suite.Run(t, new(FileTestSuite))
}
