package box

import (
	"time"

	"github.com/gzai/boxfs/backend/box/api"
	"github.com/gzai/boxfs/options"
)

const (
	optionNameTokenProvider = "tokenProvider"
	optionNameRootFolderID  = "rootFolderID"
	optionNameAPIBaseURL    = "apiBaseURL"
	optionNameUploadBaseURL = "uploadBaseURL"
	optionNameTempDir       = "tempDir"
	optionNameLinkTTL       = "linkTTL"
	optionNameClient        = "client"
)

// WithTokenProvider sets the bearer token source for API authentication.
func WithTokenProvider(provider api.TokenProvider) options.NewFileSystemOption[FileSystem] {
	return &tokenProviderOpt{provider: provider}
}

type tokenProviderOpt struct {
	provider api.TokenProvider
}

func (o *tokenProviderOpt) Apply(fs *FileSystem) {
	fs.options.TokenProvider = o.provider
}

func (o *tokenProviderOpt) NewFileSystemOptionName() string {
	return optionNameTokenProvider
}

// WithAccessToken sets a fixed OAuth2 access token for API authentication.
// Prefer WithTokenProvider wired to an auth.Manager for refresh support.
func WithAccessToken(token string) options.NewFileSystemOption[FileSystem] {
	return &tokenProviderOpt{provider: api.StaticTokenProvider(token)}
}

// WithRootFolderID anchors path resolution at the given folder instead of the
// account root.
func WithRootFolderID(id string) options.NewFileSystemOption[FileSystem] {
	return &rootFolderIDOpt{id: id}
}

type rootFolderIDOpt struct {
	id string
}

func (o *rootFolderIDOpt) Apply(fs *FileSystem) {
	fs.options.RootFolderID = o.id
}

func (o *rootFolderIDOpt) NewFileSystemOptionName() string {
	return optionNameRootFolderID
}

// WithAPIBaseURL overrides the content API base URL.
func WithAPIBaseURL(u string) options.NewFileSystemOption[FileSystem] {
	return &apiBaseURLOpt{url: u}
}

type apiBaseURLOpt struct {
	url string
}

func (o *apiBaseURLOpt) Apply(fs *FileSystem) {
	fs.options.APIBaseURL = o.url
}

func (o *apiBaseURLOpt) NewFileSystemOptionName() string {
	return optionNameAPIBaseURL
}

// WithUploadBaseURL overrides the upload API base URL.
func WithUploadBaseURL(u string) options.NewFileSystemOption[FileSystem] {
	return &uploadBaseURLOpt{url: u}
}

type uploadBaseURLOpt struct {
	url string
}

func (o *uploadBaseURLOpt) Apply(fs *FileSystem) {
	fs.options.UploadBaseURL = o.url
}

func (o *uploadBaseURLOpt) NewFileSystemOptionName() string {
	return optionNameUploadBaseURL
}

// WithTempDir sets the directory for temporary files used during read/write
// operations. Defaults to os.TempDir() if not specified.
func WithTempDir(dir string) options.NewFileSystemOption[FileSystem] {
	return &tempDirOpt{dir: dir}
}

type tempDirOpt struct {
	dir string
}

func (o *tempDirOpt) Apply(fs *FileSystem) {
	fs.options.TempDir = o.dir
}

func (o *tempDirOpt) NewFileSystemOptionName() string {
	return optionNameTempDir
}

// WithLinkTTL sets the lifetime requested for shared links. Default is 60s.
func WithLinkTTL(ttl time.Duration) options.NewFileSystemOption[FileSystem] {
	return &linkTTLOpt{ttl: ttl}
}

type linkTTLOpt struct {
	ttl time.Duration
}

func (o *linkTTLOpt) Apply(fs *FileSystem) {
	fs.options.LinkTTL = o.ttl
}

func (o *linkTTLOpt) NewFileSystemOptionName() string {
	return optionNameLinkTTL
}

// WithClient sets a custom Box client. Useful for testing or when you need
// to provide a pre-configured client.
func WithClient(client Client) options.NewFileSystemOption[FileSystem] {
	return &clientOpt{client: client}
}

type clientOpt struct {
	client Client
}

func (o *clientOpt) Apply(fs *FileSystem) {
	fs.client = o.client
}

func (o *clientOpt) NewFileSystemOptionName() string {
	return optionNameClient
}
