package box

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config carries the Box application settings consumed by the auth flow and the
// bundled tools. Values come from the environment (BOX_* variables) or an
// optional config file.
type Config struct {
	ClientID     string `mapstructure:"client_id" validate:"required"`
	ClientSecret string `mapstructure:"client_secret" validate:"required"`
	RedirectURL  string `mapstructure:"redirect_url" validate:"required,url"`

	AuthorizeURL string `mapstructure:"authorize_url" validate:"required,url"`
	TokenURL     string `mapstructure:"token_url" validate:"required,url"`
	APIURL       string `mapstructure:"api_url" validate:"omitempty,url"`
	UploadURL    string `mapstructure:"upload_url" validate:"omitempty,url"`

	// UserScoped stores one token grant per user instead of a single
	// application-wide grant.
	UserScoped bool `mapstructure:"user_scoped"`

	// RedirectCallback makes the OAuth callback answer with a redirect to
	// RedirectCallbackURL instead of a JSON body.
	RedirectCallback    bool   `mapstructure:"redirect_callback"`
	RedirectCallbackURL string `mapstructure:"redirect_callback_url" validate:"required_if=RedirectCallback true,omitempty,url"`

	// DownloadDir receives files fetched by ID-based download helpers.
	DownloadDir string `mapstructure:"download_dir"`

	// RootFolderID anchors path resolution. Defaults to the account root.
	RootFolderID string `mapstructure:"root_folder_id"`

	// TokenDB is the SQLite file holding persisted token grants.
	TokenDB string `mapstructure:"token_db"`
}

// LoadConfig reads configuration from the environment and, when path is
// non-empty, the named config file. Environment variables use the BOX_ prefix:
// BOX_CLIENT_ID, BOX_CLIENT_SECRET, and so on.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("BOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("authorize_url", "https://account.box.com/api/oauth2/authorize")
	v.SetDefault("token_url", "https://api.box.com/oauth2/token")
	v.SetDefault("root_folder_id", "0")
	v.SetDefault("token_db", "box_tokens.db")

	// AutomaticEnv alone does not surface keys into Unmarshal; bind each one.
	for _, key := range []string{
		"client_id", "client_secret", "redirect_url",
		"authorize_url", "token_url", "api_url", "upload_url",
		"user_scoped", "redirect_callback", "redirect_callback_url",
		"download_dir", "root_folder_id", "token_db",
	} {
		_ = v.BindEnv(key)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
