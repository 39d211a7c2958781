package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/urfave/cli"

	"github.com/gzai/boxfs/backend"
	"github.com/gzai/boxfs/backend/box"
	"github.com/gzai/boxfs/backend/box/api"
	"github.com/gzai/boxfs/backend/box/auth"
	"github.com/gzai/boxfs/boxsimple"
)

var (
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

func main() {
	app := cli.NewApp()
	app.Name = "boxcp"
	app.Usage = "Copies files between the local filesystem and Box, and manages the Box token grant"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "path to a config file (else BOX_* environment variables)",
			EnvVar: "BOXCP_CONFIG",
		},
		cli.StringFlag{
			Name:   "token",
			Usage:  "fixed access token, bypassing the stored grant",
			EnvVar: "BOXFS_ACCESS_TOKEN",
		},
		cli.StringFlag{
			Name:  "root",
			Usage: "folder ID anchoring box:// path resolution",
			Value: "0",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "cp",
			Usage:     "copy a file, e.g. boxcp cp ./report.pdf box:///reports/report.pdf",
			ArgsUsage: "SOURCE TARGET",
			Action:    copyAction,
		},
		{
			Name:   "login",
			Usage:  "run the authorization flow and persist the token grant",
			Action: loginAction,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "listen",
					Usage: "address for the local callback server",
					Value: "localhost:8385",
				},
			},
		},
		{
			Name:   "refresh",
			Usage:  "force a refresh of the stored token grant",
			Action: refreshAction,
		},
		{
			Name:   "whoami",
			Usage:  "print the Box account the stored grant belongs to",
			Action: whoamiAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		failure.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func copyAction(c *cli.Context) error {
	src := c.Args().Get(0)
	dst := c.Args().Get(1)
	if src == "" || dst == "" {
		return errors.New("cp requires 2 non-empty arguments")
	}

	cleanup, err := registerFileSystem(c)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Copying %s to %s\n", src, dst)

	switch {
	case isBoxURI(src) && isBoxURI(dst):
		return copyBoxToBox(src, dst)
	case isBoxURI(src):
		return copyBoxToLocal(src, dst)
	case isBoxURI(dst):
		return copyLocalToBox(src, dst)
	default:
		return errors.New("at least one argument must be a box:// uri")
	}
}

func isBoxURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme == box.Scheme
}

// registerFileSystem replaces the default box filesystem with one configured
// from the command line: a fixed token when given, otherwise the stored grant.
func registerFileSystem(c *cli.Context) (cleanup func(), err error) {
	cleanup = func() {}

	var provider api.TokenProvider
	if token := c.GlobalString("token"); token != "" {
		provider = api.StaticTokenProvider(token)
	} else {
		manager, store, err := buildManager(c)
		if err != nil {
			return nil, err
		}
		cleanup = func() { closeStore(store) }
		provider = manager.TokenProvider("")
	}

	fs := box.NewFileSystem(
		box.WithTokenProvider(provider),
		box.WithRootFolderID(c.GlobalString("root")),
	)
	backend.Register(box.Scheme, fs)

	return cleanup, nil
}

func copyBoxToBox(src, dst string) error {
	srcFile, err := boxsimple.NewFile(src)
	if err != nil {
		return err
	}
	dstFile, err := boxsimple.NewFile(dst)
	if err != nil {
		return err
	}

	if err := srcFile.CopyToFile(dstFile); err != nil {
		return err
	}

	success.Printf("Copied %s to %s\n", src, dst)
	return nil
}

func copyLocalToBox(src, dst string) error {
	localPath, err := expandLocalPath(src)
	if err != nil {
		return err
	}

	local, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer func() { _ = local.Close() }()

	remote, err := boxsimple.NewFile(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(remote, local); err != nil {
		_ = remote.Close()
		return err
	}
	if err := remote.Close(); err != nil {
		return err
	}

	success.Printf("Copied %s to %s\n", localPath, dst)
	return nil
}

func copyBoxToLocal(src, dst string) error {
	localPath, err := expandLocalPath(dst)
	if err != nil {
		return err
	}

	remote, err := boxsimple.NewFile(src)
	if err != nil {
		return err
	}
	defer func() { _ = remote.Close() }()

	// a trailing separator or existing directory means "keep the source name"
	if strings.HasSuffix(dst, string(os.PathSeparator)) || isDir(localPath) {
		localPath = filepath.Join(localPath, path.Base(remote.Path()))
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}

	local, err := os.Create(localPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(local, remote); err != nil {
		_ = local.Close()
		return err
	}
	if err := local.Close(); err != nil {
		return err
	}

	success.Printf("Copied %s to %s\n", src, localPath)
	return nil
}

func expandLocalPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func buildManager(c *cli.Context) (*auth.Manager, *auth.SQLiteStore, error) {
	cfg, err := box.LoadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, nil, err
	}

	store, err := auth.OpenSQLiteStore(context.Background(), cfg.TokenDB)
	if err != nil {
		return nil, nil, err
	}

	manager := auth.NewManager(auth.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		AuthorizeURL: cfg.AuthorizeURL,
		TokenURL:     cfg.TokenURL,
		PerUser:      cfg.UserScoped,
	}, store)

	return manager, store, nil
}

func closeStore(store *auth.SQLiteStore) {
	if store != nil {
		_ = store.Close()
	}
}

func loginAction(c *cli.Context) error {
	manager, store, err := buildManager(c)
	if err != nil {
		return err
	}
	defer closeStore(store)

	fmt.Println("Visit the following URL to authorize boxcp:")
	fmt.Println()
	fmt.Println("  " + manager.AuthorizationURL())
	fmt.Println()

	done := make(chan error, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing authorization code", http.StatusBadRequest)
			return
		}

		rec, err := manager.Exchange(r.Context(), code, "")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			done <- err
			return
		}

		fmt.Fprintf(w, "Authorized. Token expires at %s. You can close this tab.\n", rec.ExpiresAt)
		done <- nil
	})

	srv := &http.Server{Addr: c.String("listen"), Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			done <- err
		}
	}()

	err = <-done
	_ = srv.Close()
	if err != nil {
		return err
	}

	success.Println("Token grant stored.")
	return nil
}

func refreshAction(c *cli.Context) error {
	manager, store, err := buildManager(c)
	if err != nil {
		return err
	}
	defer closeStore(store)

	rec, err := manager.Refresh(context.Background(), "")
	if err != nil {
		return err
	}

	success.Printf("Token refreshed; now valid until %s\n", rec.ExpiresAt)
	return nil
}

func whoamiAction(c *cli.Context) error {
	manager, store, err := buildManager(c)
	if err != nil {
		return err
	}
	defer closeStore(store)

	client := api.NewClient(manager.TokenProvider(""))
	user, err := client.User(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s> (id %s)\n", user.Name, user.Login, user.ID)
	return nil
}
