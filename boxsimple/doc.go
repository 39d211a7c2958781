/*
Package boxsimple provides a basic and easy to use set of functions for working with Box
content by full URI:

	box:///some/path/to/file.txt

# Usage

Just import boxsimple.

	package main

	import (
		"github.com/gzai/boxfs/boxsimple"
	)

	func DoSomething() error {
		dir, err := boxsimple.NewLocation("box:///reports/2026/")
		if err != nil {
			return err
		}

		file, err := boxsimple.NewFile("box:///inbox/summary.pdf")
		if err != nil {
			return err
		}

		if _, err := file.MoveToLocation(dir); err != nil {
			return err
		}

		return nil
	}

# Authentication and Options

boxsimple relies on the default registered box filesystem, which reads its access token
from the BOXFS_ACCESS_TOKEN environment variable. For token refresh, a custom root folder,
or other options, compose a filesystem explicitly with box.NewFileSystem and register it:

	fs := box.NewFileSystem(
		box.WithTokenProvider(manager.TokenProvider("")),
		box.WithRootFolderID("184052"),
	)
	backend.Register("box://reports/", fs)

Registered names are matched by longest prefix, so URIs under box://reports/ use the
configured filesystem while everything else falls through to the default.
*/
package boxsimple
