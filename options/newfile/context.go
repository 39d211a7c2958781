// Package newfile provides options for creating new files in a boxfs filesystem.
package newfile

import (
	"context"

	"github.com/gzai/boxfs/options"
)

const optionNameNewFileContext = "newFileContext"

// WithContext returns Context implementation of NewFileOption
func WithContext(ctx context.Context) options.NewFileOption {
	return &Context{ctx}
}

// Context represents the NewFileOption that is used to specify a context for created files.
type Context struct{ context.Context }

// NewFileOptionName returns the name of Context option
func (ct *Context) NewFileOptionName() string {
	return optionNameNewFileContext
}
