// Package options provides the functional-option plumbing shared by boxfs
// filesystem implementations.
package options

// NewFileOption interface contains function that should be implemented by any custom option
// to qualify as a new-file option.
type NewFileOption interface {
	NewFileOptionName() string
}

// DeleteOption interface contains function that should be implemented by any custom option
// to qualify as a delete option.
type DeleteOption interface {
	DeleteOptionName() string
}

// NewFileSystemOption is an option used when creating a new filesystem instance of type T.
type NewFileSystemOption[T any] interface {
	// Apply applies the option to the provided filesystem.
	Apply(fs *T)

	// NewFileSystemOptionName returns the name of the option.
	NewFileSystemOptionName() string
}

// ApplyOptions applies a set of options to the provided filesystem.
func ApplyOptions[T any](fs *T, opts ...NewFileSystemOption[T]) {
	for _, opt := range opts {
		opt.Apply(fs)
	}
}
