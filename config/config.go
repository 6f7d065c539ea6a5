package config

import "time"

type (
	NET struct {
		// ReadBufferSize is the size of the single read made per
		// connection. A request longer than this is truncated, not
		// reassembled.
		ReadBufferSize int
		// ReadTimeout bounds how long the server waits for the request
		// bytes to arrive.
		ReadTimeout time.Duration
		// WriteTimeout bounds the single response write.
		WriteTimeout time.Duration
	}

	FS struct {
		// Root is the document root all served files must resolve
		// within. Relative values are resolved against the working
		// directory once at startup.
		Root string
		// IndexFile is the implicit default document for directory
		// requests.
		IndexFile string
	}
)

// Config holds settings used across the server, mainly buffer sizes,
// timeouts and the document root.
//
// Always start from Default() (or pass a partially filled Config through
// Fill) instead of constructing one field by field.
type Config struct {
	NET NET
	FS  FS
}

func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 4096,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
		},
		FS: FS{
			Root:      "www",
			IndexFile: "index.html",
		},
	}
}

// Fill takes a partially initialized config and fills every zero-value
// field with its default.
func Fill(original *Config) *Config {
	defaults := Default()

	original.NET.ReadBufferSize = customOrDefault(
		original.NET.ReadBufferSize, defaults.NET.ReadBufferSize,
	)
	original.NET.ReadTimeout = customOrDefault(
		original.NET.ReadTimeout, defaults.NET.ReadTimeout,
	)
	original.NET.WriteTimeout = customOrDefault(
		original.NET.WriteTimeout, defaults.NET.WriteTimeout,
	)
	original.FS.Root = customOrDefault(
		original.FS.Root, defaults.FS.Root,
	)
	original.FS.IndexFile = customOrDefault(
		original.FS.IndexFile, defaults.FS.IndexFile,
	)

	return original
}

func customOrDefault[T comparable](custom, defaultValue T) T {
	var zero T
	if custom == zero {
		return defaultValue
	}

	return custom
}
