// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, so every Fetch returns the
// same bytes and a config.Document built from it stays consistent for the
// application lifetime.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	doc, err := config.Load(yamlparser.NewParser(), fetcher)
//
// Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors.
package file
