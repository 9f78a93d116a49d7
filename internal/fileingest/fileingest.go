// Package fileingest walks a directory tree looking for markdown source
// files, for callers that want to chunk a whole tree of documents in one
// pass instead of naming a single file.
package fileingest

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileMeta describes one discovered file.
type FileMeta struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// DiscoverMarkdownFiles walks rootDir and returns metadata for every .md
// file found beneath it, in the order filepath.WalkDir visits them.
func DiscoverMarkdownFiles(rootDir string) ([]FileMeta, error) {
	var files []FileMeta
	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		meta, metaErr := ExtractFileMeta(path)
		if metaErr != nil {
			return nil
		}
		files = append(files, meta)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ExtractFileMeta stats path and returns its FileMeta.
func ExtractFileMeta(path string) (FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}, err
	}
	return FileMeta{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
