package document

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"respcss/archive"
)

// Source is a rule document together with the place it was read from.
type Source struct {
	Name string
	Doc  *Document
}

// LoadSources reads rule documents from path. Path may point to a single
// document, a zip archive or a directory. Archives and directories contribute
// every YAML document they hold in natural name order. Directories are
// searched recursively and archives found there are opened too. All broken
// documents are reported.
func LoadSources(path string) ([]Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("unable to access rules source: %w", err)
	}
	if info.IsDir() {
		return loadDir(path)
	}
	return loadFile(path)
}

func loadFile(path string) ([]Source, error) {
	isArchive, err := archive.IsArchive(path)
	if err != nil {
		return nil, fmt.Errorf("unable to check rules source: %w", err)
	}
	if !isArchive {
		doc, err := Load(path)
		if err != nil {
			return nil, err
		}
		return []Source{{Name: path, Doc: doc}}, nil
	}

	var (
		sources []Source
		errs    error
	)
	err = archive.Walk(path, func(name string, data []byte) error {
		doc, err := Parse(data)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", filepath.Join(path, name), err))
			return nil
		}
		sources = append(sources, Source{Name: filepath.Join(path, name), Doc: doc})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read archive %s: %w", path, err)
	}
	if errs != nil {
		return nil, errs
	}
	return sources, nil
}

func loadDir(dir string) ([]Source, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if archive.IsDocument(path) || filepath.Ext(path) == ".zip" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk rules directory: %w", err)
	}
	sort.Sort(natural.StringSlice(paths))

	var (
		sources []Source
		errs    error
	)
	for _, path := range paths {
		found, err := loadFile(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sources = append(sources, found...)
	}
	if errs != nil {
		return nil, errs
	}
	return sources, nil
}
