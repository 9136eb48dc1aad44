package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/axisdefaults/internal/ctxlog"
)

// DecodeFunc decodes one layout file held in memory. It also reports which
// layout-wide settings the file set.
type DecodeFunc func(src []byte, filename string) (*Model, Settings, error)

// FileLoader is a Loader over files on disk. Each file is decoded by the
// DecodeFunc registered for its extension, and the results are merged in
// discovery order.
type FileLoader struct {
	decoders map[string]DecodeFunc
}

var _ Loader = (*FileLoader)(nil)

// NewFileLoader creates a loader with no formats registered.
func NewFileLoader() *FileLoader {
	return &FileLoader{decoders: make(map[string]DecodeFunc)}
}

// Register binds a file extension, including the leading dot, to a decoder.
// Registering an extension twice replaces the earlier decoder.
func (l *FileLoader) Register(ext string, dec DecodeFunc) *FileLoader {
	l.decoders[strings.ToLower(ext)] = dec
	return l
}

// Extensions lists the registered extensions in sorted order.
func (l *FileLoader) Extensions() []string {
	exts := make([]string, 0, len(l.decoders))
	for ext := range l.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load decodes every supported file under paths and merges them, in path
// order, into one model. Directories are walked recursively in lexical
// order and files with unknown extensions inside them are skipped. Missing
// paths are skipped.
func (l *FileLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Layout loader started.", "path_count", len(paths), "extensions", l.Extensions())

	files, err := l.findAllFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered layout files.", "count", len(files))

	model := NewModel()
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout file %s: %w", file, err)
		}
		fileModel, set, err := l.decoders[strings.ToLower(filepath.Ext(file))](src, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Decoded layout file.", "file", file, "axes", len(fileModel.Axes), "traces", len(fileModel.Traces))
		model.Merge(fileModel, set)
	}

	logger.Debug("Layout loading complete.", "axes", len(model.Axes), "traces", len(model.Traces))
	return model, nil
}

func (l *FileLoader) supported(path string) bool {
	_, ok := l.decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// findAllFiles walks all given paths and returns a flat list of all
// supported files found.
func (l *FileLoader) findAllFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if !l.supported(path) {
				return nil, fmt.Errorf("unsupported layout file %s: expected one of %s", path, strings.Join(l.Extensions(), ", "))
			}
			add(path)
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && l.supported(p) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
