package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// IncludeKey names the top-level key listing files to merge underneath the
// including file.
const IncludeKey = "include"

// ErrIncludeDepth is returned when includes nest deeper than allowed.
var ErrIncludeDepth = errors.New("include depth exceeded")

type decodeFunc func(data []byte) (map[string]any, error)

// FileSource loads one configuration file in a fixed format.
type FileSource struct {
	fs     FileSystem
	path   string
	format Format
	decode decodeFunc
}

var (
	_ FileLoader   = (*FileSource)(nil)
	_ ReaderLoader = (*FileSource)(nil)
)

// NewTOMLLoader creates a TOML loader for path on the OS file system.
func NewTOMLLoader(path string) *FileSource {
	return NewTOMLLoaderWithFS(DefaultFS(), path)
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fsys FileSystem, path string) *FileSource {
	return &FileSource{fs: fsys, path: path, format: FormatTOML, decode: decodeTOML}
}

func decodeTOML(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Format returns the syntax this source reads.
func (l *FileSource) Format() Format {
	return l.format
}

// Path returns the configured path.
func (l *FileSource) Path() string {
	return l.path
}

// Load reads configuration from the configured path.
func (l *FileSource) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from a specific path. A missing file yields
// nil, nil.
func (l *FileSource) LoadFrom(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return l.parse(path, data)
}

// LoadFromReader reads configuration from an io.Reader.
func (l *FileSource) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return l.parse("<reader>", data)
}

func (l *FileSource) parse(source string, data []byte) (map[string]any, error) {
	config, err := l.decode(data)
	if err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return nil, pe
	}
	if config == nil {
		config = map[string]any{}
	}
	return config, nil
}

// LoadWithIncludes loads path and merges the files named under IncludeKey
// beneath it. Relative includes resolve against the including file.
func (l *FileSource) LoadWithIncludes(path string, maxDepth int) (map[string]any, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncludeDepth, path)
	}

	config, err := l.LoadFrom(path)
	if err != nil || config == nil {
		return config, err
	}

	raw, ok := config[IncludeKey]
	if !ok {
		return config, nil
	}
	delete(config, IncludeKey)

	var includes []string
	switch v := raw.(type) {
	case string:
		includes = []string{v}
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s: %s must be a string or list of strings", path, IncludeKey)
			}
			includes = append(includes, s)
		}
	default:
		return nil, fmt.Errorf("%s: %s must be a string or list of strings, got %T", path, IncludeKey, raw)
	}

	merged := map[string]any{}
	for _, inc := range includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(filepath.Dir(path), inc)
		}
		sub := ForPath(l.fs, inc)
		incConfig, err := sub.LoadWithIncludes(inc, maxDepth-1)
		if err != nil {
			return nil, fmt.Errorf("loading include %s: %w", inc, err)
		}
		merged = DeepMerge(merged, incConfig)
	}

	return DeepMerge(merged, config), nil
}

// ParseError reports a file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
