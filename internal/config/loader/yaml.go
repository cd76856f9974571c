package loader

import "gopkg.in/yaml.v3"

// NewYAMLLoader creates a YAML loader for path on the OS file system.
func NewYAMLLoader(path string) *FileSource {
	return NewYAMLLoaderWithFS(DefaultFS(), path)
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fsys FileSystem, path string) *FileSource {
	return &FileSource{fs: fsys, path: path, format: FormatYAML, decode: decodeYAML}
}

func decodeYAML(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return normalizeYAML(out), nil
}

// normalizeYAML widens yaml ints to int64 so both formats agree on types.
func normalizeYAML(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeYAMLValue(v)
	}
	return m
}

func normalizeYAMLValue(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case map[string]any:
		return normalizeYAML(t)
	case []any:
		for i := range t {
			t[i] = normalizeYAMLValue(t[i])
		}
		return t
	default:
		return v
	}
}
