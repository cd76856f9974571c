package loader

import "testing/fstest"

// memFS is an in-memory FileSystem for tests. fstest.MapFS already has
// ReadFile and Stat.
type memFS struct {
	fstest.MapFS
}

func newMemFS(files map[string]string) memFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return memFS{m}
}
