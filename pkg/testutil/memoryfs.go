package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS interface with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode
	cwd   string

	// Error injection
	errorPaths map[string]error

	// Statistics
	readCount  int
	writeCount int
	writes     []string
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name    string
	mode    os.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:    "/",
		mode:    0755 | os.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		cwd:        "/",
		errorPaths: make(map[string]error),
	}
}

// normalizePath converts a path to absolute form
func (m *MemoryFS) normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.cwd, path)
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	path = m.normalizePath(path)

	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}

	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

// ReadFile reads the entire file content
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readCount++

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	// Return a copy to prevent mutation
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile writes data to a file. Like the OS, the parent directory must exist.
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	path := m.normalizePath(name)
	if err, ok := m.errorPaths[path]; ok {
		return err
	}

	parent, err := m.getNode(filepath.Dir(path))
	if err != nil {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !parent.isDir {
		return &fs.PathError{Op: "open", Path: path, Err: errors.New("not a directory")}
	}
	if existing, ok := m.files[path]; ok && existing.isDir {
		return &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}

	node := &fileNode{
		name:    filepath.Base(path),
		mode:    perm,
		modTime: time.Now(),
		content: make([]byte, len(data)),
	}
	copy(node.content, data)

	m.files[path] = node
	m.writes = append(m.writes, path)
	return nil
}

// Stat returns file info
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.normalizePath(path)
	if err, ok := m.errorPaths[path]; ok {
		return err
	}

	current := "/"
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)

		if node, exists := m.files[current]; exists {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: current, Err: errors.New("not a directory")}
			}
			continue
		}

		m.files[current] = &fileNode{
			name:    part,
			mode:    perm | os.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}
	return nil
}

// WithError makes every operation on path fail with err
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[m.normalizePath(path)] = err
	return m
}

// Stats returns the number of reads and writes performed
func (m *MemoryFS) Stats() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.readCount, m.writeCount
}

// Writes returns the paths written, in write order
func (m *MemoryFS) Writes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.writes...)
}

// Files returns every regular file path, sorted
func (m *MemoryFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var paths []string
	for p, node := range m.files {
		if !node.isDir {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }
