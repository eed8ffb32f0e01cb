package vfs

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/vterm/vterm/internal/logging"
	"github.com/vterm/vterm/internal/state"
)

// FS is the virtual filesystem: one root directory node plus the current
// working directory. All operations are synchronous and single-session.
type FS struct {
	root        *Node
	currentPath string
	store       state.Store
	log         *logging.Logger
}

// New creates a filesystem bound to store. An existing snapshot is
// loaded; otherwise the canonical initial layout is seeded. A corrupt
// snapshot is logged and replaced by a fresh in-memory tree, never a
// fatal error.
func New(store state.Store, log *logging.Logger) *FS {
	if log == nil {
		log = logging.NewNop()
	}
	fs := &FS{
		root:        NewDirectory(""),
		currentPath: "/",
		store:       store,
		log:         log,
	}

	snap, found, err := loadSnapshot(store)
	switch {
	case err != nil:
		log.Warn("could not load filesystem snapshot", zap.Error(err))
		fs.currentPath = "/home/user"
	case found:
		fs.root = snap.Root
		fs.currentPath = snap.CurrentPath
		if fs.currentPath == "" {
			fs.currentPath = "/home/user"
		}
	default:
		fs.seed()
		fs.persist()
	}
	return fs
}

// seed creates the initial directory layout.
func (fs *FS) seed() {
	for _, dir := range []string{"/home", "/home/user", "/tmp", "/var", "/usr", "/usr/bin"} {
		fs.Mkdir(dir)
	}
	fs.currentPath = "/home/user"
}

// CurrentPath returns the current working directory, always absolute.
func (fs *FS) CurrentPath() string {
	return fs.currentPath
}

// Resolve turns path into an absolute path against the current
// directory. "." and ".." segments are resolved; the root's parent is
// the root itself. Pure: never touches the tree.
func (fs *FS) Resolve(path string) string {
	if !strings.HasPrefix(path, "/") {
		if fs.currentPath == "/" {
			path = "/" + path
		} else {
			path = fs.currentPath + "/" + path
		}
	}

	var parts []string
	for _, part := range strings.Split(path, "/") {
		switch part {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// node walks the tree to the node at an already-resolved absolute path.
func (fs *FS) node(resolved string) *Node {
	if resolved == "/" {
		return fs.root
	}
	current := fs.root
	for _, part := range strings.Split(strings.Trim(resolved, "/"), "/") {
		if part == "" {
			continue
		}
		if !current.IsDirectory {
			return nil
		}
		child, ok := current.Children[part]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// split separates a resolved path into its parent directory node and the
// final name segment.
func (fs *FS) split(resolved string) (parent *Node, name string) {
	trimmed := strings.Trim(resolved, "/")
	idx := strings.LastIndex(trimmed, "/")
	parentPath, name := "/", trimmed
	if idx >= 0 {
		parentPath, name = "/"+trimmed[:idx], trimmed[idx+1:]
	}
	return fs.node(parentPath), name
}

// Exists reports whether path resolves to any node.
func (fs *FS) Exists(path string) bool {
	return fs.node(fs.Resolve(path)) != nil
}

// IsDirectory reports whether path resolves to a directory.
func (fs *FS) IsDirectory(path string) bool {
	n := fs.node(fs.Resolve(path))
	return n != nil && n.IsDirectory
}

// IsFile reports whether path resolves to a file.
func (fs *FS) IsFile(path string) bool {
	n := fs.node(fs.Resolve(path))
	return n != nil && !n.IsDirectory
}

// Mkdir creates an empty directory. It fails when the path already
// exists or the parent is missing or not a directory.
func (fs *FS) Mkdir(path string) bool {
	resolved := fs.Resolve(path)
	if resolved == "/" || fs.node(resolved) != nil {
		return false
	}
	parent, name := fs.split(resolved)
	if parent == nil || !parent.IsDirectory {
		return false
	}
	parent.Children[name] = NewDirectory(name)
	fs.persist()
	return true
}

// Touch creates or replaces a file with content. It fails when the
// parent is missing or not a directory.
func (fs *FS) Touch(path, content string) bool {
	resolved := fs.Resolve(path)
	if resolved == "/" {
		return false
	}
	parent, name := fs.split(resolved)
	if parent == nil || !parent.IsDirectory {
		return false
	}
	if existing, ok := parent.Children[name]; ok && existing.IsDirectory {
		return false
	}
	parent.Children[name] = NewFile(name, content)
	fs.persist()
	return true
}

// ReadFile returns a file's content. The second return is false when the
// path is missing or a directory.
func (fs *FS) ReadFile(path string) (string, bool) {
	n := fs.node(fs.Resolve(path))
	if n == nil || n.IsDirectory {
		return "", false
	}
	return n.Content, true
}

// WriteFile overwrites or appends content. A missing target is created;
// writing onto a directory fails.
func (fs *FS) WriteFile(path, content string, append bool) bool {
	n := fs.node(fs.Resolve(path))
	if n == nil {
		return fs.Touch(path, content)
	}
	if n.IsDirectory {
		return false
	}
	if append {
		n.SetContent(n.Content + content)
	} else {
		n.SetContent(content)
	}
	fs.persist()
	return true
}

// ListDirectory returns snapshot copies of a directory's entries sorted
// by name. Empty path lists the current directory. A missing path or a
// file yields an empty list, not an error.
func (fs *FS) ListDirectory(path string) []Node {
	if path == "" {
		path = fs.currentPath
	}
	n := fs.node(fs.Resolve(path))
	if n == nil || !n.IsDirectory {
		return nil
	}
	entries := make([]Node, 0, len(n.Children))
	for _, child := range n.Children {
		snapshot := *child
		snapshot.Children = nil
		entries = append(entries, snapshot)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// ChangeDirectory moves the current path. It fails unless the target is
// an existing directory.
func (fs *FS) ChangeDirectory(path string) bool {
	resolved := fs.Resolve(path)
	if !fs.IsDirectory(resolved) {
		return false
	}
	fs.currentPath = resolved
	fs.persist()
	return true
}

// Remove detaches a file or directory subtree. Removing the root or a
// nonexistent entry fails.
func (fs *FS) Remove(path string) bool {
	resolved := fs.Resolve(path)
	if resolved == "/" {
		return false
	}
	parent, name := fs.split(resolved)
	if parent == nil || !parent.IsDirectory {
		return false
	}
	if _, ok := parent.Children[name]; !ok {
		return false
	}
	delete(parent.Children, name)
	fs.persist()
	return true
}

// Save forces a snapshot write outside any mutation.
func (fs *FS) Save() error {
	return saveSnapshot(fs.store, &Snapshot{CurrentPath: fs.currentPath, Root: fs.root})
}

// persist is the write-through hook called after every mutation.
func (fs *FS) persist() {
	if err := fs.Save(); err != nil {
		fs.log.Warn("could not save filesystem snapshot", zap.Error(err))
	}
}
