package vfs

// DefaultPermissions is the fixed display string carried by every node.
const DefaultPermissions = "rwxr-xr-x"

// Node is a single file or directory in the tree. A directory owns its
// children exclusively; detaching a node drops its whole subtree.
type Node struct {
	Name        string           `json:"name"`
	Content     string           `json:"content"`
	IsDirectory bool             `json:"is_directory"`
	Permissions string           `json:"permissions"`
	Size        int              `json:"size"`
	Children    map[string]*Node `json:"children,omitempty"`
}

// NewDirectory creates an empty directory node.
func NewDirectory(name string) *Node {
	return &Node{
		Name:        name,
		IsDirectory: true,
		Permissions: DefaultPermissions,
		Children:    make(map[string]*Node),
	}
}

// NewFile creates a file node holding content.
func NewFile(name, content string) *Node {
	return &Node{
		Name:        name,
		Content:     content,
		Permissions: DefaultPermissions,
		Size:        len(content),
	}
}

// SetContent replaces the file's content and keeps Size consistent.
func (n *Node) SetContent(content string) {
	n.Content = content
	n.Size = len(content)
}

// normalize repairs invariants after deserialization: directories always
// have a non-nil children map and zero size, files report their true size.
func (n *Node) normalize() {
	if n.Permissions == "" {
		n.Permissions = DefaultPermissions
	}
	if n.IsDirectory {
		n.Size = 0
		n.Content = ""
		if n.Children == nil {
			n.Children = make(map[string]*Node)
		}
		for name, child := range n.Children {
			child.Name = name
			child.normalize()
		}
		return
	}
	n.Children = nil
	n.Size = len(n.Content)
}
