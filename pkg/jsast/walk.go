package jsast

// Walk traverses the tree depth-first in source order and calls fn for each node.
// If fn returns false, the node's children are skipped.
func Walk(node *Node, fn func(node *Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, fn)
	}
}

// Inspect walks the tree and calls enter before and leave after each node's children.
// Either callback may be nil.
func Inspect(node *Node, enter, leave func(node *Node)) {
	if node == nil {
		return
	}
	if enter != nil {
		enter(node)
	}
	for _, child := range node.Children() {
		Inspect(child, enter, leave)
	}
	if leave != nil {
		leave(node)
	}
}

// Link sets the Parent of every node below root and returns root.
// Hosts call it once after building a tree.
func Link(root *Node) *Node {
	if root == nil {
		return nil
	}
	root.Parent = nil
	var link func(n *Node)
	link = func(n *Node) {
		for _, child := range n.Children() {
			child.Parent = n
			link(child)
		}
	}
	link(root)
	return root
}

// Ancestors returns the chain of parents from n's parent up to the root.
func Ancestors(n *Node) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node) bool {
		total++
		return true
	})
	return total
}
