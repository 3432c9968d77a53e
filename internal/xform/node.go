package xform

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a scene-graph node with a local position, rotation, and uniform scale.
// World transform is composed from the parent chain. Nodes are plain data; rendering
// reads world transforms, animation writes local ones.
type Node struct {
	Pos   rl.Vector3
	Rot   rl.Quaternion
	Scale float32

	parent   *Node
	children []*Node
}

// New returns a node at the origin with identity rotation and scale 1.
func New() *Node {
	return &Node{Rot: rl.QuaternionIdentity(), Scale: 1}
}

// Parent returns the node's current parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children. The returned slice is the live backing
// slice; callers iterating while reparenting should copy it first.
func (n *Node) Children() []*Node {
	return n.children
}

// Attach makes child a child of n, keeping the child's current local transform as-is.
// If the child already has a parent it is detached first.
func (n *Node) Attach(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Detach(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Detach removes child from n. No-op if child is not a child of n.
func (n *Node) Detach(child *Node) {
	if child == nil || child.parent != n {
		return
	}
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Reset zeroes the local transform (origin, identity rotation, scale 1).
func (n *Node) Reset() {
	n.Pos = rl.Vector3{}
	n.Rot = rl.QuaternionIdentity()
	n.Scale = 1
}

// WorldPos returns the node's position in world space.
func (n *Node) WorldPos() rl.Vector3 {
	if n.parent == nil {
		return n.Pos
	}
	p := rl.Vector3RotateByQuaternion(n.Pos, n.parent.WorldRot())
	p = rl.Vector3Scale(p, n.parent.WorldScale())
	return rl.Vector3Add(n.parent.WorldPos(), p)
}

// WorldRot returns the node's rotation in world space.
func (n *Node) WorldRot() rl.Quaternion {
	if n.parent == nil {
		return n.Rot
	}
	return rl.QuaternionMultiply(n.parent.WorldRot(), n.Rot)
}

// WorldScale returns the node's accumulated uniform scale.
func (n *Node) WorldScale() float32 {
	if n.parent == nil {
		return n.Scale
	}
	return n.parent.WorldScale() * n.Scale
}

// Reparent moves child under newParent, recomputing the child's local transform so its
// world transform is unchanged (no visual jump). Returns false if either node is nil
// or the new parent has zero world scale (the local transform would be undefined).
func Reparent(child, newParent *Node) bool {
	if child == nil || newParent == nil {
		return false
	}
	ps := newParent.WorldScale()
	if ps == 0 {
		return false
	}
	wp := child.WorldPos()
	wr := child.WorldRot()
	ws := child.WorldScale()

	inv := rl.QuaternionInvert(newParent.WorldRot())
	local := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(wp, newParent.WorldPos()), inv)
	child.Pos = rl.Vector3Scale(local, 1/ps)
	child.Rot = rl.QuaternionMultiply(inv, wr)
	child.Scale = ws / ps

	newParent.Attach(child)
	return true
}
