package xform

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func vecNear(a, b rl.Vector3, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps && math32.Abs(a.Y-b.Y) <= eps && math32.Abs(a.Z-b.Z) <= eps
}

func TestAttachDetach(t *testing.T) {
	parent := New()
	child := New()
	parent.Attach(child)
	if child.Parent() != parent {
		t.Fatal("child parent not set")
	}
	if len(parent.Children()) != 1 {
		t.Fatalf("parent has %d children, want 1", len(parent.Children()))
	}
	parent.Detach(child)
	if child.Parent() != nil {
		t.Fatal("child parent not cleared")
	}
	if len(parent.Children()) != 0 {
		t.Fatal("parent still holds detached child")
	}
}

func TestAttachMovesBetweenParents(t *testing.T) {
	a := New()
	b := New()
	child := New()
	a.Attach(child)
	b.Attach(child)
	if child.Parent() != b {
		t.Fatal("child not under new parent")
	}
	if len(a.Children()) != 0 {
		t.Fatal("old parent still holds child")
	}
}

func TestWorldTransformComposes(t *testing.T) {
	parent := New()
	parent.Pos = rl.NewVector3(1, 2, 3)
	parent.Scale = 2
	child := New()
	child.Pos = rl.NewVector3(1, 0, 0)
	parent.Attach(child)

	if got := child.WorldPos(); !vecNear(got, rl.NewVector3(3, 2, 3), 1e-5) {
		t.Fatalf("world pos %v, want (3,2,3)", got)
	}
	if got := child.WorldScale(); math32.Abs(got-2) > 1e-6 {
		t.Fatalf("world scale %v, want 2", got)
	}
}

func TestWorldRotAppliesParentRotation(t *testing.T) {
	parent := New()
	parent.Rot = rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), math32.Pi/2)
	child := New()
	child.Pos = rl.NewVector3(1, 0, 0)
	parent.Attach(child)

	// +90 about Y carries +X to -Z.
	if got := child.WorldPos(); !vecNear(got, rl.NewVector3(0, 0, -1), 1e-5) {
		t.Fatalf("world pos %v, want (0,0,-1)", got)
	}
}

func TestReparentPreservesWorldTransform(t *testing.T) {
	root := New()
	a := New()
	a.Pos = rl.NewVector3(2, 0, 1)
	a.Rot = rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), 0.7)
	b := New()
	b.Pos = rl.NewVector3(-1, 3, 0)
	b.Rot = rl.QuaternionFromAxisAngle(rl.NewVector3(1, 0, 0), -0.4)
	root.Attach(a)
	root.Attach(b)

	child := New()
	child.Pos = rl.NewVector3(0.5, -0.25, 1.5)
	child.Rot = rl.QuaternionFromAxisAngle(rl.NewVector3(0, 0, 1), 1.1)
	a.Attach(child)

	wantPos := child.WorldPos()
	wantRot := child.WorldRot()

	if !Reparent(child, b) {
		t.Fatal("reparent failed")
	}
	if child.Parent() != b {
		t.Fatal("child not under new parent")
	}
	if got := child.WorldPos(); !vecNear(got, wantPos, 1e-4) {
		t.Fatalf("world pos changed: %v -> %v", wantPos, got)
	}
	got := child.WorldRot()
	// Compare rotations by their action on a vector; q and -q are the same rotation.
	v := rl.NewVector3(1, 2, 3)
	if !vecNear(rl.Vector3RotateByQuaternion(v, got), rl.Vector3RotateByQuaternion(v, wantRot), 1e-4) {
		t.Fatal("world rotation changed by reparenting")
	}
}

func TestReparentAcrossScaledParent(t *testing.T) {
	root := New()
	scaled := New()
	scaled.Scale = 0.5
	root.Attach(scaled)

	child := New()
	child.Pos = rl.NewVector3(1, 1, 0)
	root.Attach(child)

	want := child.WorldPos()
	if !Reparent(child, scaled) {
		t.Fatal("reparent failed")
	}
	if got := child.WorldPos(); !vecNear(got, want, 1e-5) {
		t.Fatalf("world pos changed: %v -> %v", want, got)
	}
	if math32.Abs(child.Pos.X-2) > 1e-5 {
		t.Fatalf("local pos %v, want x=2 under half-scale parent", child.Pos)
	}
}

func TestReparentRejectsNilAndZeroScale(t *testing.T) {
	n := New()
	if Reparent(nil, n) || Reparent(n, nil) {
		t.Fatal("reparent accepted nil node")
	}
	zero := New()
	zero.Scale = 0
	if Reparent(n, zero) {
		t.Fatal("reparent accepted zero-scale parent")
	}
}

func TestResetZeroesTransform(t *testing.T) {
	n := New()
	n.Pos = rl.NewVector3(1, 2, 3)
	n.Rot = rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), 1)
	n.Scale = 3
	n.Reset()
	if !vecNear(n.Pos, rl.Vector3{}, 0) || n.Scale != 1 {
		t.Fatal("reset did not restore identity transform")
	}
	v := rl.NewVector3(1, 2, 3)
	if !vecNear(rl.Vector3RotateByQuaternion(v, n.Rot), v, 1e-6) {
		t.Fatal("reset rotation is not identity")
	}
}
