package gesture

import "testing"

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	tri := HitPolygon{Points: []Vec2{{0, 0}, {100, 0}, {50, 100}}}
	if !tri.Contains(50, 50) {
		t.Error("triangle should contain its center")
	}
	if tri.Contains(-10, 50) {
		t.Error("triangle should not contain point far left")
	}

	// Same triangle, opposite winding.
	rev := HitPolygon{Points: []Vec2{{50, 100}, {100, 0}, {0, 0}}}
	if !rev.Contains(50, 50) {
		t.Error("reversed winding should still contain center")
	}

	degen := HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}
	if degen.Contains(0, 0) {
		t.Error("degenerate polygon should not contain anything")
	}
}

// --- ElementAt ---

func newHitScene() *Scene {
	s := NewScene()
	s.SetInputSource(nil)
	return s
}

func TestElementAt_TopmostNode(t *testing.T) {
	s := newHitScene()
	a := NewNode("a", 100, 100)
	b := NewNode("b", 100, 100)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	if hit := s.ElementAt(50, 50); hit != b {
		t.Errorf("expected topmost node b, got %s", nodeLabel(hit))
	}
}

func TestElementAt_ChildAboveParent(t *testing.T) {
	s := newHitScene()
	panel := NewNode("panel", 200, 200)
	button := NewNode("button", 50, 20)
	button.X, button.Y = 10, 10
	s.Root().AddChild(panel)
	panel.AddChild(button)

	if hit := s.ElementAt(20, 20); hit != button {
		t.Errorf("got %s, want button", nodeLabel(hit))
	}
	if hit := s.ElementAt(150, 150); hit != panel {
		t.Errorf("got %s, want panel", nodeLabel(hit))
	}
}

func TestElementAt_MissReturnsRoot(t *testing.T) {
	s := newHitScene()
	a := NewNode("a", 10, 10)
	s.Root().AddChild(a)

	if hit := s.ElementAt(500, 500); hit != s.Root() {
		t.Errorf("got %s, want root", nodeLabel(hit))
	}
}

func TestElementAt_Skips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Node)
	}{
		{"invisible", func(b *Node) { b.Visible = false }},
		{"not interactable", func(b *Node) { b.Interactable = false }},
		{"lower zindex", func(b *Node) { b.SetZIndex(-1) }},
		{"circle miss", func(b *Node) { b.HitShape = HitCircle{CenterX: 90, CenterY: 90, Radius: 5} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newHitScene()
			a := NewNode("a", 100, 100)
			b := NewNode("b", 100, 100)
			s.Root().AddChild(a)
			s.Root().AddChild(b)
			tt.setup(b)

			if hit := s.ElementAt(10, 10); hit != a {
				t.Errorf("got %s, want a", nodeLabel(hit))
			}
		})
	}
}

func TestElementAt_NonInteractableSubtree(t *testing.T) {
	s := newHitScene()
	group := NewContainer("group")
	group.Interactable = false
	inner := NewNode("inner", 100, 100)
	group.AddChild(inner)
	s.Root().AddChild(group)

	if hit := s.ElementAt(10, 10); hit != s.Root() {
		t.Errorf("got %s, want root", nodeLabel(hit))
	}
}

func TestElementAt_ContainerWithHitShape(t *testing.T) {
	s := newHitScene()
	zone := NewContainer("zone")
	zone.X, zone.Y = 100, 100
	zone.HitShape = HitRect{Width: 50, Height: 50}
	s.Root().AddChild(zone)

	if hit := s.ElementAt(120, 120); hit != zone {
		t.Errorf("got %s, want zone", nodeLabel(hit))
	}
	if hit := s.ElementAt(20, 20); hit != s.Root() {
		t.Errorf("got %s, want root", nodeLabel(hit))
	}
}
