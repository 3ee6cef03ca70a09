package digraph

import "testing"

func TestAcyclic_EmptyGraph(t *testing.T) {
	if !(Graph[int]{}).Acyclic() {
		t.Errorf("Acyclic() = false, want true")
	}
}

func TestAcyclic_Chain(t *testing.T) {
	g := Graph[int]{0: {1}, 1: {2}, 2: nil}

	if !g.Acyclic() {
		t.Errorf("Acyclic() = false, want true")
	}
}

func TestAcyclic_Diamond(t *testing.T) {
	g := Graph[string]{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
		"d": nil,
	}

	if !g.Acyclic() {
		t.Errorf("Acyclic() = false, want true")
	}
}

func TestAcyclic_SelfLoop(t *testing.T) {
	g := Graph[int]{0: {0}}

	if g.Acyclic() {
		t.Errorf("Acyclic() = true, want false")
	}
}

func TestAcyclic_TriangleCycle(t *testing.T) {
	g := Graph[int]{0: {1}, 1: {2}, 2: {0}}

	if g.Acyclic() {
		t.Errorf("Acyclic() = true, want false")
	}
}

func TestAcyclic_CycleInDisconnectedPart(t *testing.T) {
	g := Graph[int]{0: {1}, 1: nil, 2: {3}, 3: {2}}

	if g.Acyclic() {
		t.Errorf("Acyclic() = true, want false")
	}
}

func TestAcyclic_TargetOnlyVertexHarmless(t *testing.T) {
	// 9 is a target-only vertex; it has no out-edges and cannot close a cycle.
	g := Graph[int]{0: {9}, 1: {9}}

	if !g.Acyclic() {
		t.Errorf("Acyclic() = false, want true")
	}
}

func TestAcyclic_AgreesWithComponents(t *testing.T) {
	graphs := []Graph[int]{
		{0: {1}, 1: {2}, 2: nil},
		{0: {1}, 1: {0}},
		{0: {0}},
		{0: {1, 2}, 1: {3}, 2: {3}, 3: nil},
		{0: {1}, 1: {2}, 2: {0, 3}, 3: {1, 4}, 4: {3, 5}, 5: {2, 6}, 6: {5}, 7: {6, 7}},
	}

	for _, g := range graphs {
		multi := false
		for _, component := range g.StronglyConnected() {
			if len(component) > 1 {
				multi = true
			}
		}
		selfLoop := false
		for v, adj := range g {
			for _, u := range adj {
				if u == v {
					selfLoop = true
				}
			}
		}
		want := !multi && !selfLoop
		if got := g.Acyclic(); got != want {
			t.Errorf("Acyclic() = %v, want %v for %v", got, want, g)
		}
	}
}
