package linkgraph

import "testing"

func TestCommunities_TwoTriangles(t *testing.T) {
	// a=0 b=1 c=2 form one triangle, d=3 e=4 f=5 the other.
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}

	got := communities(6, edges, 1.0)

	if got[1] != got[0] || got[2] != got[0] {
		t.Fatalf("expected first triangle to share a community, got %v", got)
	}
	if got[4] != got[3] || got[5] != got[3] {
		t.Fatalf("expected second triangle to share a community, got %v", got)
	}
	if got[0] == got[3] {
		t.Fatalf("expected distinct communities, got %v", got)
	}
}

func TestCommunities_BridgedCliques(t *testing.T) {
	var edges [][2]int
	clique := func(base int) {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				edges = append(edges, [2]int{base + i, base + j})
			}
		}
	}
	clique(0)
	clique(4)
	edges = append(edges, [2]int{0, 4})

	got := communities(8, edges, 1.0)
	for i := 1; i < 4; i++ {
		if got[i] != got[0] || got[4+i] != got[4] {
			t.Fatalf("clique split across communities: %v", got)
		}
	}
	if got[0] == got[4] {
		t.Fatalf("bridge merged both cliques: %v", got)
	}
}

func TestCommunities_IsolatedNodes(t *testing.T) {
	got := communities(2, nil, 1.0)
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	if got[0] == got[1] {
		t.Fatalf("expected isolates in separate communities, got %v", got)
	}
}

func TestCommunities_Deterministic(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 4}, {4, 5}}
	first := communities(6, edges, 1.0)
	for i := 0; i < 5; i++ {
		again := communities(6, edges, 1.0)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d differs: %v vs %v", i, first, again)
			}
		}
	}
}
