package decompose

import "testing"

func TestChildLineage(t *testing.T) {
	cases := []struct {
		parent string
		index  int
		want   string
	}{
		{RootLineage, 1, "1"},
		{RootLineage, 3, "3"},
		{"1", 2, "1_2"},
		{"2_1", 3, "2_1_3"},
	}
	for _, tc := range cases {
		if got := childLineage(tc.parent, tc.index); got != tc.want {
			t.Errorf("childLineage(%q, %d) = %q; want %q", tc.parent, tc.index, got, tc.want)
		}
	}
}

func TestLineageDepth(t *testing.T) {
	cases := map[string]int{
		RootLineage: 0,
		"1":         1,
		"12":        1,
		"1_2":       2,
		"3_1_4":     3,
	}
	for lineage, want := range cases {
		if got := lineageDepth(lineage); got != want {
			t.Errorf("lineageDepth(%q) = %d; want %d", lineage, got, want)
		}
	}
}

func TestLineageName(t *testing.T) {
	cases := map[string]string{
		RootLineage: "root",
		"1":         "1",
		"1_2":       "2",
		"3_1_4":     "4",
	}
	for lineage, want := range cases {
		if got := lineageName(lineage); got != want {
			t.Errorf("lineageName(%q) = %q; want %q", lineage, got, want)
		}
	}
}

func TestNodeWalkAndFind(t *testing.T) {
	root := &Node{
		Lineage: RootLineage,
		Children: []*Node{
			{Lineage: "1", Children: []*Node{{Lineage: "1_1"}, {Lineage: "1_2"}}},
			{Lineage: "2"},
		},
	}

	var order []string
	root.Walk(func(n *Node) { order = append(order, n.Lineage) })
	want := []string{"0", "1", "1_1", "1_2", "2"}
	if len(order) != len(want) {
		t.Fatalf("Walk order = %v; want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Walk order = %v; want %v (depth-first, child order)", order, want)
		}
	}

	if n := root.Find("1_2"); n == nil || n.Lineage != "1_2" {
		t.Errorf("Find(1_2) = %v; want the 1_2 node", n)
	}
	if n := root.Find("9"); n != nil {
		t.Errorf("Find(9) = %v; want nil", n)
	}
}
