package words

import "testing"

// TestDefaultTableShape pins the size and distinctness of the version-1
// table. A failure here means the compatibility surface moved.
func TestDefaultTableShape(t *testing.T) {
	if Default.Len() != 50 {
		t.Fatalf("Default.Len() = %d, want 50", Default.Len())
	}
	if !Default.Distinct() {
		t.Fatal("Default table contains duplicate entries")
	}
}

// TestDefaultTableOrderPinned spot-checks entries whose positions are relied
// on by resolver golden tests.
func TestDefaultTableOrderPinned(t *testing.T) {
	tcs := []struct {
		index int
		want  string
	}{
		{0, "pizza"},
		{8, "campfire"},
		{23, "labyrinth"},
		{49, "skeleton"},
	}
	for _, tc := range tcs {
		if got := Default.At(tc.index); got != tc.want {
			t.Errorf("Default.At(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}
