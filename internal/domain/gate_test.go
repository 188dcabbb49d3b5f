package domain

import "testing"

func TestAllSpotsUnlocked(t *testing.T) {
	cases := []struct {
		count int
		want  bool
	}{
		{0, false},
		{1, false},
		{2, false},
		{3, true},
		{4, false},
	}
	for _, tc := range cases {
		if got := AllSpotsUnlocked(tc.count); got != tc.want {
			t.Fatalf("AllSpotsUnlocked(%d) = %v, want %v", tc.count, got, tc.want)
		}
	}
}
