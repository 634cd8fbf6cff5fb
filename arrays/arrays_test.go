package arrays_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-primitive-utils/arrays"
	"github.com/hasbyte1/go-primitive-utils/psort"
)

func TestFill(t *testing.T) {
	s := make([]int, 4)
	arrays.Fill(s, 7)
	if !arrays.Equal(s, []int{7, 7, 7, 7}) {
		t.Fatalf("Fill() = %v", s)
	}

	arrays.FillRange(s, 1, 3, 0)
	if !arrays.Equal(s, []int{7, 0, 0, 7}) {
		t.Fatalf("FillRange() = %v", s)
	}
}

func TestCloneSlice(t *testing.T) {
	src := []int{1, 2, 3}
	dst := arrays.CloneSlice(src)
	dst[0] = 9
	if src[0] != 1 {
		t.Fatal("CloneSlice() shares backing store with source")
	}
	if arrays.CloneSlice[int](nil) != nil {
		t.Fatal("CloneSlice(nil) != nil")
	}
}

func TestConcat(t *testing.T) {
	got := arrays.Concat([]int{1}, nil, []int{2, 3})
	if !arrays.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("Concat() = %v", got)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		in, want []int
	}{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3}, []int{3, 2, 1}},
	}
	for _, tt := range tests {
		s := arrays.CloneSlice(tt.in)
		arrays.Reverse(s)
		if !arrays.Equal(s, tt.want) {
			t.Errorf("Reverse(%v) = %v, want %v", tt.in, s, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !arrays.Equal([]int{1, 2}, []int{1, 2}) {
		t.Error("Equal() = false for identical slices")
	}
	if arrays.Equal([]int{1, 2}, []int{1, 3}) || arrays.Equal([]int{1}, []int{1, 2}) {
		t.Error("Equal() = true for differing slices")
	}
	if !arrays.EqualFunc([]int{1, 2}, []int{-1, -2}, func(a, b int) bool { return a == -b }) {
		t.Error("EqualFunc() ignored the comparator")
	}
}

func TestIndexOf(t *testing.T) {
	s := []int64{5, 3, 5, 1}
	if got := arrays.IndexOf(s, 5); got != 0 {
		t.Errorf("IndexOf() = %d, want 0", got)
	}
	if got := arrays.LastIndexOf(s, 5); got != 2 {
		t.Errorf("LastIndexOf() = %d, want 2", got)
	}
	if got := arrays.IndexOf(s, 9); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
	if !arrays.Contains(s, 1) || arrays.Contains(s, 2) {
		t.Error("Contains() mismatch")
	}
}

func TestBinarySearch(t *testing.T) {
	s := []int32{1, 3, 3, 3, 7, 9}

	tests := []struct {
		value     int32
		wantPos   int
		wantFound bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 1, false},
		{3, 1, true}, // leftmost occurrence
		{7, 4, true},
		{10, 6, false},
	}
	for _, tt := range tests {
		pos, found := arrays.BinarySearch(s, tt.value, psort.OrderedCompare[int32])
		if pos != tt.wantPos || found != tt.wantFound {
			t.Errorf("BinarySearch(%d) = (%d, %v), want (%d, %v)",
				tt.value, pos, found, tt.wantPos, tt.wantFound)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := arrays.Join([]int{1, 2, 3}, ", "); got != "1, 2, 3" {
		t.Errorf("Join() = %q", got)
	}
	if got := arrays.Join([]int{}, ", "); got != "" {
		t.Errorf("Join(empty) = %q", got)
	}
	got := arrays.JoinFunc([]int{10, 11}, "-", func(v int) string {
		return strconv.FormatInt(int64(v), 16)
	})
	if got != "a-b" {
		t.Errorf("JoinFunc() = %q", got)
	}
}
