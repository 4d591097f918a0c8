package set

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestAdd(t *testing.T) {
	s := New(1, 3)
	assert.Equal(t, 2, s.Length())
	assert.True(t, s.Add(5))
	assert.Equal(t, 3, s.Length())
	assert.False(t, s.Add(3))
	assert.Equal(t, 3, s.Length())
	assert.True(t, s.Contains(5))
}

func TestRemove(t *testing.T) {
	s := New(1, 3, 5)
	assert.Equal(t, 3, s.Length())
	assert.True(t, s.Remove(5))
	assert.Equal(t, 2, s.Length())
	assert.False(t, s.Contains(5))
	assert.False(t, s.Remove(5))
	assert.False(t, New().Remove(1))
}

func TestClear(t *testing.T) {
	s := New(1, 3, 5)
	assert.Equal(t, 3, s.Length())
	assert.True(t, s.Clear())
	assert.Equal(t, 0, s.Length())
	assert.True(t, s.Clear())
	assert.Equal(t, 0, s.Length())
	assert.False(t, s.Contains(1))
	assert.False(t, s.Contains(3))
	assert.False(t, s.Contains(5))
	assert.NoError(t, s.Verify())

	assert.True(t, s.Add(7))
	assert.Equal(t, []int{7}, s.ToSlice())
}

func TestZeroValue(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Length())
	assert.False(t, s.Contains(0))
	assert.False(t, s.Remove(0))
	assert.Empty(t, s.ToSlice())
	assert.NoError(t, s.Verify())
	assert.True(t, s.Add(0))
	assert.True(t, s.Contains(0))
}

func TestContains(t *testing.T) {
	s := New(1, 3, 5)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(1, 3))
	assert.True(t, s.Contains(1, 3, 5))
	assert.False(t, s.Contains(1, 2))
	assert.True(t, s.Contains())
}

func TestAt(t *testing.T) {
	s := New(5, 1, 3)
	assert.Equal(t, 3, s.Length())

	for pos, want := range []int{1, 3, 5} {
		got, err := s.At(pos)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set
		pos      int
	}{
		{"past the end", New(1, 3, 5), 10},
		{"at size", New(1, 3, 5), 3},
		{"negative", New(1, 3, 5), -1},
		{"empty", New(), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			before := tc.s.ToSlice()

			_, err := tc.s.At(tc.pos)
			assert.True(t, errors.Is(err, ErrOutOfRange))
			assert.Equal(t, before, tc.s.ToSlice())
		})
	}
}

func TestIsSuperSet(t *testing.T) {
	s := New(1, 3, 5)
	o := New(1)
	assert.True(t, s.IsSuperSet(o))
	assert.False(t, o.IsSuperSet(s))
}

func TestIsSubSet(t *testing.T) {
	s := New(1)
	o := New(1, 3, 5)
	assert.True(t, s.IsSubSet(o))
	assert.False(t, o.IsSubSet(s))
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set
		o        *Set
		want     bool
	}{
		{
			"not equal different length",
			New(1),
			New(1, 3, 5),
			false,
		},
		{
			"not equal same length",
			New(1, 3, 7),
			New(1, 3, 5),
			false,
		},
		{
			"equal",
			New(1, 3, 5),
			New(5, 3, 1),
			true,
		},
		{
			"both empty",
			New(),
			New(),
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Equal(tc.o))
			assert.Equal(t, tc.want, tc.o.Equal(tc.s))
			assert.Equal(t, !tc.want, tc.s.NotEqual(tc.o))
		})
	}
}

func TestIntersect(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set
		o        *Set
		want     []int
	}{
		{
			"one item",
			New(1),
			New(1, 3, 5),
			[]int{1},
		},
		{
			"two items",
			New(1, 3, 5),
			New(3, 5, 7),
			[]int{3, 5},
		},
		{
			"same items",
			New(1, 3, 5),
			New(1, 3, 5),
			[]int{1, 3, 5},
		},
		{
			"disjoint",
			New(1, 3),
			New(2, 4),
			[]int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			sBefore, oBefore := tc.s.ToSlice(), tc.o.ToSlice()

			got := tc.s.Intersect(tc.o)
			assert.Equal(t, tc.want, got.ToSlice())
			assert.True(t, got.Equal(tc.o.Intersect(tc.s)))
			assert.NoError(t, got.Verify())

			assert.Equal(t, sBefore, tc.s.ToSlice())
			assert.Equal(t, oBefore, tc.o.ToSlice())
		})
	}
}

func TestUnion(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set
		o        *Set
		want     []int
	}{
		{
			"overlapping",
			New(1, 3, 5),
			New(3, 5, 7),
			[]int{1, 3, 5, 7},
		},
		{
			"one empty",
			New(),
			New(2, 4),
			[]int{2, 4},
		},
		{
			"same items",
			New(1, 3, 5),
			New(1, 3, 5),
			[]int{1, 3, 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			sBefore, oBefore := tc.s.ToSlice(), tc.o.ToSlice()

			got := tc.s.Union(tc.o)
			assert.Equal(t, tc.want, got.ToSlice())
			assert.True(t, got.Equal(tc.o.Union(tc.s)))
			assert.NoError(t, got.Verify())

			assert.Equal(t, sBefore, tc.s.ToSlice())
			assert.Equal(t, oBefore, tc.o.ToSlice())
		})
	}
}

func TestDifference(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set
		o        *Set
		want     []int
	}{
		{
			"one item",
			New(1, 3, 5),
			New(1, 3, 7),
			[]int{5},
		},
		{
			"two items",
			New(1, 3, 5, 7, 9),
			New(1, 3, 5),
			[]int{7, 9},
		},
		{
			"same items",
			New(1, 3, 5),
			New(1, 3, 5),
			[]int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Difference(tc.o).ToSlice())
		})
	}
}

func TestSymmetricDifference(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set
		o        *Set
		want     []int
	}{
		{
			"one item",
			New(1, 3, 5),
			New(1, 3, 5, 7),
			[]int{7},
		},
		{
			"both sides",
			New(1, 3, 5),
			New(3, 5, 7, 9),
			[]int{1, 7, 9},
		},
		{
			"same items",
			New(1, 3, 5),
			New(1, 3, 5),
			[]int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.SymmetricDifference(tc.o).ToSlice())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "{ 1, 3, 5 }", New(5, 3, 1).String())
	assert.Equal(t, "{ 42 }", New(42).String())
	assert.Equal(t, "{  }", New().String())
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(3, 5, 7).Display(&buf))
	assert.Equal(t, "{ 3, 5, 7 }\n", buf.String())
}

func TestForEachStops(t *testing.T) {
	s := New(1, 2, 3, 4, 5)

	var seen []int
	s.ForEach(func(item int) bool {
		seen = append(seen, item)
		return item < 3
	})

	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestClone(t *testing.T) {
	s := New(1, 3, 5)
	c := s.Clone()

	assert.True(t, s.Equal(c))
	require.NoError(t, c.Verify())

	c.Add(99)
	s.Remove(1)

	assert.Equal(t, []int{3, 5}, s.ToSlice())
	assert.Equal(t, []int{1, 3, 5, 99}, c.ToSlice())
	assert.NoError(t, s.Verify())
	assert.NoError(t, c.Verify())

	empty := New().Clone()
	assert.Equal(t, 0, empty.Length())
	assert.True(t, empty.Add(1))
}

func TestAssign(t *testing.T) {
	s := New(1, 3, 5)
	o := New(2, 4)

	s.Assign(o)
	assert.Equal(t, []int{2, 4}, s.ToSlice())

	o.Add(6)
	assert.Equal(t, []int{2, 4}, s.ToSlice())
	assert.Equal(t, []int{2, 4, 6}, o.ToSlice())

	s.Assign(s)
	assert.Equal(t, []int{2, 4}, s.ToSlice())
	assert.NoError(t, s.Verify())
}

func TestMarshalLogArray(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, enc.AddArray("set", New(5, 1, 3)))
	assert.Equal(t, []interface{}{1, 3, 5}, enc.Fields["set"])
}

func TestColor(t *testing.T) {
	assert.Equal(t, "red", Red.String())
	assert.Equal(t, "black", Black.String())
	assert.Equal(t, Red, StringToColor("red"))
	assert.True(t, IsColor("black"))
	assert.False(t, IsColor("green"))
	assert.Equal(t, []Color{Black, Red}, ColorList())

	var c Color
	assert.NoError(t, c.Set("red"))
	assert.Equal(t, Red, c)
	assert.ErrorIs(t, c.Set("green"), ErrInvalidColor)
}
