package list_test

import (
	"slices"
	"testing"

	"github.com/quintans/slist/list"
	"github.com/stretchr/testify/assert"
)

func TestIntoIter(t *testing.T) {
	l := list.New[string]()
	l.Push("baz")
	l.Push("bar")
	l.Push("foo")

	items := slices.Collect(l.IntoIter().Seq())
	assert.Equal(t, []string{"foo", "bar", "baz"}, items)
	assert.True(t, l.IsEmpty())
}

func TestIntoIterExhausted(t *testing.T) {
	l := list.Of(1, 2)
	it := l.IntoIter()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 2, it.Len())

	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, it.Len())

	v, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	for range 3 {
		v, ok = it.Next()
		assert.False(t, ok)
		assert.Equal(t, 0, v)
	}
	assert.Equal(t, 0, it.Len())
}

func TestIntoIterIsOneShot(t *testing.T) {
	it := list.Of("a", "b", "c").IntoIter()

	for v := range it.Seq() {
		assert.Equal(t, "a", v)
		break
	}
	assert.Equal(t, []string{"b", "c"}, slices.Collect(it.Seq()))
	assert.Empty(t, slices.Collect(it.Seq()))
}

func TestIntoIterDetachesFromList(t *testing.T) {
	l := list.Of(1, 2)
	it := l.IntoIter()

	l.Push(10)
	assert.Equal(t, []int{1, 2}, slices.Collect(it.Seq()))
	assert.Equal(t, "[10]", l.String())
}

func TestIntoIterEmpty(t *testing.T) {
	it := list.New[int]().IntoIter()
	_, ok := it.Next()
	assert.False(t, ok)
}
