package switcher_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/switcher_go/switcher"
)

func TestTableize_CallsPredicatesOncePerInput(t *testing.T) {
	count := 0
	s := switcher.Compile(switcher.Listed(switcher.ClauseList[string, string]{
		{Case: func(s string) bool {
			count++
			return strings.Contains(s, "cat")
		}, Value: "Felis catus"},
	}), switcher.WithDefault("Uncataloged species"))

	fn := switcher.Tableize(s, 4)

	v, ok := fn("wildcat")
	assert.True(t, ok)
	assert.Equal(t, "Felis catus", v)
	v, _ = fn("wildcat") // cached
	assert.Equal(t, "Felis catus", v)
	assert.Equal(t, 1, count)

	v, _ = fn("platypus")
	assert.Equal(t, "Uncataloged species", v)
	_, _ = fn("platypus")
	assert.Equal(t, 2, count)
}

func TestTableize_RemembersMisses(t *testing.T) {
	count := 0
	s := switcher.Compile(switcher.Listed(switcher.ClauseList[int, string]{
		{Case: func(n int) bool {
			count++
			return n < 0
		}, Value: "negative"},
	}))
	fn := switcher.Tableize(s, 2)

	v, ok := fn(3)
	assert.False(t, ok)
	assert.Empty(t, v)
	_, ok = fn(3)
	assert.False(t, ok)
	assert.Equal(t, 1, count)
}

type Tag struct {
	Parts []string
}

func (t Tag) String() string {
	return strings.Join(t.Parts, "/")
}

func TestTableize_StringerInputs(t *testing.T) {
	count := 0
	s := switcher.Compile(switcher.Listed(switcher.ClauseList[Tag, int]{
		{Case: func(t Tag) bool {
			count++
			return len(t.Parts) > 1
		}, Value: 2},
	}))
	fn := switcher.Tableize(s, 2)

	v, ok := fn(Tag{Parts: []string{"felis", "catus"}})
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, _ = fn(Tag{Parts: []string{"felis", "catus"}})
	assert.Equal(t, 1, count)
}

func TestTableize_StringerAndStringStayApart(t *testing.T) {
	s := switcher.Compile(switcher.Listed(switcher.ClauseList[any, string]{
		{Case: func(v any) bool {
			_, ok := v.(string)
			return ok
		}, Value: "plain string"},
	}), switcher.WithDefault("other"))
	fn := switcher.Tableize(s, 4)

	v, _ := fn("cat")
	assert.Equal(t, "plain string", v)

	tag := Tag{Parts: []string{"cat"}}
	want, _ := s.Match(tag)
	got, _ := fn(tag)
	assert.Equal(t, "other", want)
	assert.Equal(t, want, got)
}

func TestTableize_PanicsOnNonComparableInput(t *testing.T) {
	s := switcher.Compile(switcher.Listed(switcher.ClauseList[[]int, int]{
		{Case: func([]int) bool { return true }, Value: 1},
	}))
	fn := switcher.Tableize(s, 2)

	assert.Panics(t, func() { fn([]int{1}) })
}

func TestTableize_PanicsOnZeroSize(t *testing.T) {
	s := switcher.Compile(switcher.Keyed[string](species))
	assert.Panics(t, func() { switcher.Tableize(s, 0) })
}

func TestTableizeSharded_Concurrent(t *testing.T) {
	s := switcher.Compile(switcher.Keyed[int](switcher.FromMap(map[string]string{
		"1": "one",
		"2": "two",
		"3": "three",
	})), switcher.WithDefault("many"))
	fn := switcher.TableizeSharded(s, 4, 16)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				n := i%5 + 1
				v, ok := fn(n)
				want, _ := s.Match(n)
				assert.True(t, ok)
				assert.Equal(t, want, v, fmt.Sprintf("input %d", n))
			}
		}()
	}
	wg.Wait()
}
