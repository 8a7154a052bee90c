package switcher_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/on-the-ground/switcher_go/switcher"
)

func numberedKeys(n int) switcher.KeyMapping[int] {
	keys := make(switcher.KeyMapping[int], n)
	for i := range keys {
		keys[i] = switcher.Entry[int]{Key: "key-" + strconv.Itoa(i), Value: i}
	}
	return keys
}

func BenchmarkKeys(b *testing.B) {
	for _, size := range []int{8, 64, 512} {
		keys := numberedKeys(size)
		last := keys[size-1].Key

		b.Run(fmt.Sprintf("Linear_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = switcher.Keys(last, keys)
			}
		})

		b.Run(fmt.Sprintf("Compiled_%d", size), func(b *testing.B) {
			s := switcher.Compile(switcher.Keyed[string](keys))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = s.Match(last)
			}
		})
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func closeTo(word string) func(string) bool {
	return func(s string) bool {
		return naiveLevenshtein(strings.ToLower(s), word) <= 2
	}
}

func BenchmarkCases(b *testing.B) {
	clauses := switcher.ClauseList[string, string]{
		{Case: closeTo("lion"), Value: "Panthera leo"},
		{Case: closeTo("dog"), Value: "Canis familiaris"},
		{Case: closeTo("kitten"), Value: "Felis catus"},
	}
	s := switcher.Compile(switcher.Listed(clauses))

	b.Run("Naive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = s.Match("sitting")
		}
	})

	for _, size := range []uint32{2, 8, 32} {
		b.Run(fmt.Sprintf("Tableized_%d", size), func(b *testing.B) {
			fn := switcher.Tableize(s, size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = fn("sitting")
			}
		})
	}
}
