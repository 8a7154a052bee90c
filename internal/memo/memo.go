package memo

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Table is a bounded memo table split into shards.
// Each shard keeps two generations of entries; when the current generation
// is full it becomes the previous one and the oldest generation is dropped.
type Table[O any] struct {
	shards []*shard[O]
}

type shard[O any] struct {
	mu       sync.Mutex
	current  atomic.Pointer[sync.Map]
	previous atomic.Pointer[sync.Map]
	size     atomic.Uint32
	maxSize  uint32
}

// New returns a table of numShards shards holding up to maxSize entries
// per generation each.
func New[O any](numShards int, maxSize uint32) *Table[O] {
	if numShards <= 0 {
		panic("number of shards should be greater than 0")
	}
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}

	shards := make([]*shard[O], numShards)
	for i := range shards {
		s := &shard[O]{maxSize: maxSize}
		s.current.Store(&sync.Map{})
		s.previous.Store(&sync.Map{})
		shards[i] = s
	}
	return &Table[O]{shards: shards}
}

type stringerKey struct {
	t reflect.Type
	s string
}

// Key returns the form under which i is stored.
// Stringers are stored by their dynamic type and text so non-comparable
// types can still be memoized; any other non-comparable key makes Load and
// Store panic.
func Key(i any) any {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringerKey{t: reflect.TypeOf(i), s: stringer.String()}
	}
	return i
}

func (t *Table[O]) Load(key any) (O, bool) {
	return t.shardOf(key).load(key)
}

func (t *Table[O]) Store(key any, value O) {
	t.shardOf(key).store(key, value)
}

func (t *Table[O]) shardOf(key any) *shard[O] {
	switch n := len(t.shards); n {
	case 1:
		return t.shards[0]
	default:
		return t.shards[hash(key)%uint64(n)]
	}
}

func hash(key any) uint64 {
	switch k := key.(type) {
	case string:
		return xxhash.Sum64String(k)
	case stringerKey:
		return xxhash.Sum64String(k.t.String() + ":" + k.s)
	}
	return xxhash.Sum64String(fmt.Sprintf("%T:%v", key, key))
}

func (s *shard[O]) load(key any) (O, bool) {
	if v, ok := s.current.Load().Load(key); ok {
		return v.(O), true
	}
	if v, ok := s.previous.Load().Load(key); ok {
		return v.(O), true
	}
	var zero O
	return zero, false
}

func (s *shard[O]) store(key any, value O) {
	if s.size.Add(1) > s.maxSize {
		s.rotate()
	}
	s.current.Load().Store(key, value)
}

func (s *shard[O]) rotate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// another writer already rotated
	if s.size.Load() <= s.maxSize {
		return
	}
	s.previous.Store(s.current.Load())
	s.current.Store(&sync.Map{})
	s.size.Store(1)
}
