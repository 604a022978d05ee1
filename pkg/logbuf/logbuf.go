// Package logbuf provides the bounded, concurrency-safe line store backing the
// console log pane.
package logbuf

import "sync"

// Capacity is the number of lines retained when no explicit capacity is given.
const Capacity = 1000

// Buffer is a mutex-guarded ring of text lines. When an append would exceed the
// capacity the oldest line is evicted first.
type Buffer struct {
	mu    sync.Mutex
	lines []string
	start int
	size  int
	total uint64
}

// New constructs an empty buffer holding at most capacity lines. A
// non-positive capacity falls back to Capacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &Buffer{lines: make([]string, capacity)}
}

// Append stores line at the tail, evicting the oldest line when full.
func (b *Buffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.total++
	capacity := len(b.lines)
	if b.size < capacity {
		b.lines[(b.start+b.size)%capacity] = line
		b.size++
		return
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % capacity
}

// Snapshot returns an ordered copy of the current contents, oldest first.
func (b *Buffer) Snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, b.size)
	capacity := len(b.lines)
	for i := 0; i < b.size; i++ {
		out[i] = b.lines[(b.start+i)%capacity]
	}
	return out
}

// Since returns the retained lines from appends after the first n, oldest
// first, together with the number of appends so far. Lines already evicted
// are skipped.
func (b *Buffer) Since(n uint64) ([]string, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n >= b.total {
		return nil, b.total
	}
	count := b.size
	if fresh := b.total - n; fresh < uint64(count) {
		count = int(fresh)
	}
	out := make([]string, count)
	capacity := len(b.lines)
	first := b.start + b.size - count
	for i := 0; i < count; i++ {
		out[i] = b.lines[(first+i)%capacity]
	}
	return out, b.total
}

// Len reports the number of retained lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap reports the maximum number of retained lines.
func (b *Buffer) Cap() int {
	return len(b.lines)
}
