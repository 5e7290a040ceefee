package log

import (
	"bytes"
	"slices"
	"sync"
)

const defaultFeedLimit = 50

// Feed is an [io.Writer] that retains the most recent complete log lines.
//
// A full-screen terminal UI cannot share stderr with a log handler, so the
// UI points the handler at a Feed and renders [Feed.Lines] instead. Partial
// writes are buffered until a newline arrives. Safe for concurrent use.
//
// Create instances with [NewFeed].
type Feed struct {
	notify  chan struct{}
	lines   []string
	partial []byte
	limit   int
	mu      sync.Mutex
}

// NewFeed creates a [Feed] that keeps at most limit lines. Values less than
// 1 use the default of 50.
func NewFeed(limit int) *Feed {
	if limit < 1 {
		limit = defaultFeedLimit
	}

	return &Feed{
		limit:  limit,
		notify: make(chan struct{}, 1),
	}
}

// Write appends every complete line in b to the feed, evicting the oldest
// lines past the limit. Write always returns len(b), nil.
func (f *Feed) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.partial = append(f.partial, b...)

	added := false

	for {
		line, rest, ok := bytes.Cut(f.partial, []byte{'\n'})
		if !ok {
			break
		}

		f.lines = append(f.lines, string(bytes.TrimRight(line, "\r")))
		f.partial = rest
		added = true
	}

	if len(f.partial) == 0 {
		f.partial = nil
	}

	if over := len(f.lines) - f.limit; over > 0 {
		f.lines = slices.Delete(f.lines, 0, over)
	}

	if added {
		select {
		case f.notify <- struct{}{}:
		default:
		}
	}

	return len(b), nil
}

// Lines returns a copy of the retained lines, oldest first.
func (f *Feed) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.lines)
}

// Last returns the most recent line, or "" when nothing was logged.
func (f *Feed) Last() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.lines) == 0 {
		return ""
	}

	return f.lines[len(f.lines)-1]
}

// Updated returns a channel that receives a value after one or more lines
// were added. Signals coalesce: several writes between receives produce a
// single notification.
func (f *Feed) Updated() <-chan struct{} {
	return f.notify
}
