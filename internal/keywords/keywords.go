// Package keywords surfaces the intent signals hidden in lead comments.
// The remote reranker adjusts scores from intent phrases it finds in the
// comment text; this panel counts the same vocabulary across the current
// lead collection with a top-K sketch and shows the strongest signals.
package keywords

import (
	"strings"

	"github.com/keilerkonzept/topk"
)

// vocabulary is the single-word subset of the reranker's intent keywords.
// Multi-word phrases are matched as substrings of the whole comment.
var vocabulary = []string{
	"urgent", "asap", "immediately", "today", "tomorrow", "approved",
	"excited", "ideal", "love", "perfect", "maybe", "possibly", "someday",
	"browsing", "interested", "considering", "wondering", "searching",
	"exploring",
}

var phrases = []string{
	"ready to purchase", "pre-approved loan", "cash buyer",
	"looking to close quickly", "very interested", "dream home",
	"must have", "serious buyer", "ready to move", "ready to sign",
	"ready to make an offer", "just browsing", "not interested",
	"just looking", "just checking", "too expensive", "out of budget",
	"not ready", "need more time", "financing ready", "down payment ready",
}

// Signal is one intent keyword with its occurrence count.
type Signal struct {
	Keyword string
	Count   uint32
}

// Board counts intent keywords over lead comments.
type Board struct {
	k      int
	sketch *topk.Sketch
}

// NewBoard tracks the top k intent signals.
func NewBoard(k int) *Board {
	if k < 1 {
		k = 1
	}
	return &Board{k: k, sketch: topk.New(k, topk.WithWidth(256), topk.WithDepth(2))}
}

// Rebuild replaces the board's counts with those of the given comments.
// Called whenever the canonical lead collection is replaced.
func (b *Board) Rebuild(comments []string) {
	b.sketch = topk.New(b.k, topk.WithWidth(256), topk.WithDepth(2))
	for _, c := range comments {
		b.observe(c)
	}
}

func (b *Board) observe(comment string) {
	if comment == "" {
		return
	}
	lower := strings.ToLower(comment)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			b.sketch.Incr(p)
		}
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})
	for _, w := range words {
		for _, kw := range vocabulary {
			if w == kw {
				b.sketch.Incr(kw)
				break
			}
		}
	}
}

// Top returns the strongest signals, most frequent first.
func (b *Board) Top() []Signal {
	items := b.sketch.SortedSlice()
	out := make([]Signal, 0, len(items))
	for _, it := range items {
		out = append(out, Signal{Keyword: it.Item, Count: it.Count})
	}
	return out
}
