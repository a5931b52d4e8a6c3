package combo

import "sort"

// counter is the frontier's "remaining multiset" (spec 3, 9): a count per
// distinct syllable plus the distinct syllables in sorted order, so the
// extend transition's "for each distinct syllable still in remaining"
// loop runs in a stable, reproducible order across identical inputs (spec
// 5, "Ordering guarantees") — the state key is the sorted (syllable,
// count) tuple, and iteration follows that same order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter(items []string) *counter {
	c := &counter{counts: make(map[string]int, len(items))}
	for _, it := range items {
		if _, ok := c.counts[it]; !ok {
			c.order = append(c.order, it)
		}
		c.counts[it]++
	}
	sort.Strings(c.order)
	return c
}

func (c *counter) clone() *counter {
	counts := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		counts[k] = v
	}
	order := make([]string, len(c.order))
	copy(order, c.order)
	return &counter{order: order, counts: counts}
}

func (c *counter) empty() bool {
	return len(c.counts) == 0
}

// decrement removes one occurrence of key, dropping it from both counts
// and order once its count reaches zero.
func (c *counter) decrement(key string) {
	c.counts[key]--
	if c.counts[key] <= 0 {
		delete(c.counts, key)
		for i, k := range c.order {
			if k == key {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// asMap returns a defensive copy suitable for embedding in a TraceEvent.
func (c *counter) asMap() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
