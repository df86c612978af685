package dashboard

import (
	"math"
	"slices"
)

// Count is one bucket of an exploded count.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Share is one category's percentage of the filtered titles.
type Share struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
}

// YearCount is the number of filtered titles released in Year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// counter counts keys and remembers the order they were first seen.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) addAll(keys []string) {
	for _, k := range keys {
		c.add(k)
	}
}

// sorted returns all buckets by count descending. Ties keep first-seen order.
func (c *counter) sorted() []Count {
	out := make([]Count, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Count{Name: k, Count: c.counts[k]})
	}
	slices.SortStableFunc(out, func(a, b Count) int {
		return b.Count - a.Count
	})
	return out
}

// top returns the n largest buckets. Ties are broken by first-seen order,
// so the result is deterministic for a given dataset order.
func (c *counter) top(n int) []Count {
	all := c.sorted()
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// percentages converts counts to percentages of total.
func percentages(c *counter, total int) map[string]float64 {
	out := make(map[string]float64, len(c.counts))
	if total == 0 {
		return out
	}
	for k, n := range c.counts {
		out[k] = float64(n) * 100 / float64(total)
	}
	return out
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
