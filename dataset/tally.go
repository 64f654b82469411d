package dataset

import (
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
Tally counts occurrences of string values, remembering the order in which
values were first added.
*/
type Tally struct {
	counts *linkedhashmap.Map
	total  int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: linkedhashmap.New()}
}

// Add counts one more occurrence of the given value.
func (t *Tally) Add(value string) {
	c, _ := t.counts.Get(value)
	n, _ := c.(int)
	t.counts.Put(value, n+1)
	t.total++
}

// Count returns the number of occurrences of the given value.
func (t *Tally) Count(value string) int {
	c, ok := t.counts.Get(value)
	if !ok {
		return 0
	}
	return c.(int)
}

// Keys returns the distinct values counted, in first-seen order.
func (t *Tally) Keys() []string {
	keys := make([]string, 0, t.counts.Size())
	for _, k := range t.counts.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Len returns the number of distinct values counted.
func (t *Tally) Len() int {
	return t.counts.Size()
}

// Total returns the number of occurrences counted.
func (t *Tally) Total() int {
	return t.total
}

/*
Majority returns the most frequent value. On ties the value seen first
wins. It returns an empty string for an empty Tally.
*/
func (t *Tally) Majority() string {
	var best string
	bestCount := -1
	it := t.counts.Iterator()
	for it.Next() {
		if c := it.Value().(int); c > bestCount {
			best = it.Key().(string)
			bestCount = c
		}
	}
	return best
}

/*
Entropy returns the Shannon entropy in bits of the distribution described
by the Tally: -Σ p·log2(p) over the relative frequency p of every value.
*/
func (t *Tally) Entropy() float64 {
	var result float64
	if t.total == 0 {
		return result
	}
	total := float64(t.total)
	it := t.counts.Iterator()
	for it.Next() {
		p := float64(it.Value().(int)) / total
		result -= p * math.Log2(p)
	}
	return result
}

/*
Contingency holds, for every value of an attribute, a Tally of the class
labels of the rows taking that value.
*/
type Contingency struct {
	values *linkedhashmap.Map
	total  int
}

func newContingency() *Contingency {
	return &Contingency{values: linkedhashmap.New()}
}

func (c *Contingency) add(value, label string) {
	t, ok := c.values.Get(value)
	if !ok {
		t = NewTally()
		c.values.Put(value, t)
	}
	t.(*Tally).Add(label)
	c.total++
}

// Values returns the attribute values, in first-seen order.
func (c *Contingency) Values() []string {
	values := make([]string, 0, c.values.Size())
	for _, v := range c.values.Keys() {
		values = append(values, v.(string))
	}
	return values
}

// Labels returns the Tally of class labels for the given attribute value.
func (c *Contingency) Labels(value string) *Tally {
	t, ok := c.values.Get(value)
	if !ok {
		return NewTally()
	}
	return t.(*Tally)
}

/*
ConditionalEntropy returns the entropy of class labels once the attribute
value is known: the sum of the entropy of each value's labels weighted by
the fraction of rows taking that value.
*/
func (c *Contingency) ConditionalEntropy() float64 {
	var result float64
	if c.total == 0 {
		return result
	}
	total := float64(c.total)
	it := c.values.Iterator()
	for it.Next() {
		t := it.Value().(*Tally)
		result += float64(t.Total()) / total * t.Entropy()
	}
	return result
}
