/*
Package dataset provides the labeled table of categorical values trees are
grown from, along with the tallies and subsets the induction works on.
*/
package dataset

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
Dataset represents a rectangular table of categorical values, one row per
example and one column per attribute, along with the class label of every
row.

A Dataset is never modified once built: subsets share the underlying rows
with the dataset they were taken from.
*/
type Dataset struct {
	labels []string
	rows   [][]string
	width  int
}

/*
New takes a slice of labels and a slice of rows and returns a Dataset built
with them or an error if they do not make a rectangular labeled table, that
is, if the number of labels differs from the number of rows or if rows have
different lengths.
*/
func New(labels []string, rows [][]string) (*Dataset, error) {
	if len(labels) != len(rows) {
		return nil, fmt.Errorf("dataset has %d rows but %d labels", len(rows), len(labels))
	}
	var width int
	if len(rows) > 0 {
		width = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), width)
		}
	}
	return &Dataset{labels: labels, rows: rows, width: width}, nil
}

// Count returns the number of rows in the dataset.
func (d *Dataset) Count() int {
	return len(d.rows)
}

// Width returns the number of attribute columns of the dataset.
func (d *Dataset) Width() int {
	return d.width
}

// Row returns the attribute values of the i-th row.
func (d *Dataset) Row(i int) []string {
	return d.rows[i]
}

// Label returns the class label of the i-th row.
func (d *Dataset) Label(i int) string {
	return d.labels[i]
}

// Rows returns the attribute values of all rows.
func (d *Dataset) Rows() [][]string {
	return d.rows
}

// Labels returns the class labels of all rows.
func (d *Dataset) Labels() []string {
	return d.labels
}

/*
CountLabels returns a Tally of the class labels in the dataset, keyed in
the order labels are first seen.
*/
func (d *Dataset) CountLabels() *Tally {
	t := NewTally()
	for _, l := range d.labels {
		t.Add(l)
	}
	return t
}

/*
Entropy returns the Shannon entropy in bits of the distribution of class
labels in the dataset.
*/
func (d *Dataset) Entropy() float64 {
	return d.CountLabels().Entropy()
}

/*
Contingency takes an attribute column index and returns the counts of
class labels for every value the attribute takes in the dataset.
*/
func (d *Dataset) Contingency(attribute int) *Contingency {
	c := newContingency()
	for i, row := range d.rows {
		c.add(row[attribute], d.labels[i])
	}
	return c
}

/*
Partition takes an attribute column index and splits the dataset into one
subset per value of the attribute. It returns the values in the order they
are first seen and the subset for each of them at the same position.
*/
func (d *Dataset) Partition(attribute int) ([]string, []*Dataset) {
	groups := linkedhashmap.New()
	for i, row := range d.rows {
		v := row[attribute]
		indexes, _ := groups.Get(v)
		if indexes == nil {
			groups.Put(v, []int{i})
			continue
		}
		groups.Put(v, append(indexes.([]int), i))
	}
	values := make([]string, 0, groups.Size())
	subsets := make([]*Dataset, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		values = append(values, it.Key().(string))
		subsets = append(subsets, d.Subset(it.Value().([]int)))
	}
	return values, subsets
}

/*
Subset takes a slice of row indexes and returns a Dataset with those rows,
in the given order.
*/
func (d *Dataset) Subset(indexes []int) *Dataset {
	labels := make([]string, len(indexes))
	rows := make([][]string, len(indexes))
	for i, index := range indexes {
		labels[i] = d.labels[index]
		rows[i] = d.rows[index]
	}
	return &Dataset{labels: labels, rows: rows, width: d.width}
}

/*
Split takes a ratio in the (0, 1] interval and returns two datasets: one
with the first rows of the dataset up to that ratio of its count, to train
trees with, and one with the rest, to validate them. When no rows are left
for validation, the whole dataset is returned as validation set.
*/
func (d *Dataset) Split(ratio float64) (training *Dataset, validation *Dataset, err error) {
	if ratio <= 0.0 || ratio > 1.0 {
		return nil, nil, fmt.Errorf("training ratio %v is not in the (0, 1] interval", ratio)
	}
	n := int(float64(len(d.rows)) * ratio)
	training = &Dataset{labels: d.labels[:n], rows: d.rows[:n], width: d.width}
	validation = &Dataset{labels: d.labels[n:], rows: d.rows[n:], width: d.width}
	if validation.Count() == 0 {
		validation = d
	}
	return training, validation, nil
}

func (d *Dataset) String() string {
	return fmt.Sprintf("[ %d x %d ]", len(d.rows), d.width)
}
