package agaricus

import (
	"github.com/pbanos/agaricus/dataset"
)

/*
Partition represents a partition of a dataset according to an attribute
into subsets with an information gain to predict the class label
*/
type Partition struct {
	Attribute int
	// Values holds the attribute values in first-seen order, once split
	Values []string
	// Subsets holds the rows for each of the Values, once split
	Subsets         []*dataset.Dataset
	informationGain float64
}

/*
NewPartition takes a dataset, an attribute column and the entropy of the
dataset's labels and returns the partition of the dataset for the given
attribute with its information gain: the entropy minus the entropy of the
labels of each attribute value's rows, weighted by their share of rows.
The partition is not split into subsets until it is selected.
*/
func NewPartition(s *dataset.Dataset, attribute int, entropy float64) *Partition {
	c := s.Contingency(attribute)
	return &Partition{
		Attribute:       attribute,
		informationGain: entropy - c.ConditionalEntropy(),
	}
}

// InformationGain returns the information gain of the partition.
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

func (p *Partition) split(s *dataset.Dataset) {
	p.Values, p.Subsets = s.Partition(p.Attribute)
}
