package tree

import (
	"fmt"

	"github.com/pbanos/agaricus/dataset"
)

/*
Report holds the outcome of classifying the samples of a labeled dataset
with a tree.
*/
type Report struct {
	// Total is the number of samples classified
	Total int
	// Correct is the number of samples whose predicted class matched their label
	Correct int
	// Misclassified is the number of samples predicted with a different class
	Misclassified int
	// Unclassifiable is the number of samples the tree could not classify
	Unclassifiable int
}

/*
Evaluate takes a labeled dataset and classifies each of its samples with
the tree, returning a Report comparing the results to the samples' labels.
*/
func (t *Tree) Evaluate(ds *dataset.Dataset) Report {
	var r Report
	for i := 0; i < ds.Count(); i++ {
		r.Total++
		class, ok := t.Classify(ds.Row(i))
		switch {
		case !ok:
			r.Unclassifiable++
		case class == ds.Label(i):
			r.Correct++
		default:
			r.Misclassified++
		}
	}
	return r
}

/*
Accuracy returns the fraction of samples correctly classified over all
samples, unclassifiable ones included. It returns 0 for an empty report.
*/
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0.0
	}
	return float64(r.Correct) / float64(r.Total)
}

func (r Report) String() string {
	return fmt.Sprintf("Accuracy over %d cases: %.2f%%", r.Total, r.Accuracy()*100)
}
