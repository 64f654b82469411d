package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mushrooms(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New(
		[]string{"p", "e", "e", "p", "e", "e"},
		[][]string{
			{"x", "n"},
			{"x", "a"},
			{"b", "l"},
			{"x", "p"},
			{"x", "n"},
			{"b", "a"},
		},
	)
	require.NoError(t, err)
	return ds
}

func TestNew_RejectsLabelCountMismatch(t *testing.T) {
	_, err := New([]string{"p"}, [][]string{{"x"}, {"b"}})
	assert.Error(t, err)
}

func TestNew_RejectsRaggedRows(t *testing.T) {
	_, err := New([]string{"p", "e"}, [][]string{{"x", "n"}, {"b"}})
	assert.Error(t, err)
}

func TestNew_Empty(t *testing.T) {
	ds, err := New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Count())
	assert.Equal(t, 0, ds.Width())
}

func TestCountLabels_FirstSeenOrder(t *testing.T) {
	ds := mushrooms(t)
	tally := ds.CountLabels()
	assert.Equal(t, []string{"p", "e"}, tally.Keys())
	assert.Equal(t, 2, tally.Count("p"))
	assert.Equal(t, 4, tally.Count("e"))
	assert.Equal(t, 0, tally.Count("x"))
	assert.Equal(t, 6, tally.Total())
}

func TestEntropy(t *testing.T) {
	ds, err := New([]string{"x", "x", "y", "y"}, [][]string{{"0"}, {"0"}, {"1"}, {"1"}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ds.Entropy(), 1e-12)

	pure, err := New([]string{"x", "x"}, [][]string{{"0"}, {"1"}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, pure.Entropy())
}

func TestContingency(t *testing.T) {
	ds := mushrooms(t)
	c := ds.Contingency(0)
	assert.Equal(t, []string{"x", "b"}, c.Values())
	assert.Equal(t, 2, c.Labels("x").Count("p"))
	assert.Equal(t, 2, c.Labels("x").Count("e"))
	assert.Equal(t, 2, c.Labels("b").Count("e"))
	assert.Equal(t, 0, c.Labels("z").Total())
	// x: 4 rows, 2/2 split, 1 bit; b: 2 rows, pure.
	assert.InDelta(t, 4.0/6.0, c.ConditionalEntropy(), 1e-12)
}

func TestPartition(t *testing.T) {
	ds := mushrooms(t)
	values, subsets := ds.Partition(1)
	require.Equal(t, []string{"n", "a", "l", "p"}, values)
	require.Len(t, subsets, 4)
	assert.Equal(t, []string{"p", "e"}, subsets[0].Labels())
	assert.Equal(t, []string{"e", "e"}, subsets[1].Labels())
	assert.Equal(t, [][]string{{"x", "a"}, {"b", "a"}}, subsets[1].Rows())
	assert.Equal(t, 2, subsets[2].Width())
}

func TestSplit(t *testing.T) {
	ds := mushrooms(t)
	training, validation, err := ds.Split(0.75)
	require.NoError(t, err)
	assert.Equal(t, 4, training.Count())
	assert.Equal(t, 2, validation.Count())
	assert.Equal(t, []string{"e", "e"}, validation.Labels())
}

func TestSplit_WholeDatasetValidatesWhenNothingIsLeft(t *testing.T) {
	ds := mushrooms(t)
	training, validation, err := ds.Split(1.0)
	require.NoError(t, err)
	assert.Equal(t, 6, training.Count())
	assert.Equal(t, 6, validation.Count())
}

func TestSplit_RejectsRatioOutOfRange(t *testing.T) {
	ds := mushrooms(t)
	for _, r := range []float64{0.0, -0.5, 1.5} {
		_, _, err := ds.Split(r)
		assert.Error(t, err, "ratio %v", r)
	}
}
