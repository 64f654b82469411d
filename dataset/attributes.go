package dataset

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

/*
AttributeSet is a set of attribute column indexes still available to split
a dataset on. Its values are always iterated in ascending order.
*/
type AttributeSet struct {
	set *treeset.Set
}

// NewAttributeSet returns an AttributeSet with the given column indexes.
func NewAttributeSet(attributes ...int) *AttributeSet {
	s := treeset.NewWithIntComparator()
	for _, a := range attributes {
		s.Add(a)
	}
	return &AttributeSet{s}
}

/*
AllAttributes returns an AttributeSet with every column index of a dataset
with the given width.
*/
func AllAttributes(width int) *AttributeSet {
	s := treeset.NewWithIntComparator()
	for i := 0; i < width; i++ {
		s.Add(i)
	}
	return &AttributeSet{s}
}

/*
Check takes a dataset width and returns an error if any attribute in the set
is not a column index for a dataset of that width.
*/
func (a *AttributeSet) Check(width int) error {
	for _, i := range a.Values() {
		if i < 0 || i >= width {
			return fmt.Errorf("attribute %d is out of range for a dataset with %d columns", i, width)
		}
	}
	return nil
}

// Len returns the number of attributes in the set.
func (a *AttributeSet) Len() int {
	return a.set.Size()
}

// Empty returns whether the set has no attributes left.
func (a *AttributeSet) Empty() bool {
	return a.set.Empty()
}

// Contains returns whether the given attribute is in the set.
func (a *AttributeSet) Contains(attribute int) bool {
	return a.set.Contains(attribute)
}

// Values returns the attributes in the set in ascending order.
func (a *AttributeSet) Values() []int {
	values := make([]int, 0, a.set.Size())
	for _, v := range a.set.Values() {
		values = append(values, v.(int))
	}
	return values
}

// Remove takes the given attribute out of the set.
func (a *AttributeSet) Remove(attribute int) {
	a.set.Remove(attribute)
}

/*
Without returns a new AttributeSet with the attributes of this one except
the given one. The receiver is left untouched.
*/
func (a *AttributeSet) Without(attribute int) *AttributeSet {
	s := treeset.NewWithIntComparator(a.set.Values()...)
	s.Remove(attribute)
	return &AttributeSet{s}
}

// Clone returns a new AttributeSet with the same attributes.
func (a *AttributeSet) Clone() *AttributeSet {
	return &AttributeSet{treeset.NewWithIntComparator(a.set.Values()...)}
}

func (a *AttributeSet) String() string {
	return fmt.Sprintf("%v", a.Values())
}
