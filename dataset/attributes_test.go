package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeSet_AscendingOrder(t *testing.T) {
	a := NewAttributeSet(3, 0, 2, 0)
	assert.Equal(t, []int{0, 2, 3}, a.Values())
	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Contains(2))
	assert.False(t, a.Contains(1))
}

func TestAttributeSet_WithoutLeavesReceiverUntouched(t *testing.T) {
	a := AllAttributes(3)
	b := a.Without(1)
	assert.Equal(t, []int{0, 1, 2}, a.Values())
	assert.Equal(t, []int{0, 2}, b.Values())
}

func TestAttributeSet_Remove(t *testing.T) {
	a := AllAttributes(2)
	a.Remove(0)
	a.Remove(1)
	assert.True(t, a.Empty())
}

func TestAttributeSet_Check(t *testing.T) {
	assert.NoError(t, NewAttributeSet(0, 1).Check(2))
	assert.Error(t, NewAttributeSet(2).Check(2))
	assert.Error(t, NewAttributeSet(-1).Check(2))
	assert.NoError(t, NewAttributeSet().Check(0))
}
