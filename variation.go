package agaricus

import (
	"fmt"
	"math/rand"
)

// Variation identifies the way attributes to split on are selected.
type Variation int

const (
	// Regular selects the attribute with the greatest information gain,
	// the first one on ties.
	Regular Variation = iota
	// Roulette selects an attribute at random with a probability
	// proportional to its information gain.
	Roulette
)

var variationNames = map[Variation]string{
	Regular:  "regular",
	Roulette: "roulette",
}

/*
ParseVariation takes the name of a variation and returns the Variation or
an *UnknownVariationError if the name is not "regular" or "roulette".
*/
func ParseVariation(name string) (Variation, error) {
	for v, n := range variationNames {
		if n == name {
			return v, nil
		}
	}
	return 0, &UnknownVariationError{name}
}

func (v Variation) String() string {
	if n, ok := variationNames[v]; ok {
		return n
	}
	return fmt.Sprintf("Variation(%d)", int(v))
}

func (v Variation) valid() bool {
	_, ok := variationNames[v]
	return ok
}

func (b *builder) selectPartition(candidates []*Partition) *Partition {
	if b.variation == Roulette {
		return rouletteWheel(candidates, b.rand)
	}
	return bestPartition(candidates)
}

/*
bestPartition returns the candidate with the greatest information gain.
Comparison is strict so the earliest candidate wins ties.
*/
func bestPartition(candidates []*Partition) *Partition {
	var selected *Partition
	for _, p := range candidates {
		if selected == nil || p.informationGain > selected.informationGain {
			selected = p
		}
	}
	return selected
}

/*
rouletteWheel returns a candidate drawn at random with a probability
proportional to its information gain. Gains below zero count as zero.
When no candidate has any gain the first one is returned.
*/
func rouletteWheel(candidates []*Partition, r *rand.Rand) *Partition {
	cumulative := make([]float64, len(candidates))
	var total float64
	for i, p := range candidates {
		if p.informationGain > 0 {
			total += p.informationGain
		}
		cumulative[i] = total
	}
	if total <= 0 {
		return candidates[0]
	}
	draw := r.Float64() * total
	for i, c := range cumulative {
		if c > draw {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}
