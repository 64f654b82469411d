package agaricus

import "fmt"

// BuildError represents an error growing a tree
type BuildError string

/*
ErrEmptyTrainingSet is the error returned when trying to grow a tree
without training rows.
*/
const ErrEmptyTrainingSet = BuildError("cannot build a tree without training data")

func (be BuildError) Error() string {
	return string(be)
}

/*
UnknownVariationError is the error returned when a variation other than
regular or roulette is requested.
*/
type UnknownVariationError struct {
	Name string
}

func (uve *UnknownVariationError) Error() string {
	return fmt.Sprintf("unknown variation %q, expected regular or roulette", uve.Name)
}
