package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/pbanos/agaricus"
	"github.com/pbanos/agaricus/dataset"
	"github.com/pbanos/agaricus/dataset/csv"
	"github.com/pbanos/agaricus/dataset/mongodataset"
	"github.com/pbanos/agaricus/dataset/sqldataset"
	"github.com/pbanos/agaricus/dataset/sqldataset/pgadapter"
	"github.com/pbanos/agaricus/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/agaricus/tree"
	"github.com/pbanos/agaricus/tree/yaml"
	"github.com/spf13/cobra"
)

// inputCmdConfig holds the flags shared by the commands that grow a tree.
type inputCmdConfig struct {
	*rootCmdConfig
	dataInput        string
	table            string
	labelColumn      int
	label            string
	attributes       []string
	header           bool
	trainingRatio    float64
	variation        string
	seed             int64
	sharedAttributes bool
	namesInput       string
}

// addFlags registers the shared flags, defaulting training-ratio to trainingRatio.
func (icc *inputCmdConfig) addFlags(cmd *cobra.Command, trainingRatio float64) {
	cmd.PersistentFlags().StringVarP(&(icc.dataInput), "input", "i", "", "path to an input CSV file or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(icc.table), "table", "t", "", "table or collection holding the data (required for database inputs)")
	cmd.PersistentFlags().IntVarP(&(icc.labelColumn), "label-column", "c", 0, "index of the CSV column holding the class labels, negative values count from the last column")
	cmd.PersistentFlags().StringVarP(&(icc.label), "label", "l", "class", "name of the column or field holding the class labels on database inputs")
	cmd.PersistentFlags().StringSliceVarP(&(icc.attributes), "attributes", "a", nil, "names of the fields to use as attributes on MongoDB inputs (required for MongoDB inputs)")
	cmd.PersistentFlags().BoolVar(&(icc.header), "header", false, "skip the first line of CSV input as a header")
	cmd.PersistentFlags().Float64VarP(&(icc.trainingRatio), "training-ratio", "r", trainingRatio, "ratio of the input used to grow the tree, the rest is used to evaluate it")
	cmd.PersistentFlags().StringVar(&(icc.variation), "variation", agaricus.Regular.String(), "attribute selection variation, one of regular or roulette")
	cmd.PersistentFlags().Int64Var(&(icc.seed), "seed", 0, "seed for the roulette variation (defaults to 0: seeded from the clock)")
	cmd.PersistentFlags().BoolVar(&(icc.sharedAttributes), "shared-attributes", false, "remove attributes used to split a node from the whole tree instead of from the node's descendants only")
	cmd.PersistentFlags().StringVarP(&(icc.namesInput), "names", "n", "", "path to a YML file with display names for attributes, values and classes")
}

func (icc *inputCmdConfig) Validate() error {
	if icc.trainingRatio <= 0 || icc.trainingRatio > 1 {
		return fmt.Errorf("training-ratio must be in (0, 1], got %v", icc.trainingRatio)
	}
	if _, err := agaricus.ParseVariation(icc.variation); err != nil {
		return err
	}
	if icc.databaseInput() && icc.table == "" {
		return fmt.Errorf("required table flag was not set for database input %s", icc.dataInput)
	}
	if icc.mongoDBInput() && len(icc.attributes) == 0 {
		return fmt.Errorf("required attributes flag was not set for MongoDB input")
	}
	return nil
}

func (icc *inputCmdConfig) postgreSQLInput() bool {
	return strings.HasPrefix(icc.dataInput, "postgresql://")
}

func (icc *inputCmdConfig) mongoDBInput() bool {
	return strings.HasPrefix(icc.dataInput, "mongodb://")
}

func (icc *inputCmdConfig) sqlite3Input() bool {
	return strings.HasSuffix(icc.dataInput, ".db")
}

func (icc *inputCmdConfig) databaseInput() bool {
	return icc.postgreSQLInput() || icc.mongoDBInput() || icc.sqlite3Input()
}

func (icc *inputCmdConfig) dataset(ctx context.Context) (*dataset.Dataset, error) {
	switch {
	case icc.postgreSQLInput():
		icc.Logf("Connecting to PostgreSQL to read table %s...", icc.table)
		db, err := pgadapter.Open(ctx, icc.dataInput)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return sqldataset.Read(ctx, db, icc.table, icc.label)
	case icc.mongoDBInput():
		icc.Logf("Connecting to MongoDB to read collection %s...", icc.table)
		session, err := mongodataset.Dial(icc.dataInput)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		return mongodataset.Read(ctx, session, icc.table, icc.attributes, icc.label)
	case icc.sqlite3Input():
		icc.Logf("Opening SQLite3 file %s to read table %s...", icc.dataInput, icc.table)
		db, err := sqlite3adapter.Open(icc.dataInput)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return sqldataset.Read(ctx, db, icc.table, icc.label)
	}
	if icc.dataInput == "" {
		icc.Logf("Reading dataset from STDIN...")
	} else {
		icc.Logf("Reading dataset from %s...", icc.dataInput)
	}
	return csv.ReadFile(icc.dataInput, csv.Options{LabelColumn: icc.labelColumn, Header: icc.header})
}

func (icc *inputCmdConfig) names() (*tree.DisplayNames, error) {
	if icc.namesInput == "" {
		return nil, nil
	}
	icc.Logf("Reading display names from %s...", icc.namesInput)
	return yaml.ReadNamesFromFile(icc.namesInput)
}

func (icc *inputCmdConfig) options() []agaricus.Option {
	opts := []agaricus.Option{agaricus.WithLogger(icc.Logger)}
	if icc.seed != 0 {
		opts = append(opts, agaricus.WithRand(rand.New(rand.NewSource(icc.seed))))
	}
	if icc.sharedAttributes {
		opts = append(opts, agaricus.WithSharedAttributes())
	}
	return opts
}

// grow reads the input, splits it and grows a tree from the training part.
// It returns the tree and the validation part.
func (icc *inputCmdConfig) grow(ctx context.Context) (*tree.Tree, *dataset.Dataset, error) {
	ds, err := icc.dataset(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset: %v", err)
	}
	training, validation, err := ds.Split(icc.trainingRatio)
	if err != nil {
		return nil, nil, err
	}
	variation, err := agaricus.ParseVariation(icc.variation)
	if err != nil {
		return nil, nil, err
	}
	icc.Logf("Growing tree from a set with %d samples and %d attributes with the %s variation...", training.Count(), training.Width(), variation)
	t, err := agaricus.Grow(ctx, training, nil, variation, icc.options()...)
	if err != nil {
		return nil, nil, fmt.Errorf("growing the tree: %v", err)
	}
	icc.Logf("Done: tree with depth %d and %d leaves", t.Depth(), t.Leaves())
	return t, validation, nil
}
