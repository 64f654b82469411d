/*
Package csv provides functions to read a dataset.Dataset from delimited
text, one example per line.
*/
package csv

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pbanos/agaricus/dataset"
)

/*
Options describe the layout of the delimited text.
*/
type Options struct {
	// LabelColumn is the index of the column holding the class labels.
	// Negative values count from the last column, -1 being the last one.
	LabelColumn int
	// Header indicates the first line holds column names and must be skipped.
	Header bool
	// Delimiter separates values on a line, ',' if unset.
	Delimiter rune
}

/*
Read takes an io.Reader with delimited text and the Options describing it
and returns the dataset read from it: the label column becomes the labels
and every other column, in order, an attribute. Values are kept as read,
so '?' or any other token is just another categorical value.
*/
func Read(r io.Reader, opts Options) (*dataset.Dataset, error) {
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(opts.Header),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(delimiter),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("reading delimited text: %v", df.Err)
	}
	labelColumn := opts.LabelColumn
	if labelColumn < 0 {
		labelColumn += df.Ncol()
	}
	if labelColumn < 0 || labelColumn >= df.Ncol() {
		return nil, fmt.Errorf("label column %d out of range for %d columns", opts.LabelColumn, df.Ncol())
	}
	records := df.Records()
	// the first record holds the column names
	records = records[1:]
	labels := make([]string, 0, len(records))
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, len(record)-1)
		for i, v := range record {
			if i == labelColumn {
				labels = append(labels, v)
				continue
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return dataset.New(labels, rows)
}

/*
ReadFile takes a filepath string and Options, opens the file the filepath
points to and uses Read to return the dataset read from it or an error.
An empty filepath reads from STDIN.
*/
func ReadFile(filepath string, opts Options) (*dataset.Dataset, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("opening dataset: %v", err)
		}
		defer f.Close()
	}
	ds, err := Read(f, opts)
	if err != nil {
		err = fmt.Errorf("parsing delimited file %s: %v", filepath, err)
	}
	return ds, err
}
