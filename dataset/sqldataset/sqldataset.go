/*
Package sqldataset provides functions to read a dataset.Dataset
from a table in an SQL database.

Every column of the table but the label column becomes an attribute,
in the order the columns are declared. NULL values are read as "?",
the token used for missing values in the mushroom records.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/agaricus/dataset"
)

// MissingValue is the token NULL values are read as.
const MissingValue = "?"

/*
Read takes a context, an *sql.DB, the name of a table and the name of
the column holding the labels and returns a dataset with the rows of the
table or an error if the table cannot be queried or has no such column.
*/
func Read(ctx context.Context, db *sql.DB, table, label string) (*dataset.Dataset, error) {
	if err := checkName(table); err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing columns of table %s: %v", table, err)
	}
	labelIndex := -1
	for i, c := range columns {
		if c == label {
			labelIndex = i
			break
		}
	}
	if labelIndex < 0 {
		return nil, fmt.Errorf("table %s has no label column %q", table, label)
	}
	var (
		labels []string
		data   [][]string
		values = make([]sql.NullString, len(columns))
		dest   = make([]interface{}, len(columns))
	)
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", len(data), table, err)
		}
		row := make([]string, 0, len(columns)-1)
		for i, v := range values {
			s := MissingValue
			if v.Valid {
				s = v.String
			}
			if i == labelIndex {
				labels = append(labels, s)
				continue
			}
			row = append(row, s)
		}
		data = append(data, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return dataset.New(labels, data)
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty table name")
	}
	if strings.ContainsAny(name, `"`) {
		return fmt.Errorf(`table name '%s' contains invalid character '"'`, name)
	}
	return nil
}
