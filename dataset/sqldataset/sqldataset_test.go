package sqldataset_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pbanos/agaricus/dataset/sqldataset"
	"github.com/pbanos/agaricus/dataset/sqldataset/sqlite3adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite3adapter.Open(filepath.Join(t.TempDir(), "mushrooms.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `CREATE TABLE mushrooms (
		"cap-shape" TEXT,
		"class" TEXT NOT NULL,
		"stalk-root" TEXT NULL)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO mushrooms ("cap-shape", "class", "stalk-root") VALUES
		('x', 'p', 'e'),
		('b', 'e', NULL),
		('x', 'e', 'c')`)
	require.NoError(t, err)

	ds, err := sqldataset.Read(ctx, db, "mushrooms", "class")
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "e", "e"}, ds.Labels())
	assert.Equal(t, [][]string{{"x", "e"}, {"b", "?"}, {"x", "c"}}, ds.Rows())

	_, err = sqldataset.Read(ctx, db, "mushrooms", "edibility")
	assert.Error(t, err)
	_, err = sqldataset.Read(ctx, db, "missing", "class")
	assert.Error(t, err)
	_, err = sqldataset.Read(ctx, db, `mush"rooms`, "class")
	assert.Error(t, err)
}
