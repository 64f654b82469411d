package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const agaricusLepiota = `p,x,s,n,t,p
e,x,s,y,t,a
e,b,s,w,t,l
p,x,y,w,t,p
e,x,s,g,f,n
`

func TestRead_LabelInFirstColumn(t *testing.T) {
	ds, err := Read(strings.NewReader(agaricusLepiota), Options{})
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Count())
	assert.Equal(t, 5, ds.Width())
	assert.Equal(t, []string{"p", "e", "e", "p", "e"}, ds.Labels())
	assert.Equal(t, []string{"b", "s", "w", "t", "l"}, ds.Row(2))
}

func TestRead_LabelInLastColumnWithHeader(t *testing.T) {
	in := "cap-shape;odor;class\nx;n;e\nb;f;p\n"
	ds, err := Read(strings.NewReader(in), Options{LabelColumn: -1, Header: true, Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "p"}, ds.Labels())
	assert.Equal(t, [][]string{{"x", "n"}, {"b", "f"}}, ds.Rows())
}

func TestRead_LabelColumnOutOfRange(t *testing.T) {
	_, err := Read(strings.NewReader(agaricusLepiota), Options{LabelColumn: 6})
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agaricus-lepiota.data")
	require.NoError(t, os.WriteFile(path, []byte(agaricusLepiota), 0o644))
	ds, err := ReadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Count())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.data"), Options{})
	assert.Error(t, err)
}
