package mongodataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"
)

func TestFromDocument(t *testing.T) {
	attributes := []string{"cap-shape", "stalk-root", "rings"}
	row, class, err := fromDocument(bson.M{"_id": bson.NewObjectId(), "class": "p", "cap-shape": "x", "rings": 1}, attributes, "class")
	require.NoError(t, err)
	assert.Equal(t, "p", class)
	assert.Equal(t, []string{"x", "?", "1"}, row)
}

func TestFromDocument_Errors(t *testing.T) {
	attributes := []string{"cap-shape"}
	_, _, err := fromDocument(bson.M{"cap-shape": "x"}, attributes, "class")
	assert.Error(t, err)
	_, _, err = fromDocument(bson.M{"class": "e", "cap-shape": bson.M{"a": 1}}, attributes, "class")
	assert.Error(t, err)
}

func TestRead_RequiresAttributes(t *testing.T) {
	_, err := Read(context.Background(), nil, "mushrooms", nil, "class")
	assert.Error(t, err)
}
