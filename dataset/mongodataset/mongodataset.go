/*
Package mongodataset provides functions to read a dataset.Dataset
from a MongoDB collection, one document per example.
*/
package mongodataset

import (
	"context"
	"fmt"
	"time"

	"github.com/pbanos/agaricus/dataset"
	"github.com/pbanos/agaricus/dataset/sqldataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// DialTimeout bounds the time Dial waits for the servers to answer.
const DialTimeout = 10 * time.Second

/*
Dial takes a MongoDB connection URL and returns a session on it or
an error if the servers cannot be reached.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.DialWithTimeout(url, DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	return session, nil
}

/*
Read takes a context, a MongoDB session, the name of a collection on the
session's default database, the names of the fields to use as attributes
and the name of the field holding the label, and returns a dataset with
a row per document in the collection. Missing fields are read as "?".
*/
func Read(ctx context.Context, session *mgo.Session, collection string, attributes []string, label string) (*dataset.Dataset, error) {
	if len(attributes) == 0 {
		return nil, fmt.Errorf("no attribute fields to read from collection %s", collection)
	}
	s := session.Copy()
	defer s.Close()
	iter := s.DB("").C(collection).Find(nil).Sort("_id").Iter()
	var (
		labels []string
		rows   [][]string
		doc    bson.M
	)
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		row, class, err := fromDocument(doc, attributes, label)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("reading document %d of collection %s: %v", len(rows), collection, err)
		}
		labels = append(labels, class)
		rows = append(rows, row)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	return dataset.New(labels, rows)
}

func fromDocument(doc bson.M, attributes []string, label string) ([]string, string, error) {
	v, ok := doc[label]
	if !ok || v == nil {
		return nil, "", fmt.Errorf("missing label field %q", label)
	}
	class := fmt.Sprint(v)
	row := make([]string, len(attributes))
	for i, a := range attributes {
		v, ok := doc[a]
		if !ok || v == nil {
			row[i] = sqldataset.MissingValue
			continue
		}
		switch v := v.(type) {
		case string:
			row[i] = v
		case bson.M, []interface{}:
			return nil, "", fmt.Errorf("field %q holds a non scalar value", a)
		default:
			row[i] = fmt.Sprint(v)
		}
	}
	return row, class, nil
}
