/*
Package yaml provides methods to parse tree.DisplayNames, the
human-readable names of attributes, their values and classes, from YAML
documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/agaricus/tree"
	yaml "gopkg.in/yaml.v2"
)

type names struct {
	Attributes map[int]name    `yaml:"attributes"`
	Classes    map[string]name `yaml:"classes"`
}

type name struct {
	Label  string            `yaml:"label"`
	Values map[string]string `yaml:"values"`
}

/*
ReadNames takes a slice of bytes with display names in YAML and returns
the tree.DisplayNames parsed from it or an error.
The YAML is expected to be an object with an attributes property and/or a
classes property. Attributes maps attribute column indexes to an object
with a label and a values object mapping raw values to names. Classes maps
raw class labels to an object with a label:

	attributes:
	  4:
	    label: odor
	    values: {"a": almond, "n": none}
	classes:
	  "e": {label: edible}
*/
func ReadNames(b []byte) (*tree.DisplayNames, error) {
	doc := &names{}
	err := yaml.Unmarshal(b, doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml names: %v", err)
	}
	if doc.Attributes == nil && doc.Classes == nil {
		return nil, fmt.Errorf("names document has neither attributes nor classes")
	}
	dn := &tree.DisplayNames{
		Attributes: make(map[int]tree.Name, len(doc.Attributes)),
		Classes:    make(map[string]tree.Name, len(doc.Classes)),
	}
	for i, n := range doc.Attributes {
		if i < 0 {
			return nil, fmt.Errorf("invalid attribute index %d", i)
		}
		dn.Attributes[i] = tree.Name{Label: n.Label, Values: n.Values}
	}
	for c, n := range doc.Classes {
		dn.Classes[c] = tree.Name{Label: n.Label, Values: n.Values}
	}
	return dn, nil
}

/*
ReadNamesFromFile takes a filepath string, reads its contents and uses
ReadNames to parse it and return the display names or an error.
*/
func ReadNamesFromFile(filepath string) (*tree.DisplayNames, error) {
	b, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading names yml file %s: %v", filepath, err)
	}
	dn, err := ReadNames(b)
	if err != nil {
		err = fmt.Errorf("parsing names yml file %s: %v", filepath, err)
	}
	return dn, err
}
