package tree

/*
Name holds the human-readable name of a node's key and, for attribute
nodes, of the values the attribute may take.
*/
type Name struct {
	Label  string
	Values map[string]string
}

/*
DisplayNames maps the raw keys of nodes to human-readable names: attribute
indexes for internal nodes and class labels for leaves. Keys without an
entry are displayed raw.
*/
type DisplayNames struct {
	Attributes map[int]Name
	Classes    map[string]Name
}

func (dn *DisplayNames) name(n Node) (Name, bool) {
	if dn == nil {
		return Name{}, false
	}
	switch node := n.(type) {
	case *Internal:
		name, ok := dn.Attributes[node.Attribute]
		return name, ok
	case *Leaf:
		name, ok := dn.Classes[node.Class]
		return name, ok
	}
	return Name{}, false
}

func (dn *DisplayNames) nodeLabel(n Node) string {
	if name, ok := dn.name(n); ok && name.Label != "" {
		return name.Label
	}
	return n.Key()
}

func (dn *DisplayNames) valueLabel(n Node, value string) string {
	if name, ok := dn.name(n); ok {
		if label, ok := name.Values[value]; ok {
			return label
		}
	}
	return value
}
