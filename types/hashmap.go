package types

import "fmt"

type Entry struct {
	Key   Data
	Value Data
}

// DHashMap is an immutable mapping that remembers insertion order.
type DHashMap struct {
	entries []Entry
	index   map[hashKey]int
}

type hashKey struct {
	tag byte
	s   string
	n   int64
}

func keyOf(d Data) (hashKey, error) {
	switch k := d.(type) {
	case *DNil:
		return hashKey{tag: 'n'}, nil
	case *DBool:
		if k.Val {
			return hashKey{tag: 'b', n: 1}, nil
		}
		return hashKey{tag: 'b'}, nil
	case *DNumber:
		return hashKey{tag: 'i', n: k.Num}, nil
	case *DString:
		return hashKey{tag: 's', s: k.Str}, nil
	case *DKeyword:
		return hashKey{tag: 'k', s: k.Name}, nil
	case *DSymbol:
		return hashKey{tag: 'y', s: k.Name}, nil
	}
	return hashKey{}, InvalidKeyf("cannot use %s as a map key", TypeName(d))
}

// NewHashMap builds a map from key/value pairs. A repeated key keeps its first
// position and takes the last value given for it.
func NewHashMap(entries []Entry) (*DHashMap, error) {
	m := &DHashMap{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[hashKey]int, len(entries)),
	}
	for _, e := range entries {
		k, err := keyOf(e.Key)
		if err != nil {
			return nil, err
		}
		if i, ok := m.index[k]; ok {
			m.entries[i].Value = e.Value
			continue
		}
		m.index[k] = len(m.entries)
		m.entries = append(m.entries, e)
	}
	return m, nil
}

// Get looks up key. Unhashable keys are simply absent.
func (m *DHashMap) Get(key Data) (Data, bool) {
	k, err := keyOf(key)
	if err != nil {
		return nil, false
	}
	i, ok := m.index[k]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

func (m *DHashMap) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the pairs in insertion order.
func (m *DHashMap) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func TypeName(d Data) string {
	switch d.(type) {
	case *DNil:
		return "nil"
	case *DBool:
		return "boolean"
	case *DNumber:
		return "integer"
	case *DString:
		return "string"
	case *DKeyword:
		return "keyword"
	case *DSymbol:
		return "symbol"
	case *DList:
		return "list"
	case *DVector:
		return "vector"
	case *DHashMap:
		return "map"
	case DNative:
		return "function"
	}
	return fmt.Sprintf("%T", d)
}
