package model

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a structural hash of the node.
// It is computed on first use, at most once, and is safe to call concurrently.
func (n *Node) Hash() uint64 {
	if n == nil {
		return 0
	}
	return n.hash()
}

func (n *Node) computeHash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeUint := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}

	_, _ = d.WriteString(n.def.Name)
	switch v := n.value.(type) {
	case nil:
		writeUint(0)
	case DecimalValue:
		dec := v.Decimal()
		if dec.IsZero() {
			dec.Negative = false
		}
		writeUint(1)
		_, _ = d.WriteString(dec.Text('G'))
	default:
		writeUint(2)
		_, _ = d.WriteString(valueKind(v))
		_, _ = d.WriteString(v.String())
	}
	for i, f := range n.fields {
		if len(f) == 0 {
			continue
		}
		writeUint(uint64(i))
		writeUint(uint64(len(f)))
		for _, c := range f {
			writeUint(c.Hash())
		}
	}
	return d.Sum64()
}

// Equal reports whether n and o have the same type, value and children, in the same order.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.def != o.def && n.def.Name != o.def.Name {
		return false
	}
	if len(n.fields) != len(o.fields) || n.Hash() != o.Hash() {
		return false
	}
	if !valueEqual(n.value, o.value) {
		return false
	}
	for i := range n.fields {
		if len(n.fields[i]) != len(o.fields[i]) {
			return false
		}
		for j := range n.fields[i] {
			if !n.fields[i][j].Equal(o.fields[i][j]) {
				return false
			}
		}
	}
	return true
}
