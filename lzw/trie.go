// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

// trieNode is a node of the prefix tree. The children are indexes into the
// node slice of the table. Code is -1 for nodes without a code.
type trieNode struct {
	code     int32
	children map[byte]int32
}

// trieTable keeps a copy of the byte sequence for every code. The prefix
// tree is only used while learning new codes.
type trieTable struct {
	seqs  [][]byte
	nodes []trieNode
	// visited holds the sequence walked by visit
	visited []byte
	// literals backs the sequences for the codes 0-255
	literals []byte
}

func newTrieTable() *trieTable {
	t := &trieTable{literals: make([]byte, ClearCode)}
	for i := range t.literals {
		t.literals[i] = byte(i)
	}
	t.Reset()
	return t
}

// Reset rebuilds the literal entries and the first level of the prefix
// tree. Node 0 is the root and node i+1 represents literal i.
func (t *trieTable) Reset() {
	t.seqs = t.seqs[:0]
	for i := 0; i < ClearCode; i++ {
		t.seqs = append(t.seqs, t.literals[i:i+1:i+1])
	}
	t.seqs = append(t.seqs, nil, nil)

	t.nodes = t.nodes[:0]
	root := trieNode{code: -1, children: make(map[byte]int32, ClearCode)}
	t.nodes = append(t.nodes, root)
	for i := 0; i < ClearCode; i++ {
		root.children[byte(i)] = int32(len(t.nodes))
		t.nodes = append(t.nodes, trieNode{code: int32(i)})
	}
	t.visited = t.visited[:0]
}

// Len returns the number of entries.
func (t *trieTable) Len() int { return len(t.seqs) }

// Resolve returns the stored sequence.
func (t *trieTable) Resolve(code int) (seq []byte, ok bool) {
	if !isData(code, len(t.seqs)) {
		return nil, false
	}
	return t.seqs[code], true
}

// First returns the first byte of the stored sequence.
func (t *trieTable) First(code int) (c byte, ok bool) {
	if !isData(code, len(t.seqs)) {
		return 0, false
	}
	return t.seqs[code][0], true
}

// visit appends c to the visited sequence and walks the prefix tree along
// it, creating missing nodes. If the final node has no code, the next code
// is assigned to it and created is true.
func (t *trieTable) visit(c byte) (code int, created bool) {
	t.visited = append(t.visited, c)
	i := int32(0)
	for _, b := range t.visited {
		j, ok := t.nodes[i].children[b]
		if !ok {
			j = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{code: -1})
			if t.nodes[i].children == nil {
				t.nodes[i].children = make(map[byte]int32)
			}
			t.nodes[i].children[b] = j
		}
		i = j
	}
	if t.nodes[i].code >= 0 {
		return int(t.nodes[i].code), false
	}
	code = len(t.seqs)
	t.nodes[i].code = int32(code)
	t.seqs = append(t.seqs, append([]byte(nil), t.visited...))
	return code, true
}

// Extend loads the sequence of prefix into the visit buffer and visits c.
// A sequence that is already in the tree still gets a new code, because the
// decoder assigns codes in stream order.
func (t *trieTable) Extend(prefix int, c byte) (code int, err error) {
	n := len(t.seqs)
	if n >= MaxTableLen {
		return 0, ErrTableOverflow
	}
	if !isData(prefix, n) {
		return 0, ErrCorrupt
	}
	t.visited = append(t.visited[:0], t.seqs[prefix]...)
	code, created := t.visit(c)
	if !created {
		code = n
		t.seqs = append(t.seqs, append([]byte(nil), t.visited...))
	}
	t.visited = t.visited[:0]
	return code, nil
}
