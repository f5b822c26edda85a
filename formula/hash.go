package formula

import (
	"encoding/binary"
	"hash/maphash"
	"sync"
)

// Interning table. All constructors funnel through intern, so a *Node is
// canonical for its structure and child hashes are always available.

var (
	seed = maphash.MakeSeed()

	internMu sync.Mutex
	interned = map[uint64][]*Node{}
)

// Hash returns the structural hash of n. It is stable for the lifetime of
// the process (maphash seeds are per-process).
func (n *Node) Hash() uint64 {
	return n.hash
}

func (n *Node) computeHash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Kind))
	h.WriteString(n.Name)
	h.WriteByte(0)
	h.WriteString(n.Ind)
	h.WriteByte(0)
	h.WriteString(n.ArgVar)
	h.WriteByte(0)
	h.WriteString(n.Bound)
	h.WriteByte(0)
	h.WriteString(n.Domain)
	var b [8]byte
	for _, c := range []*Node{n.L, n.R, n.Body} {
		if c == nil {
			h.WriteByte(0)
			continue
		}
		binary.LittleEndian.PutUint64(b[:], c.hash)
		h.Write(b[:])
	}
	return h.Sum64()
}

func intern(n *Node) *Node {
	n.hash = n.computeHash()
	internMu.Lock()
	defer internMu.Unlock()
	for _, cand := range interned[n.hash] {
		if cand.structEq(n) {
			return cand
		}
	}
	interned[n.hash] = append(interned[n.hash], n)
	return n
}

// structEq compares one level of structure. Children are canonical, so
// pointer comparison suffices below the top level.
func (n *Node) structEq(o *Node) bool {
	return n.Kind == o.Kind &&
		n.Name == o.Name &&
		n.Ind == o.Ind &&
		n.ArgVar == o.ArgVar &&
		n.Bound == o.Bound &&
		n.Domain == o.Domain &&
		n.L == o.L &&
		n.R == o.R &&
		n.Body == o.Body
}
