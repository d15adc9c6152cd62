package core

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource hands out identity tokens used to scope SVG sub-resources such as
// gradients. Tokens from one source never repeat.
type IDSource interface {
	Next() string
}

// Sequence is a monotonic IDSource scoped to a single rendering session.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewSession returns a Sequence with a random prefix so tokens from
// unrelated sessions cannot collide when their output ends up on one page.
func NewSession() *Sequence {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return NewSequence("icon-" + id[:8])
}

func (s *Sequence) Next() string {
	return s.prefix + "-" + strconv.FormatUint(s.n.Add(1), 10)
}

func (s *Sequence) Prefix() string {
	return s.prefix
}
