package alert

import (
	"io"
	"sync"
)

// BellSequence is the terminal bell control character.
const BellSequence = "\a"

// Bell rings the terminal bell by writing to out.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell creates a Bell that writes to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Chime writes the bell character.
func (bell *Bell) Chime() error {
	bell.mu.Lock()
	defer bell.mu.Unlock()
	_, err := io.WriteString(bell.out, BellSequence)
	return err
}
