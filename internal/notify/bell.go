// Package notify plays the zero-crossing sound.
package notify

import (
	"io"
	"os"
)

// bel is the ASCII bell; terminals turn it into a beep or a visual flash.
const bel = "\a"

// Bell rings the terminal bell on W.
type Bell struct {
	W io.Writer
}

// NewBell rings on stderr so it does not interleave with the TUI frame on stdout.
func NewBell() Bell {
	return Bell{W: os.Stderr}
}

func (b Bell) Notify() error {
	if b.W == nil {
		return nil
	}
	_, err := io.WriteString(b.W, bel)
	return err
}

// Silent is used when sound is disabled in config.
type Silent struct{}

func (Silent) Notify() error { return nil }
