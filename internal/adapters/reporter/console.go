// Package reporter implements the ports.Reporter warning sink.
package reporter

import (
	"fmt"
	"io"
	"sync"

	"github.com/corey/docwiki/internal/ports"
)

// Console writes warnings as "file:line: warning: message" lines, the way
// compilers do, and counts them. Safe for concurrent use.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	quiet bool
	count int
}

// NewConsole returns a reporter writing to w. With quiet set, warnings are
// counted but not printed.
func NewConsole(w io.Writer, quiet bool) *Console {
	return &Console{w: w, quiet: quiet}
}

// Warning implements ports.Reporter.
func (c *Console) Warning(pos ports.Position, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	if !c.quiet {
		fmt.Fprintf(c.w, "%s: warning: %s\n", pos, msg)
	}
}

// Count returns the number of warnings reported so far.
func (c *Console) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
