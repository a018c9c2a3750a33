// Package clipboard provides the OS clipboard collaborator consumed by
// text editing operations, plus an in-memory implementation for tests and
// headless runs.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// System reads and writes the operating system clipboard.
type System struct{}

// NewSystem creates an OS clipboard provider.
func NewSystem() *System {
	return &System{}
}

// ReadText returns the current clipboard text.
func (*System) ReadText() (string, error) {
	return clipboard.ReadAll()
}

// WriteText replaces the clipboard text.
func (*System) WriteText(s string) error {
	return clipboard.WriteAll(s)
}

// Memory is a process-local clipboard. Useful in tests and on systems
// with no clipboard utility installed.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadText returns the stored text.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteText replaces the stored text.
func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}
