package textedit

// Clipboard is the external clipboard collaborator consumed by Copy and
// Paste. Implementations live outside this package; the OS-backed one is
// in internal/clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
