package calcwindow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// display is a read-only entry that forwards focus and keyboard input
// instead of editing its own text.
type display struct {
	widget.Entry
	onFocus func()
	onRune  func(rune)
	onKey   func(fyne.KeyName)
}

func newDisplay() *display {
	field := &display{}
	field.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	field.PlaceHolder = "0"
	field.ExtendBaseWidget(field)
	return field
}

func (field *display) FocusGained() {
	field.Entry.FocusGained()
	if field.onFocus != nil {
		field.onFocus()
	}
}

func (field *display) TypedRune(r rune) {
	if field.onRune != nil {
		field.onRune(r)
	}
}

func (field *display) TypedKey(key *fyne.KeyEvent) {
	if field.onKey != nil {
		field.onKey(key.Name)
	}
}

// TypedShortcut allows copying the result but never pasting into the buffer.
func (field *display) TypedShortcut(shortcut fyne.Shortcut) {
	if _, ok := shortcut.(*fyne.ShortcutCopy); ok {
		field.Entry.TypedShortcut(shortcut)
	}
}
