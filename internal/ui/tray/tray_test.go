package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	menu *fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menu = menu
}

func item(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, entry := range menu.Items {
		if entry.Label == label {
			return entry
		}
	}
	require.Failf(t, "menu item missing", "label %q", label)
	return nil
}

func TestManager_MenuActions(t *testing.T) {
	host := &fakeHost{}
	calls := map[string]int{}
	New(host, Callbacks{
		OnShow:     func() { calls["show"]++ },
		OnConfetti: func() { calls["confetti"]++ },
		OnQuit:     func() { calls["quit"]++ },
	})

	require.NotNil(t, host.menu)
	item(t, host.menu, "Show calculator").Action()
	item(t, host.menu, "Confetti now").Action()
	item(t, host.menu, "Quit").Action()
	// Unset callbacks are ignored.
	item(t, host.menu, "Preferences").Action()

	assert.Equal(t, map[string]int{"show": 1, "confetti": 1, "quit": 1}, calls)
}

func TestManager_StatusAndPause(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, Callbacks{})

	manager.SetStatus("next in 12s")
	assert.Equal(t, "Confetti: next in 12s", host.menu.Items[0].Label)

	manager.SetPaused(true)
	assert.True(t, manager.Paused())
	assert.Equal(t, "Confetti: next in 12s (paused)", host.menu.Items[0].Label)
	item(t, host.menu, "Resume confetti")

	manager.SetPaused(false)
	item(t, host.menu, "Pause confetti")
}
