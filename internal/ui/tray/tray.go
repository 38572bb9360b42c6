package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnPeek            func()
	OnReloadTheme     func()
	OnToggleAutostart func(enable bool)
	OnQuit            func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	statusItem    *fyne.MenuItem
	autostartItem *fyne.MenuItem
	callbacks     Callbacks
	autostartOn   bool
	statusLabel   string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("Workspace: starting...", nil)
	manager.statusItem.Disabled = true

	manager.autostartItem = fyne.NewMenuItem("Start at login", func() {
		if manager.callbacks.OnToggleAutostart != nil {
			manager.callbacks.OnToggleAutostart(!manager.autostartOn)
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Workspace: %s", status)
	manager.refreshMenu()
}

// SetAutostart updates the login-item check mark.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostartOn = enabled
	manager.autostartItem.Checked = enabled
	manager.refreshMenu()
}

func (manager *Manager) buildMenu() *fyne.Menu {
	peek := fyne.NewMenuItem("Peek now", func() {
		if manager.callbacks.OnPeek != nil {
			manager.callbacks.OnPeek()
		}
	})
	reload := fyne.NewMenuItem("Reload theme", func() {
		if manager.callbacks.OnReloadTheme != nil {
			manager.callbacks.OnReloadTheme()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	return fyne.NewMenu("workspace-indicator", manager.statusItem, peek, reload, manager.autostartItem, quit)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}
