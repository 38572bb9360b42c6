package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"wsindicator/internal/core/indicator"
	"wsindicator/internal/core/mainloop"
	"wsindicator/internal/core/model"
	"wsindicator/internal/hypr"
	"wsindicator/internal/platform"
	"wsindicator/internal/storage"
	"wsindicator/internal/theme"
	"wsindicator/internal/ui/overlay"
	"wsindicator/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "workspace-indicator"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}

	palettePath := theme.DefaultPath()

	fyneApp := app.NewWithID("io.github.wsindicator")
	overlayWindow := overlay.New(fyneApp, settings.OverlayConfig(), theme.Load(palettePath))

	reloadPalette := func() {
		overlayWindow.SetPalette(theme.Load(palettePath))
	}

	loop := mainloop.New()
	go loop.Run()

	var trayManager *tray.Manager
	frames := &framePresenter{overlay: overlayWindow}
	engine := indicator.New(loop, settings.IndicatorConfig(), hypr.NewClient(), frames)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnPeek:        engine.Trigger,
			OnReloadTheme: reloadPalette,
			OnToggleAutostart: func(enable bool) {
				if err := applyAutostart(enable); err != nil {
					log.Printf("autostart: %v", err)
					return
				}
				trayManager.SetAutostart(enable)
			},
			OnQuit: func() {
				loop.Stop()
				fyneApp.Quit()
			},
		})
		frames.tray = trayManager
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	listener := hypr.NewListener(engine.Trigger)
	go listener.Run()

	if watcher, err := theme.Watch(palettePath, reloadPalette); err != nil {
		log.Printf("theme: watch disabled: %v", err)
	} else {
		defer func() {
			_ = watcher.Close()
		}()
	}

	go handleSignals(loop, engine, reloadPalette, fyneApp)

	fyneApp.Run()
	loop.Stop()
}

// handleSignals maps process signals to indicator controls: SIGUSR1
// peeks, SIGUSR2 reloads the palette, SIGINT/SIGTERM terminate.
func handleSignals(loop *mainloop.Loop, engine *indicator.Engine, reloadPalette func(), fyneApp fyne.App) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGUSR1, syscall.SIGUSR2, syscall.SIGINT, syscall.SIGTERM)

	for received := range signalCh {
		switch received {
		case syscall.SIGUSR1:
			engine.Trigger()
		case syscall.SIGUSR2:
			reloadPalette()
		default:
			loop.Stop()
			fyne.Do(fyneApp.Quit)
			return
		}
	}
}

// framePresenter fans animation frames out to the overlay and keeps
// the tray status in sync with the shown workspace.
type framePresenter struct {
	overlay *overlay.Window
	tray    *tray.Manager
	lastID  int
}

func (presenter *framePresenter) Present(opacity float64, snapshot model.Snapshot) {
	presenter.overlay.Present(opacity, snapshot)
	if presenter.tray == nil || snapshot.CurrentID == presenter.lastID {
		return
	}
	presenter.lastID = snapshot.CurrentID
	fyne.Do(func() {
		presenter.tray.SetStatus(strconv.Itoa(snapshot.CurrentID))
	})
}

func applyAutostart(enable bool) error {
	service := platform.NewService()
	if !enable {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return err
	}
	return service.EnableAutostart(appName, execPath)
}
