// Package overlay renders the indicator pill: a rounded background
// with one dot per workspace slot. It consumes (opacity, snapshot,
// palette) frames and owns no animation logic; placement on screen is
// left to compositor window rules.
package overlay

import (
	"image/color"

	"wsindicator/internal/core/model"
	"wsindicator/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Window manages the overlay UI.
type Window struct {
	app        fyne.App
	window     fyne.Window
	config     model.OverlayConfig
	background *canvas.Rectangle
	dots       []*canvas.Circle

	palette  theme.Palette
	snapshot model.Snapshot
	opacity  float64
	count    int
	shown    bool
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden overlay window.
func New(app fyne.App, config model.OverlayConfig, palette theme.Palette) *Window {
	window := app.NewWindow("workspace-indicator")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{})

	dots := make([]*canvas.Circle, model.MaxWorkspaces)
	objects := make([]fyne.CanvasObject, 0, len(dots)+1)
	objects = append(objects, background)
	for index := range dots {
		dots[index] = canvas.NewCircle(color.NRGBA{})
		dots[index].Hide()
		objects = append(objects, dots[index])
	}

	overlay := &Window{
		app:        app,
		window:     window,
		config:     config,
		background: background,
		dots:       dots,
		palette:    palette,
		count:      model.PersistentSlots,
	}
	window.SetContent(container.New(&pillLayout{overlay: overlay}, objects...))
	return overlay
}

// SetPalette replaces the color roles. Safe from any goroutine.
func (overlay *Window) SetPalette(palette theme.Palette) {
	fyne.Do(func() {
		overlay.palette = palette
		overlay.redraw()
	})
}

// Present applies an animation frame. Safe from any goroutine.
func (overlay *Window) Present(opacity float64, snapshot model.Snapshot) {
	fyne.Do(func() {
		overlay.opacity = opacity
		overlay.snapshot = snapshot
		overlay.redraw()
	})
}

func (overlay *Window) redraw() {
	if overlay.opacity <= 0 {
		if overlay.shown {
			overlay.window.Hide()
			overlay.shown = false
		}
		return
	}

	if count := overlay.snapshot.DotCount(); count != overlay.count {
		overlay.count = count
		overlay.resizeToFit(count)
	}

	overlay.background.FillColor = overlay.frameColor(overlay.palette.Background)
	overlay.background.CornerRadius = overlay.config.PadV + overlay.config.ActiveRadius
	overlay.background.Refresh()

	for index, dot := range overlay.dots {
		id := index + 1
		if id > overlay.count {
			dot.Hide()
			continue
		}
		dot.FillColor = overlay.frameColor(overlay.dotRole(id))
		dot.Show()
		dot.Refresh()
	}

	if !overlay.shown {
		overlay.window.Show()
		overlay.shown = true
	}
}

// dotRole picks the color for one dot: active beats occupied beats
// empty.
func (overlay *Window) dotRole(id int) theme.RGBA {
	switch {
	case id == overlay.snapshot.CurrentID:
		return overlay.palette.Active
	case overlay.snapshot.IsOccupied(id):
		return overlay.palette.Foreground
	default:
		return overlay.palette.Dim
	}
}

// dotRadius returns the visual radius for a slot. The active dot is
// emphasized, empty slots shrink slightly.
func (overlay *Window) dotRadius(id int) float32 {
	switch {
	case id == overlay.snapshot.CurrentID:
		return overlay.config.ActiveRadius
	case overlay.snapshot.IsOccupied(id):
		return overlay.config.DotRadius
	default:
		return overlay.config.DotRadius - 1
	}
}

// frameColor applies the frame opacity on top of the role alpha.
func (overlay *Window) frameColor(role theme.RGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(role.R * 255),
		G: uint8(role.G * 255),
		B: uint8(role.B * 255),
		A: uint8(role.A * overlay.opacity * 255),
	}
}

func (overlay *Window) resizeToFit(count int) {
	overlay.window.Resize(pillSize(overlay.config, count))
	overlay.window.CenterOnScreen()
}

func pillSize(config model.OverlayConfig, count int) fyne.Size {
	width := config.PadH*2 + float32(count-1)*config.DotSpacing + config.ActiveRadius*2
	height := config.PadV*2 + config.ActiveRadius*2
	return fyne.NewSize(width, height)
}

// pillLayout centers the dot row inside the pill background.
type pillLayout struct {
	overlay *Window
}

func (layout *pillLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	background := objects[0]
	background.Move(fyne.NewPos(0, 0))
	background.Resize(size)

	config := layout.overlay.config
	span := float32(layout.overlay.count-1) * config.DotSpacing
	startX := (size.Width - span) / 2
	centerY := size.Height / 2

	for index, object := range objects[1:] {
		radius := layout.overlay.dotRadius(index + 1)
		centerX := startX + float32(index)*config.DotSpacing
		object.Move(fyne.NewPos(centerX-radius, centerY-radius))
		object.Resize(fyne.NewSize(radius*2, radius*2))
	}
}

func (layout *pillLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return pillSize(layout.overlay.config, layout.overlay.count)
}
