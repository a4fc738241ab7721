// Package viewer shows rendered charts in a desktop window.
package viewer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/mark-i-m/zippynfs/src/logging"
)

// ErrNoDisplay is returned when no graphical display is reachable.
var ErrNoDisplay = errors.New("no display available (set DISPLAY or use --out)")

// Page is one chart shown in the window.
type Page struct {
	Title string
	PNG   []byte
}

// HasDisplay reports whether a window can be opened on this host.
func HasDisplay() bool {
	if runtime.GOOS != "linux" && runtime.GOOS != "freebsd" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Decode turns PNG pages into images, failing on the first bad page.
func Decode(pages []Page) ([]image.Image, error) {
	if len(pages) == 0 {
		return nil, errors.New("nothing to show")
	}
	out := make([]image.Image, len(pages))
	for i, p := range pages {
		img, err := png.Decode(bytes.NewReader(p.PNG))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p.Title, err)
		}
		out[i] = img
	}
	return out, nil
}

// Show opens one window holding every page and blocks until it is closed.
// Several pages are shown as tabs.
func Show(title string, pages []Page) error {
	imgs, err := Decode(pages)
	if err != nil {
		return err
	}
	if !HasDisplay() {
		return ErrNoDisplay
	}
	a := app.NewWithID("com.zippynfs.plots")
	w := a.NewWindow(title)
	b := imgs[0].Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))

	if len(pages) == 1 {
		w.SetContent(chartCanvas(imgs[0]))
	} else {
		items := make([]*container.TabItem, len(pages))
		for i, p := range pages {
			items[i] = container.NewTabItem(p.Title, chartCanvas(imgs[i]))
		}
		tabs := container.NewAppTabs(items...)
		tabs.SetTabLocation(container.TabLocationTop)
		w.SetContent(tabs)
	}
	logging.Debugf("showing %d chart(s) in %q", len(pages), title)
	w.ShowAndRun()
	return nil
}

func chartCanvas(img image.Image) *canvas.Image {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	c.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))
	return c
}
