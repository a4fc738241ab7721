package viewer

import (
	"errors"
	"runtime"
	"testing"

	"github.com/mark-i-m/zippynfs/src/dataset"
	"github.com/mark-i-m/zippynfs/src/render"
)

func TestDecode(t *testing.T) {
	b, err := render.Named(dataset.NameFailure, render.DefaultOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	imgs, err := Decode([]Page{{Title: "failure", PNG: b}})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if imgs[0].Bounds().Dx() < 900 {
		t.Fatalf("unexpected width %d", imgs[0].Bounds().Dx())
	}
	if _, err := Decode([]Page{{Title: "junk", PNG: []byte("not a png")}}); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := Decode(nil); err == nil {
		t.Fatalf("expected error for no pages")
	}
}

func TestShow_NoDisplay(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("display detection only applies to X11/Wayland hosts")
	}
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	b, err := render.Named(dataset.NameScale, render.DefaultOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := Show("test", []Page{{Title: "scale", PNG: b}}); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
}
