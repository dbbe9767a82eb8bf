package frame

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestHex(t *testing.T) {
	c, err := Hex("#36ff1f")
	if err != nil {
		t.Fatalf("hex failed: %v", err)
	}
	if c != RGB(0x36, 0xff, 0x1f) {
		t.Errorf("got %+v", c)
	}

	if _, err := Hex("green"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestFromColorfulClamps(t *testing.T) {
	c := FromColorful(colorful.Color{R: 1.5, G: -0.2, B: 0.5})
	if c.R != 255 || c.G != 0 {
		t.Errorf("not clamped: %+v", c)
	}
	if c.Channels != AllChannels {
		t.Errorf("expected all channels, got %b", c.Channels)
	}
}

func TestColorfulIgnoresAbsentChannels(t *testing.T) {
	c := Only(Blue, 255, 255, 255).Colorful()
	if c.R != 0 || c.G != 0 || c.B != 1 {
		t.Errorf("got %+v", c)
	}
}

func TestPixelHex(t *testing.T) {
	p := Pixel{R: 0x0a, G: 0x33, B: 0x06, A: Marker}
	if p.Hex() != "#0a3306" {
		t.Errorf("got %s", p.Hex())
	}
	if !p.IsSet() {
		t.Error("expected set")
	}
}
