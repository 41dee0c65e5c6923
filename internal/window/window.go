// Package window displays a rendered plot in a desktop window.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window with img and blocks until the window is closed.
func Show(title string, img image.Image) error {
	b := img.Bounds()

	g := &plotView{src: img, width: b.Dx(), height: b.Dy()}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type plotView struct {
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func (g *plotView) Update() error {
	return nil
}

func (g *plotView) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *plotView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
