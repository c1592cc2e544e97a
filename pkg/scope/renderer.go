package scope

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/itohio/senselog/pkg/window"
)

// oledRenderer renders the OLED widget.
type oledRenderer struct {
	oled *OLED

	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

// MinSize returns the panel size at Pixel scale.
func (r *oledRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.oled.width*Pixel), float32(r.oled.height*Pixel))
}

func (r *oledRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.Refresh()
}

func (r *oledRenderer) Refresh() {
	frame := r.oled.Frame()
	size := r.oled.Size()
	if size.Width == 0 || size.Height == 0 {
		return
	}

	r.objects = []fyne.CanvasObject{r.background}
	scale := Scale{
		X: size.Width / float32(r.oled.width),
		Y: size.Height / float32(r.oled.height),
	}
	textSize := 8 * scale.Y

	r.text(frame.Title, 1, 0, textSize)

	switch frame.Kind {
	case "graph":
		for _, s := range window.Segments(frame.Samples, r.oled.width, r.oled.height) {
			line := canvas.NewLine(oledInk)
			line.Position1, line.Position2 = scale.Segment(s)
			line.StrokeWidth = scale.Y
			r.objects = append(r.objects, line)
		}
	case "menu":
		for i, item := range frame.Items {
			marker := "  "
			if i == frame.Cursor {
				marker = "> "
			}
			r.text(marker+item, 1, float32(12+10*i)*scale.Y, textSize)
		}
	case "message":
		r.text(frame.Text, 1, 24*scale.Y, textSize)
	}

	canvas.Refresh(r.oled)
}

func (r *oledRenderer) text(s string, x, y, size float32) {
	if s == "" {
		return
	}
	t := canvas.NewText(s, oledInk)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Monospace: true}
	t.Move(fyne.NewPos(x, y))
	r.objects = append(r.objects, t)
}

func (r *oledRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *oledRenderer) Destroy() {}

// Scale maps panel pixels to widget coordinates.
type Scale struct {
	X, Y float32
}

// Segment returns the end points of s in widget coordinates.
func (s Scale) Segment(seg window.Segment) (fyne.Position, fyne.Position) {
	return fyne.NewPos(float32(seg.X0)*s.X, float32(seg.Y0)*s.Y),
		fyne.NewPos(float32(seg.X1)*s.X, float32(seg.Y1)*s.Y)
}
