package view

import (
	"image"

	"github.com/soocke/gripframe/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RegionPreview shows the rendered region scene and a thumbnail of the last
// captured region.
type RegionPreview interface {
	ShowScene(s images.Scene)
	ShowCapture(img image.Image)
	SetPalette(p images.Palette)
	Reset()
}

type regionPreview struct {
	sceneLabel   *LabelWidget
	captureLabel *LabelWidget
	renderer     *images.Renderer
	scenePhoto   *Img
	capturePhoto *Img
}

const (
	thumbW = 200
	thumbH = 120
	minDim = 100

	sceneCache = 16
)

// NewRegionPreview creates and grids both labels in row. The scene spans
// columns 0-3 and the capture thumbnail sits at column 4.
func NewRegionPreview(row, w, h int, palette images.Palette) RegionPreview {
	if w < minDim {
		w = minDim
	}
	if h < minDim {
		h = minDim
	}
	v := &regionPreview{renderer: images.NewRenderer(palette, w, h, sceneCache)}
	v.scenePhoto = NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))))
	v.capturePhoto = NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, thumbW, thumbH)))))
	v.sceneLabel = Label(Image(v.scenePhoto), Borderwidth(1), Relief("sunken"))
	v.captureLabel = Label(Image(v.capturePhoto), Borderwidth(1), Relief("sunken"))
	Grid(v.sceneLabel, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	Grid(v.captureLabel, Row(row), Column(4), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return v
}

func (v *regionPreview) ShowScene(s images.Scene) {
	if v.sceneLabel == nil {
		return
	}
	png := v.renderer.PNG(s)
	// Drop the old photo so replaced frames do not accumulate in Tk.
	if v.scenePhoto != nil {
		v.scenePhoto.Delete()
	}
	v.scenePhoto = NewPhoto(Data(png))
	v.sceneLabel.Configure(Image(v.scenePhoto))
}

func (v *regionPreview) ShowCapture(img image.Image) {
	if v.captureLabel == nil || img == nil {
		return
	}
	png := images.EncodePNG(images.ScaleToFit(img, thumbW, thumbH))
	if v.capturePhoto != nil {
		v.capturePhoto.Delete()
	}
	v.capturePhoto = NewPhoto(Data(png))
	v.captureLabel.Configure(Image(v.capturePhoto))
}

func (v *regionPreview) SetPalette(p images.Palette) { v.renderer.SetPalette(p) }

func (v *regionPreview) Reset() {
	if v.captureLabel == nil {
		return
	}
	if v.capturePhoto != nil {
		v.capturePhoto.Delete()
	}
	v.capturePhoto = NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, thumbW, thumbH)))))
	v.captureLabel.Configure(Image(v.capturePhoto))
}
