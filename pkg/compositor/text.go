package compositor

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextWidth は描画したときのインク部分の幅（ピクセル）を測ります。
func TextWidth(face font.Face, text string) int {
	bounds, _ := font.BoundString(face, text)
	return (bounds.Max.X - bounds.Min.X).Ceil()
}

// drawText は (x, top) を左上の基準にして text を描画するのだ。
// font.Drawer の Dot はベースラインなので、アセント分だけ下げます。
// 左サイドベアリングの分は戻して、インクの左端が x に来るようにします。
func drawText(dst draw.Image, face font.Face, c color.Color, x, top int, text string) {
	bounds, _ := font.BoundString(face, text)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(top + face.Metrics().Ascent.Ceil()),
		},
	}
	d.DrawString(text)
}
