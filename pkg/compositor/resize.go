package compositor

import (
	"image"

	"github.com/shouni/go-preview-kit/pkg/domain"

	"github.com/disintegration/imaging"
)

// ResizeToWidth はアスペクト比を保ったまま幅を targetWidth に揃えるのだ。
// 文字の多いスクリーンショットが潰れないよう Lanczos で再サンプリングします。
func ResizeToWidth(img image.Image, targetWidth int) *image.NRGBA {
	b := img.Bounds()
	h := domain.ScaledHeight(targetWidth, b.Dx(), b.Dy())
	return imaging.Resize(img, targetWidth, h, imaging.Lanczos)
}

// resizeAll は読み込んだ4枚をすべて同じ幅にリサイズし、高さの一覧も返します。
func resizeAll(images [4]domain.NamedImage, targetWidth int) ([4]domain.NamedImage, [4]int) {
	var (
		resized [4]domain.NamedImage
		heights [4]int
	)
	for i, ni := range images {
		r := ResizeToWidth(ni.Image, targetWidth)
		resized[i] = domain.NamedImage{Label: ni.Label, Image: r}
		heights[i] = r.Bounds().Dy()
	}
	return resized, heights
}
