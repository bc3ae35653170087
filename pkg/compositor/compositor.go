package compositor

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/shouni/go-preview-kit/pkg/domain"
	"github.com/shouni/go-preview-kit/pkg/publisher"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// デフォルト値の定義なのだ
const (
	DefaultTargetWidth   = 1200
	DefaultPadding       = 40
	DefaultLabelHeight   = 80
	DefaultQuality       = publisher.DefaultQuality
	DefaultTitleFontSize = 60
	DefaultLabelFontSize = 40
	DefaultFontPath      = "/System/Library/Fonts/Helvetica.ttc"
	DefaultTitle         = "Holland Park Mosque - Featured Landing Pages Preview"
)

var (
	DefaultTitleColor = color.NRGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 0xff}
	DefaultLabelColor = color.NRGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xff}
	DefaultBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Options はプレビュー合成の設定項目です。
type Options struct {
	TargetWidth int // 各画像を揃える幅
	Padding     int // セルの周囲と間の余白
	LabelHeight int // ラベル帯1本の高さ

	Title      string
	TitleColor color.Color
	LabelColor color.Color
	Background color.Color

	Quality       int // JPEG 品質 (1-100)
	FontPath      string
	TitleFontSize float64
	LabelFontSize float64
}

// DefaultOptions は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultOptions() Options {
	return Options{
		TargetWidth:   DefaultTargetWidth,
		Padding:       DefaultPadding,
		LabelHeight:   DefaultLabelHeight,
		Title:         DefaultTitle,
		TitleColor:    DefaultTitleColor,
		LabelColor:    DefaultLabelColor,
		Background:    DefaultBackground,
		Quality:       DefaultQuality,
		FontPath:      DefaultFontPath,
		TitleFontSize: DefaultTitleFontSize,
		LabelFontSize: DefaultLabelFontSize,
	}
}

// Validate は範囲外の設定値を検出します。
func (o Options) Validate() error {
	switch {
	case o.TargetWidth <= 0:
		return fmt.Errorf("target width は正の値が必要なのだ: %d", o.TargetWidth)
	case o.Padding < 0:
		return fmt.Errorf("padding は0以上が必要なのだ: %d", o.Padding)
	case o.LabelHeight < 0:
		return fmt.Errorf("label height は0以上が必要なのだ: %d", o.LabelHeight)
	case o.Quality < 1 || o.Quality > 100:
		return fmt.Errorf("quality は1から100の範囲で指定してほしいのだ: %d", o.Quality)
	case o.TitleColor == nil || o.LabelColor == nil || o.Background == nil:
		return fmt.Errorf("色の指定が欠けているのだ")
	}
	return nil
}

func (o Options) layout() domain.LayoutOptions {
	return domain.LayoutOptions{
		TargetWidth: o.TargetWidth,
		Padding:     o.Padding,
		LabelHeight: o.LabelHeight,
	}
}

// Preview はメモリ上で合成したキャンバスとそのジオメトリです。
type Preview struct {
	Canvas   *image.NRGBA
	Geometry domain.Geometry
	Cells    [4]domain.Cell
	TitleX   int
}

// Result は Build の結果なのだ。
type Result struct {
	OutputPath string
	Width      int
	Height     int
	Bytes      int
}

// Compositor は4枚のスクリーンショットを1枚のグリッドプレビューに合成します。
type Compositor struct {
	opts      Options
	loader    *Loader
	fonts     *FontResolver
	publisher *publisher.PreviewPublisher
}

// New は設定を検証して Compositor を生成するのだ。
func New(opts Options) (*Compositor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Compositor{
		opts:      opts,
		loader:    NewLoader(nil),
		fonts:     NewFontResolver(),
		publisher: publisher.NewPreviewPublisher(publisher.Options{Quality: opts.Quality}),
	}, nil
}

// Build は入力画像を合成して outputPath に書き出すのだ！
// 読み込みに失敗すれば *LoadError、書き込みに失敗すれば *WriteError を返し、出力ファイルは残りません。
func (c *Compositor) Build(ctx context.Context, sources domain.SourceSet, outputPath string) (Result, error) {
	preview, err := c.Compose(ctx, sources)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	pub, err := c.publisher.Publish(preview.Canvas, outputPath)
	if err != nil {
		return Result{}, &WriteError{Path: outputPath, Err: err}
	}

	return Result{
		OutputPath: pub.Path,
		Width:      preview.Geometry.TotalWidth,
		Height:     preview.Geometry.TotalHeight,
		Bytes:      pub.Bytes,
	}, nil
}

// Compose は読み込みからリサイズ、描画、貼り付けまでをメモリ上で行います。
func (c *Compositor) Compose(ctx context.Context, sources domain.SourceSet) (*Preview, error) {
	images, err := c.loader.Load(ctx, sources)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resized, heights := resizeAll(images, c.opts.TargetWidth)
	geom := domain.ComputeGeometry(c.opts.layout(), heights)
	slog.Info("レイアウトを計算したのだ",
		"width", geom.TotalWidth,
		"height", geom.TotalHeight,
		"top_height", geom.TopHeight,
		"bottom_height", geom.BottomHeight,
	)

	canvas := imaging.New(geom.TotalWidth, geom.TotalHeight, c.opts.Background)

	titleFace, _ := c.fonts.Resolve(c.opts.FontPath, c.opts.TitleFontSize)
	labelFace, _ := c.fonts.Resolve(c.opts.FontPath, c.opts.LabelFontSize)

	titleX := TitleOffset(geom.TotalWidth, TextWidth(titleFace, c.opts.Title))
	drawText(canvas, titleFace, c.opts.TitleColor, titleX, geom.Padding, c.opts.Title)

	cells := geom.CellPositions()
	for i, cell := range cells {
		c.drawCell(canvas, labelFace, geom, cell, resized[i].Image)
	}

	return &Preview{
		Canvas:   canvas,
		Geometry: geom,
		Cells:    cells,
		TitleX:   titleX,
	}, nil
}

// drawCell はラベルをセル幅の中央に描き、その下に画像を貼り付けるのだ。
func (c *Compositor) drawCell(canvas *image.NRGBA, face font.Face, geom domain.Geometry, cell domain.Cell, img image.Image) {
	labelX := cell.X + domain.CenterOffset(geom.TargetWidth, TextWidth(face, cell.Label))
	drawText(canvas, face, c.opts.LabelColor, labelX, cell.Y, cell.Label)

	b := img.Bounds()
	imgX := cell.X + domain.CenterOffset(geom.TargetWidth, b.Dx())
	imgY := cell.Y + geom.LabelHeight
	dst := image.Rect(imgX, imgY, imgX+b.Dx(), imgY+b.Dy())
	draw.Draw(canvas, dst, img, b.Min, draw.Over)
}

// TitleOffset はタイトルを中央寄せしたときの X 座標です。
// キャンバスより幅の広いタイトルは左端 (0) から描くのだ。
func TitleOffset(totalWidth, textWidth int) int {
	return max(0, domain.CenterOffset(totalWidth, textWidth))
}
