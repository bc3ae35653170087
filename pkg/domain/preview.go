package domain

import (
	"image"
)

// 2×2 グリッドに並べる4枚のスクリーンショットのラベルなのだ。
const (
	LabelMain         = "Main Page"
	LabelDonations    = "Donations"
	LabelEvents       = "Events"
	LabelPartnerships = "Partnerships"
)

// LabelBands はキャンバスの高さに含めるラベル帯の数です（画像ラベル4つ + タイトル1つ）。
// 2×2 レイアウト専用の値なので、グリッドの形を変えるなら式ごと導き直す必要があります。
const LabelBands = 5

// Labels は描画順（左上、右上、左下、右下）に並んだ固定ラベルの一覧なのだ。
var Labels = []string{LabelMain, LabelDonations, LabelEvents, LabelPartnerships}

// NamedImage はラベルとラスター画像の組です。
type NamedImage struct {
	Label string
	Image image.Image
}

// Source はラベルと読み込み元パスの組です。
type Source struct {
	Label string
	Path  string
}

// SourceSet は4つの入力画像の読み込み元を描画順に保持します。
type SourceSet [4]Source

// NewSourceSet はラベル→パスのマップから、描画順に並んだ SourceSet を組み立てるのだ。
// 足りないラベルがあれば ok=false を返します。
func NewSourceSet(paths map[string]string) (SourceSet, bool) {
	var set SourceSet
	for i, label := range Labels {
		p, found := paths[label]
		if !found || p == "" {
			return set, false
		}
		set[i] = Source{Label: label, Path: p}
	}
	return set, true
}

// LayoutOptions はジオメトリ計算に必要なスカラー値です。
type LayoutOptions struct {
	TargetWidth int
	Padding     int
	LabelHeight int
}

// Geometry はキャンバス全体の寸法を表す派生値の集まりなのだ。
type Geometry struct {
	TargetWidth  int `json:"target_width"`
	Padding      int `json:"padding"`
	LabelHeight  int `json:"label_height"`
	TopHeight    int `json:"top_height"`
	BottomHeight int `json:"bottom_height"`
	TotalWidth   int `json:"total_width"`
	TotalHeight  int `json:"total_height"`
}

// Cell はグリッド内の1マス（ラベルと画像の左上座標）です。
type Cell struct {
	Label string `json:"label"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// ScaledHeight は幅を targetWidth に揃えたときの高さを、アスペクト比を保って四捨五入で求めるのだ。
// 結果は最低でも 1 になります。
func ScaledHeight(targetWidth, width, height int) int {
	if width <= 0 {
		return 1
	}
	// 整数演算で round(targetWidth*height/width) を計算します。
	h := (2*targetWidth*height + width) / (2 * width)
	if h < 1 {
		return 1
	}
	return h
}

// ComputeGeometry はリサイズ後の4枚の高さ（描画順）からキャンバスのジオメトリを求めます。
func ComputeGeometry(opts LayoutOptions, heights [4]int) Geometry {
	top := max(heights[0], heights[1])
	bottom := max(heights[2], heights[3])

	return Geometry{
		TargetWidth:  opts.TargetWidth,
		Padding:      opts.Padding,
		LabelHeight:  opts.LabelHeight,
		TopHeight:    top,
		BottomHeight: bottom,
		TotalWidth:   2*opts.TargetWidth + 3*opts.Padding,
		TotalHeight:  top + bottom + 3*opts.Padding + LabelBands*opts.LabelHeight,
	}
}

// RowStart はタイトル帯の下、1行目のラベルが始まる Y 座標なのだ。
func (g Geometry) RowStart() int {
	return g.Padding + g.LabelHeight + g.Padding
}

// CellPositions は描画順に4つのセル座標を返します。
func (g Geometry) CellPositions() [4]Cell {
	y0 := g.RowStart()
	y1 := y0 + g.TopHeight + g.LabelHeight + g.Padding
	left := g.Padding
	right := g.TargetWidth + 2*g.Padding

	return [4]Cell{
		{Label: LabelMain, X: left, Y: y0},
		{Label: LabelDonations, X: right, Y: y0},
		{Label: LabelEvents, X: left, Y: y1},
		{Label: LabelPartnerships, X: right, Y: y1},
	}
}

// CenterOffset は span の中で width の要素を中央寄せしたときの左端オフセットです。
// 要素の方が大きい場合は負の値になり、その場合も切り捨て（負の無限大方向）で丸めるのだ。
func CenterOffset(span, width int) int {
	d := span - width
	if d < 0 {
		return -((-d + 1) / 2)
	}
	return d / 2
}
