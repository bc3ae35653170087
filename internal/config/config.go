package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/shouni/go-preview-kit/pkg/asset"
	"github.com/shouni/go-preview-kit/pkg/compositor"
	"github.com/shouni/go-preview-kit/pkg/domain"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultImageDir   = asset.DefaultImageDir
	DefaultFontPath   = compositor.DefaultFontPath
	DefaultTitle      = compositor.DefaultTitle
	DefaultTitleColor = "#1e40af"
	DefaultLabelColor = "#059669"
	DefaultBackground = "white"
)

// Config は環境変数から読み込まれる設定を保持する構造体なのだ。
type Config struct {
	ImageDir   string
	OutputFile string
	FontPath   string
	Title      string

	Options PreviewOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		ImageDir:   envutil.GetEnv("PREVIEW_IMAGE_DIR", DefaultImageDir),
		OutputFile: envutil.GetEnv("PREVIEW_OUTPUT_FILE", ""),
		FontPath:   envutil.GetEnv("PREVIEW_FONT_PATH", DefaultFontPath),
		Title:      envutil.GetEnv("PREVIEW_TITLE", DefaultTitle),
	}
}

// PreviewOptions は CLI フラグから渡される実行時のパラメータなのだ。
type PreviewOptions struct {
	// 入出力
	ImageDir         string // --image-dir
	OutputFile       string // --output
	MainFile         string // --main
	DonateFile       string // --donate
	EventsFile       string // --events
	PartnershipsFile string // --partnerships

	// レイアウト
	TargetWidth int // --target-width
	Padding     int // --padding
	LabelHeight int // --label-height

	// 見た目
	Title         string  // --title
	TitleColor    string  // --title-color
	LabelColor    string  // --label-color
	Background    string  // --background
	FontPath      string  // --font
	TitleFontSize float64 // --title-font-size
	LabelFontSize float64 // --label-font-size

	// 出力
	Quality int // --quality
}

// DefaultPreviewOptions はフラグのデフォルト値なのだ。
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		ImageDir:      DefaultImageDir,
		TargetWidth:   compositor.DefaultTargetWidth,
		Padding:       compositor.DefaultPadding,
		LabelHeight:   compositor.DefaultLabelHeight,
		Title:         DefaultTitle,
		TitleColor:    DefaultTitleColor,
		LabelColor:    DefaultLabelColor,
		Background:    DefaultBackground,
		FontPath:      DefaultFontPath,
		TitleFontSize: compositor.DefaultTitleFontSize,
		LabelFontSize: compositor.DefaultLabelFontSize,
		Quality:       compositor.DefaultQuality,
	}
}

// SourceOverrides はラベルごとに個別指定された入力パスを返します。
func (o PreviewOptions) SourceOverrides() map[string]string {
	return map[string]string{
		domain.LabelMain:         o.MainFile,
		domain.LabelDonations:    o.DonateFile,
		domain.LabelEvents:       o.EventsFile,
		domain.LabelPartnerships: o.PartnershipsFile,
	}
}

// CompositorOptions は色文字列をパースして compositor.Options に詰め替えるのだ。
func (o PreviewOptions) CompositorOptions() (compositor.Options, error) {
	titleColor, err := ParseHexColor(o.TitleColor)
	if err != nil {
		return compositor.Options{}, fmt.Errorf("--title-color: %w", err)
	}
	labelColor, err := ParseHexColor(o.LabelColor)
	if err != nil {
		return compositor.Options{}, fmt.Errorf("--label-color: %w", err)
	}
	background, err := ParseHexColor(o.Background)
	if err != nil {
		return compositor.Options{}, fmt.Errorf("--background: %w", err)
	}

	opts := compositor.Options{
		TargetWidth:   o.TargetWidth,
		Padding:       o.Padding,
		LabelHeight:   o.LabelHeight,
		Title:         o.Title,
		TitleColor:    titleColor,
		LabelColor:    labelColor,
		Background:    background,
		Quality:       o.Quality,
		FontPath:      o.FontPath,
		TitleFontSize: o.TitleFontSize,
		LabelFontSize: o.LabelFontSize,
	}
	return opts, opts.Validate()
}

// namedColors は名前で指定できる色なのだ。
var namedColors = map[string]color.NRGBA{
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black": {A: 0xff},
}

// ParseHexColor は "#rrggbb"、"#rgb"、または white/black を不透明な色に変換します。
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("色の形式が不正です: %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("色の形式が不正です: %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
