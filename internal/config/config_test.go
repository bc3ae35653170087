package config

import (
	"image/color"
	"os"
	"testing"

	"github.com/shouni/go-preview-kit/pkg/compositor"
)

func TestLoadConfig(t *testing.T) {
	t.Run("環境変数がなければデフォルト値なのだ", func(t *testing.T) {
		for _, key := range []string{"PREVIEW_IMAGE_DIR", "PREVIEW_FONT_PATH"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
		cfg := LoadConfig()
		if cfg.ImageDir != DefaultImageDir {
			t.Errorf("ImageDir: 期待値 %q, 実際の値 %q", DefaultImageDir, cfg.ImageDir)
		}
		if cfg.FontPath != DefaultFontPath {
			t.Errorf("FontPath: 期待値 %q, 実際の値 %q", DefaultFontPath, cfg.FontPath)
		}
	})

	t.Run("環境変数で上書きできるのだ", func(t *testing.T) {
		t.Setenv("PREVIEW_IMAGE_DIR", "/srv/screens")
		t.Setenv("PREVIEW_OUTPUT_FILE", "grid.png")
		t.Setenv("PREVIEW_TITLE", "Preview")
		cfg := LoadConfig()
		if cfg.ImageDir != "/srv/screens" || cfg.OutputFile != "grid.png" || cfg.Title != "Preview" {
			t.Errorf("環境変数が反映されていないのだ: %+v", cfg)
		}
	})
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#1e40af", color.NRGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 0xff}},
		{"059669", color.NRGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xff}},
		{"#FFF", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{" White ", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"black", color.NRGBA{A: 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("%q: 予期しないエラーなのだ: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: 期待値 %v, 実際の値 %v", tt.in, tt.want, got)
		}
	}

	for _, bad := range []string{"", "#12", "#gggggg", "blue-ish", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("%q: エラーを期待したのだ", bad)
		}
	}
}

func TestPreviewOptions_CompositorOptions(t *testing.T) {
	t.Run("デフォルト値は compositor のデフォルトと一致するのだ", func(t *testing.T) {
		got, err := DefaultPreviewOptions().CompositorOptions()
		if err != nil {
			t.Fatalf("予期しないエラーなのだ: %v", err)
		}
		want := compositor.DefaultOptions()
		if got.TitleColor != want.TitleColor || got.LabelColor != want.LabelColor || got.Background != want.Background {
			t.Errorf("色が一致しないのだ: %+v", got)
		}
		if got.TargetWidth != want.TargetWidth || got.Padding != want.Padding || got.LabelHeight != want.LabelHeight || got.Quality != want.Quality {
			t.Errorf("数値が一致しないのだ: %+v", got)
		}
	})

	t.Run("不正な色はエラーなのだ", func(t *testing.T) {
		opts := DefaultPreviewOptions()
		opts.LabelColor = "green-ish"
		if _, err := opts.CompositorOptions(); err == nil {
			t.Error("エラーを期待したのだ")
		}
	})

	t.Run("範囲外の品質はエラーなのだ", func(t *testing.T) {
		opts := DefaultPreviewOptions()
		opts.Quality = 0
		if _, err := opts.CompositorOptions(); err == nil {
			t.Error("エラーを期待したのだ")
		}
	})
}
