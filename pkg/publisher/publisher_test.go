package publisher

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestPreviewPublisher_Publish(t *testing.T) {
	img := imaging.New(64, 32, color.NRGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 0xff})

	t.Run("拡張子から形式を選ぶのだ", func(t *testing.T) {
		for _, tt := range []struct{ name, format string }{
			{"preview.jpg", "jpeg"},
			{"preview.jpeg", "jpeg"},
			{"preview.png", "png"},
		} {
			dir := t.TempDir()
			out := filepath.Join(dir, tt.name)

			res, err := NewPreviewPublisher(Options{Quality: 95}).Publish(img, out)
			if err != nil {
				t.Fatalf("%s: 保存に失敗したのだ: %v", tt.name, err)
			}
			if res.Bytes == 0 {
				t.Errorf("%s: バイト数が0なのだ", tt.name)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			cfg, format, err := image.DecodeConfig(f)
			f.Close()
			if err != nil {
				t.Fatalf("%s: デコードできないのだ: %v", tt.name, err)
			}
			if format != tt.format || cfg.Width != 64 || cfg.Height != 32 {
				t.Errorf("%s: %s %dx%d なのだ", tt.name, format, cfg.Width, cfg.Height)
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("%s: 一時ファイルが残っているのだ: %d 個", tt.name, len(entries))
			}
		}
	})

	t.Run("未知の拡張子はエラーになりファイルを作らないのだ", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "preview.xyz")
		if _, err := NewPreviewPublisher(Options{}).Publish(img, out); err == nil {
			t.Fatal("エラーを期待したのだ")
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("ファイルが作られているのだ: %d 個", len(entries))
		}
	})

	t.Run("存在しないディレクトリには書けないのだ", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "missing", "preview.jpg")
		if _, err := NewPreviewPublisher(Options{Quality: 80}).Publish(img, out); err == nil {
			t.Fatal("エラーを期待したのだ")
		}
	})
}

func TestNewPreviewPublisher_Quality(t *testing.T) {
	for _, q := range []int{0, -3, 101} {
		if got := NewPreviewPublisher(Options{Quality: q}).opts.Quality; got != DefaultQuality {
			t.Errorf("品質 %d はデフォルトに戻るべきなのだ: %d", q, got)
		}
	}
	if got := NewPreviewPublisher(Options{Quality: 70}).opts.Quality; got != 70 {
		t.Errorf("有効な品質が保持されていないのだ: %d", got)
	}
}
