package publisher

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// DefaultQuality は JPEG 出力のデフォルト品質です。
	DefaultQuality  = 95
	tempFilePattern = ".preview-*.tmp"
)

// Options はエンコードと保存の動作を制御する設定項目です。
type Options struct {
	Quality int // JPEG 品質 (1-100)。PNG では無視されるのだ
}

// PublishResult は保存したファイルの情報を保持します。
type PublishResult struct {
	Path   string
	Format imaging.Format
	Bytes  int
}

// PreviewPublisher は合成済みキャンバスをエンコードしてファイルに書き出します。
type PreviewPublisher struct {
	opts Options
}

// NewPreviewPublisher は PreviewPublisher を生成するのだ。品質が範囲外ならデフォルト値を使います。
func NewPreviewPublisher(opts Options) *PreviewPublisher {
	if opts.Quality < 1 || opts.Quality > 100 {
		opts.Quality = DefaultQuality
	}
	return &PreviewPublisher{opts: opts}
}

// Encode は出力パスの拡張子から形式を決めて img をエンコードします。
func (p *PreviewPublisher) Encode(img image.Image, outputPath string) ([]byte, imaging.Format, error) {
	format, err := imaging.FormatFromFilename(outputPath)
	if err != nil {
		return nil, 0, fmt.Errorf("出力形式を判定できません: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(p.opts.Quality)); err != nil {
		return nil, 0, fmt.Errorf("%s へのエンコードに失敗しました: %w", format, err)
	}
	return buf.Bytes(), format, nil
}

// Publish は img をエンコードして outputPath に保存するのだ！
// 同じディレクトリの一時ファイルに書いてから rename するので、失敗しても中途半端なファイルは残りません。
func (p *PreviewPublisher) Publish(img image.Image, outputPath string) (PublishResult, error) {
	result := PublishResult{Path: outputPath}

	data, format, err := p.Encode(img, outputPath)
	if err != nil {
		return result, err
	}
	result.Format = format
	result.Bytes = len(data)

	if err := writeFileAtomic(outputPath, data); err != nil {
		return result, err
	}

	slog.Info("プレビュー画像を保存したのだ", "path", outputPath, "format", format.String(), "bytes", len(data))
	return result, nil
}

// writeFileAtomic は一時ファイル経由で data を path に書き込みます。
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("書き込みに失敗しました: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("一時ファイルのクローズに失敗しました: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("パーミッションの設定に失敗しました: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("リネームに失敗しました: %w", err)
	}
	return nil
}
