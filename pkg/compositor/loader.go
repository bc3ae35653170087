package compositor

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/shouni/go-preview-kit/pkg/domain"

	"github.com/disintegration/imaging"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads は同時にデコードする画像の上限なのだ。
const maxConcurrentLoads = 4

// Loader は InputReader から入力画像を開いてデコードします。
type Loader struct {
	reader remoteio.InputReader
}

// NewLoader は Loader を生成するのだ。reader が nil ならローカルファイル用のリーダーを使います。
// GCS/S3 のクライアントは渡さないので、認証情報なしで動くのだ。
func NewLoader(reader remoteio.InputReader) *Loader {
	if reader == nil {
		reader = remoteio.NewUniversalInputReader(nil, nil)
	}
	return &Loader{reader: reader}
}

// LoadImages はローカルファイル用の Loader で4枚の入力画像を読み込むのだ。
func LoadImages(ctx context.Context, sources domain.SourceSet) ([4]domain.NamedImage, error) {
	return NewLoader(nil).Load(ctx, sources)
}

// Load は4枚の入力画像を並列でデコードし、描画順に並べて返します。
// 失敗した場合は描画順で最初に失敗したラベルの *LoadError を返すので、結果は実行ごとに変わりません。
func (l *Loader) Load(ctx context.Context, sources domain.SourceSet) ([4]domain.NamedImage, error) {
	var (
		images [4]domain.NamedImage
		errs   [4]*LoadError
	)

	// 1枚の失敗で他の読み込みを打ち切らないよう、WithContext は使わないのだ
	var eg errgroup.Group
	eg.SetLimit(maxConcurrentLoads)

	for i, src := range sources {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			img, err := l.decodeSource(ctx, src)
			if err != nil {
				errs[i] = &LoadError{Label: src.Label, Path: src.Path, Err: err}
				return errs[i]
			}

			b := img.Bounds()
			slog.Debug("画像を読み込んだのだ", "label", src.Label, "path", src.Path, "width", b.Dx(), "height", b.Dy())
			images[i] = domain.NamedImage{Label: src.Label, Image: img}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return images, e
			}
		}
		return images, err
	}
	return images, nil
}

// decodeSource は入力を開いて画像としてデコードします。
func (l *Loader) decodeSource(ctx context.Context, src domain.Source) (image.Image, error) {
	if src.Path == "" {
		return nil, fmt.Errorf("パスが指定されていません")
	}

	rc, err := l.reader.Open(ctx, src.Path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, err := imaging.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("画像サイズが不正です: %dx%d", b.Dx(), b.Dy())
	}
	return img, nil
}
