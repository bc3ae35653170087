package compositor

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// errFontUnavailable はキャッシュ上で「読み込めなかったフォント」を表す目印なのだ。
var errFontUnavailable = errors.New("font unavailable")

// FontResolver はフォントファイルを解決して font.Face を返します。
// パース済みのフォントはパスごとにキャッシュするので、タイトルとラベルで同じファイルを二度読みしません。
type FontResolver struct {
	fonts *cache.Cache
}

// NewFontResolver は FontResolver を初期化して返すのだ。
func NewFontResolver() *FontResolver {
	return &FontResolver{
		fonts: cache.New(cache.NoExpiration, 0),
	}
}

// DefaultFace はフォントが見つからないときに使う組み込みのビットマップフォントです。
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// Resolve は path のフォントを size（ピクセル）で開いて返します。
// 開けなかった場合は組み込みフォントにフォールバックし、エラーは返しません。
// 2つ目の戻り値は、指定のフォントが使えたかどうかなのだ。
func (r *FontResolver) Resolve(path string, size float64) (font.Face, bool) {
	if path == "" || size <= 0 {
		return DefaultFace(), false
	}

	f, err := r.load(path)
	if err != nil {
		return DefaultFace(), false
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		slog.Warn("フォントフェイスの生成に失敗したので組み込みフォントを使うのだ", "path", path, "size", size, "error", err)
		return DefaultFace(), false
	}
	return face, true
}

// load はキャッシュを確認し、なければファイルをパースしてキャッシュに載せます。
// 失敗もキャッシュするので、警告ログはパスごとに一度だけなのだ。
func (r *FontResolver) load(path string) (*opentype.Font, error) {
	if v, ok := r.fonts.Get(path); ok {
		if f, ok := v.(*opentype.Font); ok {
			return f, nil
		}
		return nil, errFontUnavailable
	}

	f, err := parseFontFile(path)
	if err != nil {
		slog.Warn("フォントを読み込めなかったので組み込みフォントにフォールバックするのだ", "path", path, "error", err)
		r.fonts.Set(path, errFontUnavailable, cache.NoExpiration)
		return nil, err
	}

	r.fonts.Set(path, f, cache.NoExpiration)
	return f, nil
}

// parseFontFile は TTF/OTF 単体と TTC/OTC コレクションの両方を受け付けます。
// コレクションの場合は先頭のフォントを使うのだ。
func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("フォントのパースに失敗しました: %w", err)
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("フォントが含まれていません")
	}
	return coll.Font(0)
}
