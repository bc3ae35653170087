package asset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shouni/go-preview-kit/pkg/domain"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultImageDir はスクリーンショットと出力画像を置くデフォルトのディレクトリ名です。
	DefaultImageDir = "mosque-photos"
	// DefaultMainFileName はメインページのスクリーンショットのファイル名です。
	DefaultMainFileName = "holland-park-main.png"
	// DefaultDonateFileName は寄付ページのスクリーンショットのファイル名です。
	DefaultDonateFileName = "holland-park-donate.png"
	// DefaultEventsFileName はイベントページのスクリーンショットのファイル名です。
	DefaultEventsFileName = "holland-park-events.png"
	// DefaultPartnershipsFileName はパートナーシップページのスクリーンショットのファイル名です。
	DefaultPartnershipsFileName = "holland-park-partnerships.png"
	// DefaultPreviewFileName は合成したプレビュー画像のファイル名です。
	DefaultPreviewFileName = "holland-park-mosque-preview.jpg"
)

// DefaultFileNames はラベルごとのデフォルトファイル名なのだ。
var DefaultFileNames = map[string]string{
	domain.LabelMain:         DefaultMainFileName,
	domain.LabelDonations:    DefaultDonateFileName,
	domain.LabelEvents:       DefaultEventsFileName,
	domain.LabelPartnerships: DefaultPartnershipsFileName,
}

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から最終的なパスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolveOutputPath(baseDir, fileName)
}

// ResolveSources は画像ディレクトリと個別指定（ラベル→パス）から、4枚分の読み込み元を解決するのだ。
// overrides に含まれるパスはそのまま使い、それ以外は baseDir 配下のデフォルト名になります。
func ResolveSources(baseDir string, overrides map[string]string) (domain.SourceSet, error) {
	paths := make(map[string]string, len(domain.Labels))
	for _, label := range domain.Labels {
		if p := strings.TrimSpace(overrides[label]); p != "" {
			paths[label] = p
			continue
		}
		p, err := ResolveOutputPath(baseDir, DefaultFileNames[label])
		if err != nil {
			return domain.SourceSet{}, fmt.Errorf("%s のパス解決に失敗しました: %w", label, err)
		}
		paths[label] = p
	}

	set, ok := domain.NewSourceSet(paths)
	if !ok {
		return domain.SourceSet{}, fmt.Errorf("入力画像のパスが揃っていないのだ")
	}
	return set, nil
}

// ResolvePreviewPath は出力パスを決めるのだ。
// output が空ならディレクトリ内のデフォルト名、ディレクトリ区切りを含まないファイル名なら baseDir 配下として扱います。
func ResolvePreviewPath(baseDir, output string) (string, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return ResolveOutputPath(baseDir, DefaultPreviewFileName)
	}
	if filepath.Base(output) == output {
		return ResolveOutputPath(baseDir, output)
	}
	return output, nil
}
