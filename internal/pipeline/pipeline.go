package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/go-preview-kit/internal/config"
	"github.com/shouni/go-preview-kit/pkg/asset"
	"github.com/shouni/go-preview-kit/pkg/compositor"
	"github.com/shouni/go-preview-kit/pkg/domain"

	"github.com/disintegration/imaging"
)

// ExecutePreview は4枚のスクリーンショットを読み込み、グリッドプレビューを合成して保存するのだ。
// 成功すると確認メッセージ、保存先、寸法を out に書き出します。
func ExecutePreview(ctx context.Context, cfg *config.Config, out io.Writer) error {
	comp, sources, outputPath, err := setup(cfg)
	if err != nil {
		return err
	}

	slog.Info("プレビュー画像の合成を開始するのだ",
		"image_dir", cfg.Options.ImageDir,
		"output", outputPath,
		"target_width", cfg.Options.TargetWidth,
	)

	result, err := comp.Build(ctx, sources, outputPath)
	if err != nil {
		return fmt.Errorf("プレビュー画像の作成に失敗したのだ: %w", err)
	}

	fmt.Fprintln(out, "✅ Preview image created successfully!")
	fmt.Fprintf(out, "📁 Saved to: %s\n", result.OutputPath)
	fmt.Fprintf(out, "📐 Dimensions: %dx%d\n", result.Width, result.Height)
	return nil
}

// LayoutReport は layout コマンドが出力する JSON の形なのだ。
type LayoutReport struct {
	Output   string          `json:"output"`
	Geometry domain.Geometry `json:"geometry"`
	TitleX   int             `json:"title_x"`
	Cells    [4]domain.Cell  `json:"cells"`
}

// ExecuteLayout は画像を合成してジオメトリとセル座標だけを JSON で出力します。ファイルは書きません。
func ExecuteLayout(ctx context.Context, cfg *config.Config, out io.Writer) error {
	comp, sources, outputPath, err := setup(cfg)
	if err != nil {
		return err
	}

	preview, err := comp.Compose(ctx, sources)
	if err != nil {
		return fmt.Errorf("レイアウトの計算に失敗したのだ: %w", err)
	}

	report := LayoutReport{
		Output:   outputPath,
		Geometry: preview.Geometry,
		TitleX:   preview.TitleX,
		Cells:    preview.Cells,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// setup は設定から Compositor と入出力パスを組み立てるのだ。
func setup(cfg *config.Config) (*compositor.Compositor, domain.SourceSet, string, error) {
	opts, err := cfg.Options.CompositorOptions()
	if err != nil {
		return nil, domain.SourceSet{}, "", fmt.Errorf("設定が不正なのだ: %w", err)
	}

	comp, err := compositor.New(opts)
	if err != nil {
		return nil, domain.SourceSet{}, "", fmt.Errorf("Compositorの初期化に失敗したのだ: %w", err)
	}

	sources, err := asset.ResolveSources(cfg.Options.ImageDir, cfg.Options.SourceOverrides())
	if err != nil {
		return nil, domain.SourceSet{}, "", err
	}

	outputPath, err := asset.ResolvePreviewPath(cfg.Options.ImageDir, cfg.Options.OutputFile)
	if err != nil {
		return nil, domain.SourceSet{}, "", fmt.Errorf("出力パスの解決に失敗したのだ: %w", err)
	}
	// 環境変数から来た出力名も、画像を読む前に形式を確かめるのだ
	if _, err := imaging.FormatFromFilename(outputPath); err != nil {
		return nil, domain.SourceSet{}, "", fmt.Errorf("出力ファイル %q の形式に対応していないのだ: %w", outputPath, err)
	}
	return comp, sources, outputPath, nil
}
