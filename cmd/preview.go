package cmd

import (
	"log/slog"

	"github.com/shouni/go-preview-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// previewCmd は、4枚のスクリーンショットからプレビュー画像を作成して保存するのだ。
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "グリッドプレビュー画像を作成して保存するのだ。",
	Long: `Main Page / Donations / Events / Partnerships の4枚を同じ幅にリサイズし、
ラベルとタイトルを付けた 2×2 のグリッドとして1枚の画像に書き出すのだ。`,
	Example: "  preview-grid preview -d mosque-photos -o holland-park-mosque-preview.jpg",
	Args:    cobra.NoArgs,
	RunE:    previewCommand,
}

// previewCommand は、preview サブコマンドの実行ロジック本体なのだ。
func previewCommand(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	slog.Debug("設定を読み込んだのだ", "image_dir", cfg.Options.ImageDir, "font", cfg.Options.FontPath)
	return pipeline.ExecutePreview(cmd.Context(), cfg, cmd.OutOrStdout())
}
