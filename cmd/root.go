package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-preview-kit/internal/config"

	"github.com/disintegration/imaging"
	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は各サブコマンドで共有するフラグの値なのだ。
var opts = config.DefaultPreviewOptions()

// rootCmd はアプリケーションのルートコマンドなのだ。
// --verbose (-V) と --config (-C) は clibase が用意してくれるのだ。
var rootCmd = clibase.NewRootCmd("preview-grid", addAppFlags, preRunAppE)

// addAppFlags は、すべてのサブコマンドに適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	f := rootCmd.PersistentFlags()

	// --- 入出力 ---
	f.StringVarP(&opts.ImageDir, "image-dir", "d", opts.ImageDir, "スクリーンショットが置かれたディレクトリなのだ。")
	f.StringVarP(&opts.OutputFile, "output", "o", "", "出力ファイル（拡張子で JPEG/PNG を選ぶのだ）。")
	f.StringVar(&opts.MainFile, "main", "", "Main Page の画像パス（省略時はデフォルト名）。")
	f.StringVar(&opts.DonateFile, "donate", "", "Donations の画像パス（省略時はデフォルト名）。")
	f.StringVar(&opts.EventsFile, "events", "", "Events の画像パス（省略時はデフォルト名）。")
	f.StringVar(&opts.PartnershipsFile, "partnerships", "", "Partnerships の画像パス（省略時はデフォルト名）。")

	// --- レイアウト ---
	f.IntVar(&opts.TargetWidth, "target-width", opts.TargetWidth, "各画像を揃える幅（px）なのだ。")
	f.IntVar(&opts.Padding, "padding", opts.Padding, "セルの周囲と間の余白（px）なのだ。")
	f.IntVar(&opts.LabelHeight, "label-height", opts.LabelHeight, "ラベル帯1本の高さ（px）なのだ。")

	// --- 見た目 ---
	f.StringVar(&opts.Title, "title", opts.Title, "タイトル文字列なのだ。")
	f.StringVar(&opts.TitleColor, "title-color", opts.TitleColor, "タイトルの色（#rrggbb）なのだ。")
	f.StringVar(&opts.LabelColor, "label-color", opts.LabelColor, "ラベルの色（#rrggbb）なのだ。")
	f.StringVar(&opts.Background, "background", opts.Background, "背景色（#rrggbb / white / black）なのだ。")
	f.StringVar(&opts.FontPath, "font", opts.FontPath, "TrueType/OpenType フォントのパス。見つからなければ組み込みフォントなのだ。")
	f.Float64Var(&opts.TitleFontSize, "title-font-size", opts.TitleFontSize, "タイトルの文字サイズ（px）なのだ。")
	f.Float64Var(&opts.LabelFontSize, "label-font-size", opts.LabelFontSize, "ラベルの文字サイズ（px）なのだ。")

	// --- 出力 ---
	f.IntVarP(&opts.Quality, "quality", "q", opts.Quality, "JPEG 品質（1-100）なのだ。")
}

// preRunAppE は、ロガーを整えて、フラグの値を軽く検証するのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if clibase.Flags.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if _, err := opts.CompositorOptions(); err != nil {
		return fmt.Errorf("フラグの値が不正なのだ: %w", err)
	}
	return validateOutputFormat(opts.OutputFile)
}

// validateOutputFormat は出力ファイルの拡張子が書き出せる形式かを、画像を読む前に確かめるのだ。
// 空なら既定の JPEG 名になるので何もしません。
func validateOutputFormat(output string) error {
	if output == "" {
		return nil
	}
	if _, err := imaging.FormatFromFilename(output); err != nil {
		return fmt.Errorf("出力ファイル %q の形式に対応していないのだ (.jpg/.jpeg/.png などを指定してほしいのだ): %w", output, err)
	}
	return nil
}

// loadConfig は環境変数の設定を読み込み、ユーザーが明示したフラグで上書きするのだ。
// フラグが優先、次に環境変数、最後にデフォルト値の順なのだ。
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.LoadConfig()
	resolved := opts

	if !cmd.Flags().Changed("image-dir") {
		resolved.ImageDir = cfg.ImageDir
	}
	if !cmd.Flags().Changed("output") {
		resolved.OutputFile = cfg.OutputFile
	}
	if !cmd.Flags().Changed("font") {
		resolved.FontPath = cfg.FontPath
	}
	if !cmd.Flags().Changed("title") {
		resolved.Title = cfg.Title
	}

	cfg.Options = resolved
	return cfg
}

func init() {
	rootCmd.Short = "4枚のスクリーンショットを1枚のグリッドプレビューにまとめるのだ。"
	rootCmd.Long = "4枚のスクリーンショットを幅を揃えて 2x2 のグリッドに並べ、タイトルとラベルを付けた1枚の画像にするのだ。"
	rootCmd.SilenceUsage = true
	rootCmd.AddCommand(previewCmd, layoutCmd)
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
