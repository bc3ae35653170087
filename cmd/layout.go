package cmd

import (
	"github.com/shouni/go-preview-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// layoutCmd は、ファイルを書かずにジオメトリとセル座標を JSON で表示するのだ。
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "画像を書き出さずにレイアウトだけ確認するのだ。",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.ExecuteLayout(cmd.Context(), loadConfig(cmd), cmd.OutOrStdout())
	},
}
