package asset

import (
	"path/filepath"
	"testing"

	"github.com/shouni/go-preview-kit/pkg/domain"

	"github.com/google/go-cmp/cmp"
)

func TestResolveSources(t *testing.T) {
	t.Run("デフォルト名でディレクトリ配下に解決されるのだ", func(t *testing.T) {
		set, err := ResolveSources("photos", nil)
		if err != nil {
			t.Fatalf("予期しないエラーなのだ: %v", err)
		}

		want := domain.SourceSet{
			{Label: domain.LabelMain, Path: filepath.Join("photos", DefaultMainFileName)},
			{Label: domain.LabelDonations, Path: filepath.Join("photos", DefaultDonateFileName)},
			{Label: domain.LabelEvents, Path: filepath.Join("photos", DefaultEventsFileName)},
			{Label: domain.LabelPartnerships, Path: filepath.Join("photos", DefaultPartnershipsFileName)},
		}
		if diff := cmp.Diff(want, set); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("個別指定が優先されるのだ", func(t *testing.T) {
		set, err := ResolveSources("photos", map[string]string{
			domain.LabelEvents: "/tmp/events.jpg",
			domain.LabelMain:   "  ",
		})
		if err != nil {
			t.Fatalf("予期しないエラーなのだ: %v", err)
		}
		if set[2].Path != "/tmp/events.jpg" {
			t.Errorf("Events のパスが上書きされていないのだ: %s", set[2].Path)
		}
		if set[0].Path != filepath.Join("photos", DefaultMainFileName) {
			t.Errorf("空白だけの指定はデフォルトに戻るべきなのだ: %s", set[0].Path)
		}
	})
}

func TestResolvePreviewPath(t *testing.T) {
	tests := []struct {
		name, dir, output, want string
	}{
		{"未指定ならデフォルト名", "photos", "", filepath.Join("photos", DefaultPreviewFileName)},
		{"ファイル名だけならディレクトリ配下", "photos", "grid.png", filepath.Join("photos", "grid.png")},
		{"パス付きならそのまま", "photos", filepath.Join("out", "grid.jpg"), filepath.Join("out", "grid.jpg")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePreviewPath(tt.dir, tt.output)
			if err != nil {
				t.Fatalf("予期しないエラーなのだ: %v", err)
			}
			if got != tt.want {
				t.Errorf("期待値 %q, 実際の値 %q", tt.want, got)
			}
		})
	}
}
