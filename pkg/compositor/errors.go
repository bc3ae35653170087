package compositor

import "fmt"

// LoadError は入力画像が存在しない、読めない、またはデコードできないことを表します。
type LoadError struct {
	Label string
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("compositor: %s の画像 %q を読み込めませんでした: %v", e.Label, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError は出力先に書き込めなかったことを表します。
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("compositor: プレビュー画像 %q を書き込めませんでした: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
