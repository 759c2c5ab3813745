package filesystem

import (
	"io/fs"
	"os"
	"syscall"
)

// DirLister はディレクトリ直下のエントリ名の列挙と状態確認を提供するインターフェースです
type DirLister interface {
	// ListDir はpath直下のエントリ名を、下位の実装が返した順序のまま返します
	ListDir(path string) ([]string, error)
	// Stat はpathの状態を返します（シンボリックリンクは辿ります）
	Stat(path string) (fs.FileInfo, error)
}

// OSLister はOSのファイルシステムを使う DirLister です
type OSLister struct{}

// ListDir はディレクトリを開いてエントリ名を読み出します。
// Readdirnames はソートしないため、OSが返した順序が保たれます。
func (OSLister) ListDir(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ScanError{Kind: KindListing, Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &ScanError{Kind: KindListing, Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &ScanError{Kind: KindListing, Path: path, Err: syscall.ENOTDIR}
	}

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &ScanError{Kind: KindEntryIteration, Path: path, Err: err}
	}
	return names, nil
}

// Stat は os.Stat を呼び出します
func (OSLister) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
