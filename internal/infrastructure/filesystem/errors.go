package filesystem

import "fmt"

// ErrorKind はスキャン失敗の種類です
type ErrorKind int

const (
	// KindListing はディレクトリの一覧取得そのものに失敗したことを示します
	KindListing ErrorKind = iota
	// KindEntryIteration は一覧中のエントリ読み出しに失敗したことを示します
	KindEntryIteration
	// KindName はエントリのベース名を決定できなかったことを示します
	KindName
)

func (k ErrorKind) String() string {
	switch k {
	case KindListing:
		return "一覧取得の失敗"
	case KindEntryIteration:
		return "エントリ読み出しの失敗"
	case KindName:
		return "名前の解決の失敗"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ScanError はスキャン中に発生したエラーを表します
type ScanError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
