// package model はドメインモデルを定義します
package model

import (
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Name はファイルシステム上の名前を表します。
// OSから得たバイト列をそのまま保持し、UTF-8であることを前提にしません。
type Name string

// Display は表示用の文字列を返します。
// 不正なUTF-8はU+FFFDに置き換え、制御文字は '?' に置き換えます。
func (n Name) Display() string {
	s, _, err := transform.String(xunicode.UTF8.NewDecoder(), string(n))
	if err != nil {
		s = strings.ToValidUTF8(string(n), "�")
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}

// FileTree はスキャン結果のルートコンテナです
type FileTree struct {
	// Directories はトップレベルのディレクトリです（通常はスキャンのルート1件）
	Directories []Directory
}

// Directory はファイルシステム上の1つのディレクトリを表します
type Directory struct {
	// Name はディレクトリのベース名を表します
	Name Name
	// Directories は直下のサブディレクトリを列挙順に保持します
	Directories []Directory
	// Files は直下のファイル名を列挙順に保持します
	Files []Name
	// ReadErr は一覧取得に失敗した場合のエラーを保持します（部分スキャン時のみ）
	ReadErr error
}

// Counts はルートを除くディレクトリ数とファイル数を返します
func (t FileTree) Counts() (dirs, files int) {
	for _, d := range t.Directories {
		subDirs, subFiles := d.counts()
		dirs += subDirs
		files += subFiles
	}
	return dirs, files
}

func (d Directory) counts() (dirs, files int) {
	files = len(d.Files)
	for _, child := range d.Directories {
		subDirs, subFiles := child.counts()
		dirs += 1 + subDirs
		files += subFiles
	}
	return dirs, files
}

// Errors はツリー内で記録された読み込みエラーを深さ優先で返します
func (t FileTree) Errors() []error {
	var errs []error
	var walk func(d Directory)
	walk = func(d Directory) {
		if d.ReadErr != nil {
			errs = append(errs, d.ReadErr)
		}
		for _, child := range d.Directories {
			walk(child)
		}
	}
	for _, d := range t.Directories {
		walk(d)
	}
	return errs
}
