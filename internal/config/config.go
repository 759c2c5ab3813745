// Package config は実行時の設定を提供します
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ログ形式
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config は1回の実行に必要な設定を保持します
type Config struct {
	// RootPath はスキャンするディレクトリです。空の場合は作業ディレクトリを使います
	RootPath string
	// ContinueOnError は読めないディレクトリを記録して走査を続けるかどうかです
	ContinueOnError bool
	// OutputDir が空でなければ、標準出力の代わりにこのディレクトリへレポートを書き出します
	OutputDir string
	// Browse はダイアログでルートを選ぶかどうかです
	Browse bool
	Debug  bool
	// LogFormat は json または text です
	LogFormat string
}

// Resolve は既定値を補い、パスを絶対パスに変換します
func (c *Config) Resolve() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatJSON
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		return fmt.Errorf("不明なログ形式です: %s", c.LogFormat)
	}

	if c.RootPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("作業ディレクトリの取得に失敗しました: %w", err)
		}
		c.RootPath = wd
	}

	root, err := filepath.Abs(c.RootPath)
	if err != nil {
		return fmt.Errorf("ルートパスの解決に失敗しました: %w", err)
	}
	c.RootPath = root

	if c.OutputDir != "" {
		out, err := filepath.Abs(c.OutputDir)
		if err != nil {
			return fmt.Errorf("出力先パスの解決に失敗しました: %w", err)
		}
		c.OutputDir = out
	}

	return nil
}
