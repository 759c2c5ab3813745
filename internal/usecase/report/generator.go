// Package report はレポート生成機能を提供します
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"FolderTree/internal/domain/model"
)

const (
	OutputFilePrefix = "output_"
	OutputFileSuffix = ".txt"
	TimestampLayout  = "20060102_150405"

	// Heading はレポートファイルの先頭に出力する見出しです
	Heading = "===== フォルダ・ファイル構成 ====="
	// IndentUnit は深さ1段分のインデントです
	IndentUnit = "  "
	// Connector は各行の名前の前に付くコネクタです
	Connector = "└── "
)

// Generator はレポート生成機能を提供します
type Generator struct {
	now func() time.Time
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// CreateOutputFile は出力ファイルを作成します
func (g *Generator) CreateOutputFile(outputDir string) (*os.File, string, error) {
	timestamp := g.now().Format(TimestampLayout)
	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s%s%s", OutputFilePrefix, timestamp, OutputFileSuffix))

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteReport は見出しに続けてツリーを出力します
func (g *Generator) WriteReport(writer io.Writer, tree model.FileTree) error {
	if _, err := fmt.Fprintln(writer, Heading); err != nil {
		return fmt.Errorf("レポートの書き込みに失敗しました: %w", err)
	}
	return g.WriteTree(writer, tree)
}

// WriteTree はツリーを深さ優先（行きがけ順）で1ノード1行ずつ出力します。
// 深さdのディレクトリ名の後に、そのファイルを深さd+1で出力し、
// 続けて各サブディレクトリを深さd+1で再帰的に出力します。
func (g *Generator) WriteTree(writer io.Writer, tree model.FileTree) error {
	w := bufio.NewWriter(writer)
	for _, dir := range tree.Directories {
		writeDirectory(w, dir, 1)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("ツリーの書き込みに失敗しました: %w", err)
	}
	return nil
}

func writeDirectory(w *bufio.Writer, dir model.Directory, depth int) {
	label := dir.Name.Display()
	if dir.ReadErr != nil {
		label = fmt.Sprintf("%s [読み込みエラー: %s]", label, model.Name(dir.ReadErr.Error()).Display())
	}
	writeLine(w, depth, label)

	for _, file := range dir.Files {
		writeLine(w, depth+1, file.Display())
	}

	for _, child := range dir.Directories {
		writeDirectory(w, child, depth+1)
	}
}

// bufio.Writer はエラーを保持するため、Flush でまとめて確認する
func writeLine(w *bufio.Writer, depth int, label string) {
	w.WriteString(strings.Repeat(IndentUnit, depth))
	w.WriteString(Connector)
	w.WriteString(label)
	w.WriteByte('\n')
}
