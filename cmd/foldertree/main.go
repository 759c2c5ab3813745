// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"FolderTree/internal/config"
	"FolderTree/internal/infrastructure/filesystem"
	"FolderTree/internal/infrastructure/logging"
	"FolderTree/internal/interface/ui"
	"FolderTree/internal/usecase/report"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("エラー: %v", err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "foldertree",
		Version:   "v0.1.0",
		Usage:     "ディレクトリの内容をツリー形式で表示します",
		ArgsUsage: "[PATH]",
		Writer:    stdout,
		ErrWriter: stderr,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "DEBUGログを出力する",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: config.LogFormatJSON,
				Usage: "ログの形式 (`FORMAT`: json または text)",
			},
			&cli.BoolFlag{
				Name:    "continue-on-error",
				Aliases: []string{"k"},
				Usage:   "読めないディレクトリを記録して走査を続ける",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "標準出力の代わりに `DIR` へレポートファイルを書き出す",
			},
			&cli.BoolFlag{
				Name:    "browse",
				Aliases: []string{"b"},
				Usage:   "ダイアログでスキャン対象のフォルダを選ぶ",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return fmt.Errorf("引数が多すぎます: %v", c.Args().Slice())
			}

			cfg := config.Config{
				RootPath:        c.Args().First(),
				ContinueOnError: c.Bool("continue-on-error"),
				OutputDir:       c.String("output"),
				Browse:          c.Bool("browse"),
				Debug:           c.Bool("debug"),
				LogFormat:       c.String("log-format"),
			}
			if err := cfg.Resolve(); err != nil {
				return err
			}

			logger := newLogger(cfg, stderr)
			if err := run(c.Context, cfg, stdout, logger); err != nil {
				logger.Log(logging.LevelError, "処理に失敗しました", err)
				return err
			}
			return nil
		},
	}
}

func newLogger(cfg config.Config, w io.Writer) *logging.LogrusLogger {
	var logger *logging.LogrusLogger
	if cfg.LogFormat == config.LogFormatText {
		logger = logging.NewTextLogger(w)
	} else {
		logger = logging.NewJSONLogger(w)
	}
	logger.SetDebug(cfg.Debug)
	return logger
}

// run はスキャンを行い、ツリーを出力します。スキャンが失敗した場合は何も出力しません。
func run(ctx context.Context, cfg config.Config, stdout io.Writer, logger logging.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var collect *filesystem.CollectPolicy
	opts := []filesystem.Option{}
	if cfg.ContinueOnError {
		collect = filesystem.NewCollectPolicy(logger)
		opts = append(opts, filesystem.WithPolicy(collect))
	}
	scanner := filesystem.NewScanner(logger, opts...)

	if cfg.Browse {
		root, err := ui.NewDirectorySelector(scanner).SelectDirectory("スキャンするフォルダを選択")
		if err != nil {
			return err
		}
		cfg.RootPath = root
	}
	logger.Log(logging.LevelInfo, fmt.Sprintf("スキャンを開始します: %s", cfg.RootPath), nil)

	tree, err := scanner.Scan(ctx, cfg.RootPath)
	if err != nil {
		return err
	}

	dirs, files := tree.Counts()
	logger.Log(logging.LevelInfo, fmt.Sprintf("スキャンが完了しました: ディレクトリ %d, ファイル %d", dirs, files), nil)
	if collect != nil {
		if err := collect.Err(); err != nil {
			logger.Log(logging.LevelWarn, "一部のディレクトリを読み込めませんでした", err)
		}
	}

	generator := report.NewGenerator()
	if cfg.OutputDir == "" {
		return generator.WriteTree(stdout, tree)
	}

	if err := scanner.ValidateDirectoryPath(cfg.OutputDir); err != nil {
		return fmt.Errorf("出力先フォルダが無効です: %w", err)
	}
	outputPath, err := writeReportFile(generator, cfg.OutputDir, func(w io.Writer) error {
		return generator.WriteReport(w, tree)
	})
	if err != nil {
		return err
	}
	logger.Log(logging.LevelInfo, fmt.Sprintf("レポートを生成しました: %s", outputPath), nil)
	return nil
}

// writeReportFile はレポートファイルを作成して write で書き込みます。
// 書き込みかクローズに失敗した場合、作成したファイルは削除します。
func writeReportFile(generator *report.Generator, outputDir string, write func(io.Writer) error) (string, error) {
	outputFile, outputPath, err := generator.CreateOutputFile(outputDir)
	if err != nil {
		return "", err
	}

	if err := write(outputFile); err != nil {
		outputFile.Close()
		os.Remove(outputPath)
		return "", err
	}
	if err := outputFile.Close(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("出力ファイルのクローズに失敗しました: %w", err)
	}

	return outputPath, nil
}
