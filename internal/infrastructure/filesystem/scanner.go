// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"FolderTree/internal/domain/model"
	"FolderTree/internal/infrastructure/logging"
)

// FallbackRootName はルートパスからベース名を取り出せない場合に使う名前です
const FallbackRootName = "."

var errInvalidEntryName = errors.New("エントリ名が不正です")

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// FileSystemScanner はファイルシステムのスキャン機能を提供するインターフェースです
type FileSystemScanner interface {
	DirectoryValidator
	Scan(ctx context.Context, rootDir string) (model.FileTree, error)
}

// Scanner はディレクトリを再帰的に走査してツリーを構築する構造体です
type Scanner struct {
	logger logging.Logger
	lister DirLister
	policy ErrorPolicy
}

// Option は Scanner の設定を変更します
type Option func(*Scanner)

// WithLister はディレクトリの列挙に使う DirLister を差し替えます
func WithLister(lister DirLister) Option {
	return func(s *Scanner) {
		s.lister = lister
	}
}

// WithPolicy はエラー発生時の方針を差し替えます
func WithPolicy(policy ErrorPolicy) Option {
	return func(s *Scanner) {
		s.policy = policy
	}
}

// NewScanner は新しい Scanner インスタンスを作成します
func NewScanner(logger logging.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		logger: logger,
		lister: OSLister{},
		policy: AbortPolicy{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (s *Scanner) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください")
	}

	// Windows ではパスに使えない文字
	if runtime.GOOS == "windows" && strings.ContainsAny(path, "<>|?*") {
		return fmt.Errorf("パスに不正な文字が含まれています")
	}

	return nil
}

// Scan はrootDirを深さ優先で走査し、ルートディレクトリ1件を持つ FileTree を返します。
// ルートの一覧取得に失敗した場合はエラー方針に関わらず失敗します。
// エラー方針が中断を選んだ場合、部分的なツリーは返しません。
func (s *Scanner) Scan(ctx context.Context, rootDir string) (model.FileTree, error) {
	root := model.Directory{Name: RootName(rootDir)}

	names, err := s.list(ctx, rootDir)
	if err == nil {
		err = s.addEntries(ctx, rootDir, &root, names)
	}
	if err != nil {
		return model.FileTree{}, fmt.Errorf("ファイルシステムの走査に失敗しました: %w", err)
	}

	return model.FileTree{Directories: []model.Directory{root}}, nil
}

func (s *Scanner) list(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.log(logging.LevelDebug, fmt.Sprintf("ディレクトリを走査: %s", path), nil)

	names, err := s.lister.ListDir(path)
	if err != nil {
		var scanErr *ScanError
		if errors.As(err, &scanErr) {
			return nil, scanErr
		}
		return nil, &ScanError{Kind: KindListing, Path: path, Err: err}
	}
	return names, nil
}

// populate はサブディレクトリを一覧し、失敗はエラー方針に委ねます
func (s *Scanner) populate(ctx context.Context, path string, dir *model.Directory) error {
	names, err := s.list(ctx, path)
	if err != nil {
		var scanErr *ScanError
		if !errors.As(err, &scanErr) {
			return err
		}
		return s.policy.HandleError(dir, scanErr)
	}
	return s.addEntries(ctx, path, dir, names)
}

// addEntries はpath直下のエントリを dir に追加し、サブディレクトリへ再帰します
func (s *Scanner) addEntries(ctx context.Context, path string, dir *model.Directory, names []string) error {
	for _, name := range names {
		if !validEntryName(name) {
			// Join は ".." を畳み込むため、報告用のパスはそのまま連結する
			rawPath := strings.TrimSuffix(path, string(filepath.Separator)) + string(filepath.Separator) + name
			scanErr := &ScanError{Kind: KindName, Path: rawPath, Err: errInvalidEntryName}
			if err := s.policy.HandleError(dir, scanErr); err != nil {
				return err
			}
			continue
		}

		entryPath := filepath.Join(path, name)
		info, err := s.lister.Stat(entryPath)
		if err != nil {
			s.log(logging.LevelWarn, fmt.Sprintf("状態を取得できないためスキップ: %s", entryPath), err)
			continue
		}

		switch {
		case info.IsDir():
			child := model.Directory{Name: model.Name(name)}
			if err := s.populate(ctx, entryPath, &child); err != nil {
				return err
			}
			dir.Directories = append(dir.Directories, child)
		case info.Mode().IsRegular():
			dir.Files = append(dir.Files, model.Name(name))
		default:
			s.log(logging.LevelDebug, fmt.Sprintf("通常ファイルではないためスキップ: %s", entryPath), nil)
		}
	}

	return nil
}

func (s *Scanner) log(level, message string, err error) {
	if s.logger != nil {
		s.logger.Log(level, message, err)
	}
}

// RootName はパスの最後の要素を返します。取り出せない場合は FallbackRootName を返します。
func RootName(path string) model.Name {
	base := filepath.Base(filepath.Clean(path))
	switch {
	case base == ".", base == "..", base == string(filepath.Separator):
		return FallbackRootName
	case filepath.VolumeName(base) == base:
		return FallbackRootName
	}
	return model.Name(base)
}

func validEntryName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/"+string(filepath.Separator))
}
