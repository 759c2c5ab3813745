package filesystem

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"FolderTree/internal/domain/model"
	"FolderTree/internal/infrastructure/logging"
)

// ErrorPolicy はスキャン中のエラーをどう扱うかを決めます。
// nil以外を返すとスキャン全体が中断されます。
type ErrorPolicy interface {
	HandleError(dir *model.Directory, err *ScanError) error
}

// AbortPolicy は最初のエラーでスキャン全体を中断します
type AbortPolicy struct{}

// HandleError は受け取ったエラーをそのまま返します
func (AbortPolicy) HandleError(_ *model.Directory, err *ScanError) error {
	return err
}

// CollectPolicy はエラーをディレクトリに記録してスキャンを続行します
type CollectPolicy struct {
	logger logging.Logger
	errs   *multierror.Error
}

// NewCollectPolicy は新しい CollectPolicy を作成します
func NewCollectPolicy(logger logging.Logger) *CollectPolicy {
	return &CollectPolicy{logger: logger}
}

// HandleError はエラーを記録し、nilを返します
func (p *CollectPolicy) HandleError(dir *model.Directory, err *ScanError) error {
	if p.logger != nil {
		p.logger.Log(logging.LevelWarn, fmt.Sprintf("読み込めないディレクトリを記録して続行: %s", err.Path), err)
	}
	if dir != nil && dir.ReadErr == nil {
		dir.ReadErr = err
	}
	p.errs = multierror.Append(p.errs, err)
	return nil
}

// Err はこれまでに記録したエラーをまとめて返します。なければnilです。
func (p *CollectPolicy) Err() error {
	return p.errs.ErrorOrNil()
}
