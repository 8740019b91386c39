package export

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryLoad means the rendering resource could not be acquired.
	// It is recoverable: the next export fetches again.
	ErrLibraryLoad = errors.New("failed to load PDF rendering resource")

	// ErrRender covers everything after the resource is available:
	// layout, rasterization and PDF assembly.
	ErrRender = errors.New("failed to render PDF")

	// ErrNothingToExport is returned when there are no questions.
	ErrNothingToExport = fmt.Errorf("%w: no questions to export", ErrRender)
)

// User-facing notices for the two failure classes.
const (
	MessageLibraryLoad = "PDF 생성 라이브러리를 로드하지 못했습니다. 인터넷 연결을 확인하고 잠시 후 다시 시도해주세요."
	MessageRender      = "PDF를 생성하는 중 오류가 발생했습니다. 다시 시도해주세요."
)

// UserMessage maps an export error to the notice shown to the user.
func UserMessage(err error) string {
	if errors.Is(err, ErrLibraryLoad) {
		return MessageLibraryLoad
	}
	return MessageRender
}
