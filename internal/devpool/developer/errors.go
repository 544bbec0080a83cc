package developer

import "github.com/tansive/devpool/internal/common/apperrors"

var (
	ErrDeveloperError   apperrors.Error = apperrors.New("developer error")
	ErrUnknownKind      apperrors.Error = ErrDeveloperError.New("unknown developer kind")
	ErrInvalidDeveloper apperrors.Error = ErrDeveloperError.New("invalid developer").SetExpandError(true)
	ErrNotImplemented   apperrors.Error = ErrDeveloperError.New("not implemented")
	ErrWriteFailed      apperrors.Error = ErrDeveloperError.New("unable to write output")
)
