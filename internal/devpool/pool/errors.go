package pool

import (
	"github.com/tansive/devpool/internal/common/apperrors"
	"github.com/tansive/devpool/internal/devpool/developer"
)

var (
	ErrPoolError        apperrors.Error = apperrors.New("error in developer pool")
	ErrUnsupportedKind  apperrors.Error = ErrPoolError.New("unsupported developer kind")
	ErrInvalidDeveloper apperrors.Error = developer.ErrInvalidDeveloper.New("nil developer")
)
