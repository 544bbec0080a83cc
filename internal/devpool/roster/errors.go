package roster

import "github.com/tansive/devpool/internal/common/apperrors"

var (
	ErrRosterError   apperrors.Error = apperrors.New("error in processing roster")
	ErrInvalidRoster apperrors.Error = ErrRosterError.New("invalid roster").SetExpandError(true)
	ErrRosterRead    apperrors.Error = ErrRosterError.New("unable to read roster").SetExpandError(true)
)
