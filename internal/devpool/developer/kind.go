package developer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tansive/devpool/internal/common/apperrors"
	"github.com/tansive/devpool/pkg/types"
)

type Kind string

const (
	KindBackend  Kind = types.BackendKind
	KindFrontend Kind = types.FrontendKind
	KindAndroid  Kind = types.AndroidKind
	KindOther    Kind = types.OtherKind
)

var kinds = []Kind{KindBackend, KindFrontend, KindAndroid, KindOther}

// Kinds returns the closed set of developer kinds in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind resolves a kind name regardless of letter case.
func ParseKind(s string) (Kind, apperrors.Error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrUnknownKind.Msg("developer kind is empty")
	}
	k := Kind(cases.Title(language.Und).String(strings.ToLower(s)))
	if !k.IsValid() {
		return "", ErrUnknownKind.Msg("unknown developer kind: " + s)
	}
	return k, nil
}
