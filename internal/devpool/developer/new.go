package developer

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/tansive/devpool/internal/common/apperrors"
)

const nameMaxLength = 63

type constructor func(name string) Developer

// One entry per kind.
var constructors = map[Kind]constructor{
	KindBackend:  func(name string) Developer { return NewBackend(name) },
	KindFrontend: func(name string) Developer { return NewFrontend(name) },
	KindAndroid:  func(name string) Developer { return NewAndroid(name) },
	KindOther:    func(string) Developer { return OtherDeveloper },
}

type namedSpec struct {
	Name string `validate:"required,developerName"`
}

type otherSpec struct {
	Name string `validate:"omitempty,otherDeveloperName"`
}

// New builds a developer of the given kind after validating the name. The
// name of an Other developer may be left empty.
func New(kind Kind, name string) (Developer, apperrors.Error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, ErrUnknownKind.Msg("unknown developer kind: " + string(kind))
	}
	if err := validateName(kind, name); err != nil {
		return nil, err
	}
	return ctor(name), nil
}

// Validate applies the name checks of New to an already built developer.
// NewBackend, NewFrontend, NewAndroid and the zero values are not checked
// until then.
func Validate(d Developer) apperrors.Error {
	if d == nil {
		return ErrInvalidDeveloper.Msg("developer is nil")
	}
	return validateName(d.Kind(), d.Name())
}

func validateName(kind Kind, name string) apperrors.Error {
	var spec any = &namedSpec{Name: name}
	if kind == KindOther {
		spec = &otherSpec{Name: name}
	}
	if err := V().Struct(spec); err != nil {
		return validationError(kind, name, err)
	}
	return nil
}

func validationError(kind Kind, name string, err error) apperrors.Error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return ErrInvalidDeveloper.Err(err)
	}
	var reason string
	switch verrs[0].Tag() {
	case "required":
		reason = "name is required"
	case "developerName":
		reason = "invalid name format: " + name
	case "otherDeveloperName":
		reason = "name of an " + string(KindOther) + " developer must be empty or " + OtherDeveloperName
	default:
		reason = "validation failed on " + verrs[0].Tag()
	}
	return ErrInvalidDeveloper.MsgErr(string(kind)+" developer: "+reason, err)
}

// developerNameValidator accepts printable names of at most nameMaxLength
// runes without surrounding whitespace.
func developerNameValidator(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) > nameMaxLength {
		return false
	}
	if strings.TrimSpace(s) != s {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func otherDeveloperNameValidator(fl validator.FieldLevel) bool {
	return fl.Field().String() == OtherDeveloperName
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// V returns the validator shared by the developer package.
func V() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("developerName", developerNameValidator)
		validate.RegisterValidation("otherDeveloperName", otherDeveloperNameValidator)
	})
	return validate
}
