package developer

import (
	"fmt"
	"io"

	"github.com/tansive/devpool/internal/common/apperrors"
)

// OtherDeveloperName is the fixed name carried by OtherDeveloper.
const OtherDeveloperName = "anonymous"

// Developer is the closed family of developer variants. The unexported
// marker method keeps implementations inside this package, so a type switch
// over Backend, Frontend, Android and Other covers every value.
type Developer interface {
	Name() string
	Kind() Kind
	// Code writes a role specific sentence to w.
	Code(w io.Writer, language string) apperrors.Error
	isDeveloper()
}

type Backend struct {
	name string
}

type Frontend struct {
	name string
}

type Android struct {
	name string
}

// Other stands for every developer the family does not name. Its Code is a
// placeholder and always fails with ErrNotImplemented.
type Other struct{}

// OtherDeveloper is the only value of Other.
var OtherDeveloper = Other{}

var (
	_ Developer = Backend{}
	_ Developer = Frontend{}
	_ Developer = Android{}
	_ Developer = Other{}
)

// NewBackend, NewFrontend and NewAndroid do not check the name. Use New, or
// Validate on the result, when the name comes from user input.
func NewBackend(name string) Backend   { return Backend{name: name} }
func NewFrontend(name string) Frontend { return Frontend{name: name} }
func NewAndroid(name string) Android   { return Android{name: name} }

func (d Backend) Name() string  { return d.name }
func (d Frontend) Name() string { return d.name }
func (d Android) Name() string  { return d.name }
func (Other) Name() string      { return OtherDeveloperName }

func (Backend) Kind() Kind  { return KindBackend }
func (Frontend) Kind() Kind { return KindFrontend }
func (Android) Kind() Kind  { return KindAndroid }
func (Other) Kind() Kind    { return KindOther }

func (Backend) isDeveloper()  {}
func (Frontend) isDeveloper() {}
func (Android) isDeveloper()  {}
func (Other) isDeveloper()    {}

func (d Backend) Code(w io.Writer, language string) apperrors.Error {
	return say(w, "I am backend developer %s and I code in %s.", d.name, language)
}

func (d Frontend) Code(w io.Writer, language string) apperrors.Error {
	return say(w, "I am frontend developer %s and I code in %s.", d.name, language)
}

func (d Android) Code(w io.Writer, language string) apperrors.Error {
	return say(w, "I am Android developer %s and I code in %s.", d.name, language)
}

func (Other) Code(io.Writer, string) apperrors.Error {
	return ErrNotImplemented.Msg("code is not implemented for " + string(KindOther) + " developers")
}

func (d Backend) String() string  { return describe(d) }
func (d Frontend) String() string { return describe(d) }
func (d Android) String() string  { return describe(d) }
func (d Other) String() string    { return describe(d) }

func describe(d Developer) string {
	return fmt.Sprintf("%s(name=%s)", d.Kind(), d.Name())
}

func say(w io.Writer, format, name, language string) apperrors.Error {
	if _, err := fmt.Fprintf(w, format+"\n", name, language); err != nil {
		return ErrWriteFailed.Err(err)
	}
	return nil
}
