package apperrors

// Error is a chainable application error. Errors derived with New from a
// parent error satisfy errors.Is against every ancestor, and errors attached
// with Err or MsgErr are reachable through Unwrap.
type Error interface {
	Error() string
	ErrorAll() string
	New(msg string) Error
	MsgErr(msg string, err ...error) Error
	Msg(msg string) Error
	Prefix(prefix string) Error
	Suffix(suffix string) Error
	Err(err ...error) Error
	Unwrap() []error
	Is(target error) bool
	SetExpandError(expand bool) Error
}
