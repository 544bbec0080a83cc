package types

// Developer kinds. The set is closed: a new kind must be added here, to the
// developer package and to every dispatch over kinds.
const (
	BackendKind  = "Backend"
	FrontendKind = "Frontend"
	AndroidKind  = "Android"
	OtherKind    = "Other"
)

const RosterVersionV1 = "v1"

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)
