package warnings

const (
	// ServiceName is the DI/service locator name for the warning subsystem.
	ServiceName = "warnings"
	emptyString = ""
)

const (
	// DefaultName is the category applied when the caller names none.
	DefaultName = "Warning"
	// DeprecationName is the category subject to dedup, suppression and escalation.
	DeprecationName = "DeprecationWarning"

	// errorName is the category given to adopted errors that carry no name.
	errorName = "Error"

	defaultQueueSize = 256
	maxChainDepth    = 50
)

const (
	errMsgNilConfig     = "Warning config is nil."
	errMsgNilSubsystem  = "Warning subsystem is nil."
	errMsgConfigInvalid = "Warning configuration is invalid."
	errMsgConfigLoad    = "Warning configuration could not be loaded."
	errMsgExecName      = "Executable name could not be resolved."
)
