package consts

const (
	MessageNotFound         = "nothing to see here"
	MessageRequestTimeout   = "request timed out"
	MessageOverloaded       = "service is overloaded, try again later"
	MessageInternalErrorFmt = "unhandled internal error: %s"
)
