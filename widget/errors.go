package widget

// OversizeError reports a rejected batch. Message carries the host-configured
// errorSizeExceeded text, FileName the first offending file.
type OversizeError struct {
	FileName string
	Message  string
}

func (e *OversizeError) Error() string {
	return e.Message
}
