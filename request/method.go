package request

// Method is the closed set of HTTP verbs a [Request] may use.
type Method string

const (
	MethodPut    Method = "PUT"
	MethodPost   Method = "POST"
	MethodGet    Method = "GET"
	MethodDelete Method = "DELETE"
	MethodHead   Method = "HEAD"
)

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case MethodPut, MethodPost, MethodGet, MethodDelete, MethodHead:
		return true
	default:
		return false
	}
}

func (m Method) String() string { return string(m) }
