package header

type Method string

const (
	MethodGET  Method = "GET"
	MethodPOST Method = "POST"
)

// Header is one parsed line of a request: a RequestLine, a Host or an
// AcceptLanguage.
type Header interface {
	String() string
	header()
}
