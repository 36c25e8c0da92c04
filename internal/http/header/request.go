package header

import "fmt"

type RequestLine struct {
	Method  Method
	Path    string
	Version string
}

type Host struct {
	Address string
}

type AcceptLanguage struct {
	Lang string
}

func (RequestLine) header()    {}
func (Host) header()           {}
func (AcceptLanguage) header() {}

func (rl RequestLine) String() string {
	return fmt.Sprintf("%s{path: %q, version: %q}", rl.Method, rl.Path, rl.Version)
}

func (h Host) String() string {
	return fmt.Sprintf("Host{address: %q}", h.Address)
}

func (al AcceptLanguage) String() string {
	return fmt.Sprintf("AcceptLanguage{lang: %q}", al.Lang)
}
