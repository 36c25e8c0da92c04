package header

const (
	StatusOK       = "200 OK"
	StatusNotFound = "404 NOT FOUND"
)

// ResponseStatus is the status line sent back to the client.
type ResponseStatus struct {
	Version string
	Status  string
}

func (rs ResponseStatus) String() string {
	return rs.Version + " " + rs.Status
}
