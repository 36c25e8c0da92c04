package header

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

const (
	hostField           = "HOST"
	acceptLanguageField = "ACCEPT-LANGUAGE"
	versionPrefix       = "HTTP"
	minRequestTokens    = 3
)

// Parse classifies a single raw line. The second return value is false when
// the line is malformed or not one of the recognized kinds.
func Parse(line string) (Header, bool) {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, string(MethodGET)):
		return parseRequestLine(line, MethodGET)
	case strings.HasPrefix(line, string(MethodPOST)):
		return parseRequestLine(line, MethodPOST)
	case hasFieldPrefix(line, hostField):
		value, ok := parseField(line, hostField)
		if !ok {
			return nil, false
		}
		return Host{Address: value}, true
	case hasFieldPrefix(line, acceptLanguageField):
		value, ok := parseField(line, acceptLanguageField)
		if !ok {
			return nil, false
		}
		return AcceptLanguage{Lang: value}, true
	default:
		return nil, false
	}
}

// parseRequestLine glues every token that is neither the method nor the
// version into the path, so "/a  b" becomes "/ab".
func parseRequestLine(line string, method Method) (Header, bool) {
	tokens := strings.Split(line, " ")
	if len(tokens) < minRequestTokens {
		return nil, false
	}

	var (
		path       strings.Builder
		version    string
		hasVersion bool
	)
	for _, token := range tokens {
		switch {
		case token == "":
			continue
		case token == string(method):
			continue
		case !hasVersion && strings.HasPrefix(token, versionPrefix):
			version, _, _ = strings.Cut(token, "\r\n")
			hasVersion = true
		default:
			path.WriteString(token)
		}
	}

	return RequestLine{
		Method:  method,
		Path:    path.String(),
		Version: version,
	}, true
}

func hasFieldPrefix(line, field string) bool {
	n := len(field) + 1
	return len(line) >= n && line[n-1] == ':' && strcomp.EqualFold(line[:n-1], field)
}

func parseField(line, field string) (string, bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", false
	}
	if !strcomp.EqualFold(strings.TrimSpace(key), field) {
		return "", false
	}
	return strings.TrimSpace(value), true
}
