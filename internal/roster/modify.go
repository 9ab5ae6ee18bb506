package roster

import (
	"net/http"
)

// RequestModifier Modifies the outgoing request in place before it is sent
type RequestModifier interface {
	Modify(req *http.Request) error
}

type UserAgentModifier struct {
	UserAgent string
}

func (m UserAgentModifier) Modify(req *http.Request) error {
	if m.UserAgent != "" {
		req.Header.Set("User-Agent", m.UserAgent)
	}
	return nil
}

// HeaderModifier Sets static headers, overwriting any default values
type HeaderModifier struct {
	Header map[string]string
}

func (m HeaderModifier) Modify(req *http.Request) error {
	for key, value := range m.Header {
		req.Header.Set(key, value)
	}
	return nil
}
