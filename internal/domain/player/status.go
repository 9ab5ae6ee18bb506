//go:generate go tool stringer -type=Status
package player

import (
	"fmt"
	"strings"
)

type Status int

const (
	Unknown Status = 0
	Bench   Status = 1
	Field   Status = 2
)

//goland:noinspection GoMixedReceiverTypes
func (s *Status) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = Unknown
		return nil
	}

	str := string(text)
	if strings.EqualFold(str, Bench.String()) {
		*s = Bench
	} else if strings.EqualFold(str, Field.String()) {
		*s = Field
	} else {
		return fmt.Errorf("invalid status: %s", str)
	}

	return nil
}

// MarshalText Statuses are lower case on the wire, with unknown being an empty string
//
//goland:noinspection GoMixedReceiverTypes
func (s Status) MarshalText() (text []byte, err error) {
	if s == Unknown {
		return []byte{}, nil
	}
	return []byte(strings.ToLower(s.String())), nil
}

// OrDefault Players are benched unless told otherwise
//
//goland:noinspection GoMixedReceiverTypes
func (s Status) OrDefault() Status {
	if s == Unknown {
		return Bench
	}
	return s
}
