// Package uuid binds UUIDs from query strings and path parameters.
//
// gin does not support form binding to google/uuid, UUID implements
// gin's BindUnmarshaler instead.
package uuid

import (
	"errors"
	"fmt"
	"strings"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

// UnmarshalParam parses a UUID. An empty parameter is the nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	p = strings.TrimSpace(p)
	if p == "" {
		*u = UUID{}
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalid, p)
	}

	*u = UUID{parsed}
	return nil
}

// Ptr returns a pointer to the UUID, or nil for the nil UUID.
func (u UUID) Ptr() *google_uuid.UUID {
	if u.UUID == google_uuid.Nil {
		return nil
	}

	id := u.UUID
	return &id
}
