package request

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDescription = errors.New("request description cannot be empty")

// Request is a want-ad: a user describes an item they are looking for and
// other users may list items answering it.
type Request struct {
	id          int64
	requestorID int64
	description string
	created     time.Time
}

func NewRequest(requestorID int64, description string, created time.Time) (*Request, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Request{
		requestorID: requestorID,
		description: description,
		created:     created,
	}, nil
}

func Reconstruct(id, requestorID int64, description string, created time.Time) *Request {
	return &Request{
		id:          id,
		requestorID: requestorID,
		description: description,
		created:     created,
	}
}

func (r *Request) ID() int64           { return r.id }
func (r *Request) RequestorID() int64  { return r.requestorID }
func (r *Request) Description() string { return r.description }
func (r *Request) Created() time.Time  { return r.created }
