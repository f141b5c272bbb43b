package comment

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyText   = errors.New("comment text cannot be empty")
	ErrTextTooLong = errors.New("comment text exceeds maximum length")
)

const MaxTextLength = 1000

type Comment struct {
	id       int64
	itemID   int64
	authorID int64
	text     string
	created  time.Time
}

func NewComment(itemID, authorID int64, text string, created time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}
	return &Comment{
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}, nil
}

func Reconstruct(id, itemID, authorID int64, text string, created time.Time) *Comment {
	return &Comment{
		id:       id,
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) Created() time.Time { return c.created }
