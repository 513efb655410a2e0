package domain

import (
	"time"
)

type Command interface {
	Course() CourseID
}

type PostMessageCommand struct {
	CourseID   CourseID
	Sender     Sender
	SenderType SenderType
	Text       string
	Attachment *Attachment
	CreatedAt  time.Time
}

func (p PostMessageCommand) Course() CourseID {
	return p.CourseID
}
