// Package domain contains core concepts of the portal.
// This file defines chat Messages.
// Messages are immutable once created.
package domain

import (
	"campus-hub/domain/mimetypes"
	"time"

	"github.com/google/uuid"
)

type SenderType string

const (
	SenderSelf  SenderType = "self"
	SenderOther SenderType = "other"
)

type Attachment struct {
	Name       string
	Kind       mimetypes.Kind
	PreviewRef string
}

// Message represents an immutable chat event in a course.
type Message struct {
	ID         uuid.UUID
	CourseID   CourseID
	Sender     Sender
	SenderType SenderType
	Text       string
	CreatedAt  time.Time
	Attachment *Attachment
}

func (m Message) HasAttachment() bool {
	return m.Attachment != nil
}
