package domain

import (
	"campus-hub/domain/mimetypes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Room is the chat of a single course.
type Room struct {
	Course Course
}

func NewRoom(course Course) *Room {
	return &Room{Course: course}
}

// PostMessage turns a command into a Message. It reports false when there is
// nothing to send: blank text and no attachment.
func (r *Room) PostMessage(cmd PostMessageCommand) (Message, bool) {
	if strings.TrimSpace(cmd.Text) == "" && cmd.Attachment == nil {
		return Message{}, false
	}
	return Message{
		ID:         uuid.New(),
		CourseID:   r.Course.ID,
		Sender:     cmd.Sender,
		SenderType: cmd.SenderType,
		Text:       cmd.Text,
		CreatedAt:  cmd.CreatedAt,
		Attachment: cmd.Attachment,
	}, true
}

// SeedMessages is the sample conversation shown when a course is opened.
func (r *Room) SeedMessages(self Identity, now time.Time) []Message {
	seed := []PostMessageCommand{
		{
			Sender:     GuestSender("Alice"),
			SenderType: SenderOther,
			Text:       fmt.Sprintf("Hello everyone in %s!", r.Course.Name),
			CreatedAt:  now.Add(-5 * time.Minute),
		},
		{
			Sender:     GuestSender("Bob"),
			SenderType: SenderOther,
			Text:       "Hi Alice! Ready for the quiz?",
			CreatedAt:  now.Add(-4 * time.Minute),
		},
		{
			Sender:     KnownSender(self),
			SenderType: SenderSelf,
			Text:       "Hey Bob, yeah, been studying!",
			CreatedAt:  now.Add(-3 * time.Minute),
			Attachment: &Attachment{Name: "study_notes.pdf", Kind: mimetypes.KindFile},
		},
	}
	messages := make([]Message, 0, len(seed))
	for _, cmd := range seed {
		if m, ok := r.PostMessage(cmd); ok {
			messages = append(messages, m)
		}
	}
	return messages
}
