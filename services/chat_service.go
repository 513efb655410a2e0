package services

import (
	"campus-hub/contract"
	"campus-hub/domain"
	"campus-hub/domain/event"
	"campus-hub/errors"
	"campus-hub/moderation"
	"campus-hub/repositories"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// invalidRune replaces malformed UTF-8 so every message can be stored.
const invalidRune = "\uFFFD"

type IChatService interface {
	Courses() []domain.Course
	SelectCourse(courseID domain.CourseID) (domain.Course, error)
	Navigate(courseID domain.CourseID) (domain.Course, bool)
	Selected() (domain.Course, bool)
	ComposeAndSend(text string, file *domain.FileDescriptor) (*domain.Message, error)
	AttachFile(file domain.FileDescriptor) (domain.Message, error)
	SetDraft(text string)
	Draft() string
	SendDraft() (*domain.Message, error)
	Messages() ([]domain.Message, error)
}

// ChatService is the chat state of one session: the selected course, the
// composition buffer and the message log of every opened course.
type ChatService struct {
	log       *slog.Logger
	clock     contract.Clock
	sink      contract.EventSink
	session   ISession
	catalog   repositories.ICatalogRepository
	messages  repositories.IMessageRepository
	moderator *moderation.Moderator

	mu       sync.Mutex
	selected *domain.Room
	seeded   map[domain.CourseID]bool
	draft    string
}

func NewChatService(
	log *slog.Logger,
	clock contract.Clock,
	sink contract.EventSink,
	session ISession,
	catalog repositories.ICatalogRepository,
	messages repositories.IMessageRepository,
	moderator *moderation.Moderator,
) *ChatService {
	s := &ChatService{
		log:       log,
		clock:     clock,
		sink:      sink,
		session:   session,
		catalog:   catalog,
		messages:  messages,
		moderator: moderator,
		seeded:    make(map[domain.CourseID]bool),
	}
	session.OnLogout(s.reset)
	return s
}

func (s *ChatService) Courses() []domain.Course {
	return s.catalog.Courses()
}

// SelectCourse opens the chat of courseID.
func (s *ChatService) SelectCourse(courseID domain.CourseID) (domain.Course, error) {
	identity, err := s.session.Require()
	if err != nil {
		return domain.Course{}, err
	}
	course, err := s.catalog.Course(courseID)
	if err != nil {
		return domain.Course{}, err
	}
	if err = s.open(course, identity); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

// Navigate follows the optional course parameter. An empty or unknown id
// falls back to the default course; false means there is nothing to show.
func (s *ChatService) Navigate(courseID domain.CourseID) (domain.Course, bool) {
	if courseID != "" {
		course, err := s.SelectCourse(courseID)
		if err == nil {
			return course, true
		}
		s.log.Debug("Course selection failed, using default", "course", courseID, "error", err)
	}
	fallback, ok := domain.ResolveDefaultCourse(s.catalog.Courses())
	if !ok {
		return domain.Course{}, false
	}
	course, err := s.SelectCourse(fallback.ID)
	if err != nil {
		return domain.Course{}, false
	}
	return course, true
}

func (s *ChatService) Selected() (domain.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.Course{}, false
	}
	return s.selected.Course, true
}

// ComposeAndSend appends a message from the session user to the selected
// course. Blank text without a file sends nothing and returns nil.
func (s *ChatService) ComposeAndSend(text string, file *domain.FileDescriptor) (*domain.Message, error) {
	var attachment *domain.Attachment
	if file != nil {
		a := file.Attachment()
		attachment = &a
	}
	return s.post(text, attachment)
}

// AttachFile always appends exactly one message describing file.
func (s *ChatService) AttachFile(file domain.FileDescriptor) (domain.Message, error) {
	attachment := file.Attachment()
	message, err := s.post(fmt.Sprintf("Attached: %s", file.Name), &attachment)
	if err != nil {
		return domain.Message{}, err
	}
	return *message, nil
}

func (s *ChatService) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
}

func (s *ChatService) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SendDraft sends the composition buffer and clears it once sent.
func (s *ChatService) SendDraft() (*domain.Message, error) {
	message, err := s.ComposeAndSend(s.Draft(), nil)
	if err != nil || message == nil {
		return message, err
	}
	s.SetDraft("")
	return message, nil
}

// Messages is the log of the selected course, in send order.
func (s *ChatService) Messages() ([]domain.Message, error) {
	if _, err := s.session.Require(); err != nil {
		return nil, err
	}
	course, ok := s.Selected()
	if !ok {
		return nil, errors.ErrNoCourseSelected
	}
	return s.messages.Messages(course.ID)
}

func (s *ChatService) post(text string, attachment *domain.Attachment) (*domain.Message, error) {
	identity, err := s.session.Require()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	room := s.selected
	s.mu.Unlock()
	if room == nil {
		return nil, errors.ErrNoCourseSelected
	}

	if attachment != nil {
		cleaned := *attachment
		cleaned.Name = strings.ToValidUTF8(cleaned.Name, invalidRune)
		attachment = &cleaned
	}
	message, ok := room.PostMessage(domain.PostMessageCommand{
		CourseID:   room.Course.ID,
		Sender:     domain.KnownSender(identity),
		SenderType: domain.SenderSelf,
		Text:       s.moderator.Censor(strings.ToValidUTF8(text, invalidRune)),
		Attachment: attachment,
		CreatedAt:  s.clock.Now(),
	})
	if !ok {
		return nil, nil
	}
	if err = s.messages.Append(message); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	publish(s.log, s.sink, event.MessagePosted{
		ID:       message.ID,
		CourseID: message.CourseID,
		Author:   identity.Name,
		Content:  message.Text,
		At:       message.CreatedAt,
	})
	return &message, nil
}

// open selects course and seeds its sample conversation the first time it
// is opened in this session.
func (s *ChatService) open(course domain.Course, identity domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room := domain.NewRoom(course)
	s.selected = room
	if s.seeded[course.ID] {
		return nil
	}
	for _, message := range room.SeedMessages(identity, s.clock.Now()) {
		if err := s.messages.Append(message); err != nil {
			return fmt.Errorf("seed course %s: %w", course.ID, err)
		}
	}
	s.seeded[course.ID] = true
	s.log.Debug("Course opened", "course", course.ID)
	return nil
}

func (s *ChatService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.draft = ""
	s.seeded = make(map[domain.CourseID]bool)
	if err := s.messages.Clear(); err != nil {
		s.log.Error("Failed to clear chat history", "error", err)
	}
}

