//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"campus-hub/domain"
	"campus-hub/domain/mimetypes"
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type IMessageRepository interface {
	Append(message domain.Message) error
	Messages(course domain.CourseID) ([]domain.Message, error)
	Count(course domain.CourseID) (int, error)
	Clear() error
}

// MessageRepository keeps the chat log of every course in Badger.
type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// Append stores message at the end of its course log.
// Keys are "msg:{course}:{sequence}" with a 19-digit zero padded sequence
// taken from "seq:{course}" in the same transaction, so lexicographical key
// order is call order. Timestamps play no part in ordering.
func (m MessageRepository) Append(message domain.Message) error {
	record, err := fromMessage(message)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return m.db.Update(func(txn *badger.Txn) error {
		seqKey := []byte(fmt.Sprintf("seq:%s", message.CourseID))
		next, err := nextSequence(txn, seqKey)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("msg:%s:%019d", message.CourseID, next)
		if err = txn.Set([]byte(key), bytes); err != nil {
			return err
		}
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, next)
		return txn.Set(seqKey, buf)
	})
}

// Messages returns the log of course in call order. When a limit is
// configured only the most recent messages are returned.
func (m MessageRepository) Messages(course domain.CourseID) ([]domain.Message, error) {
	var raw [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", course))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest key below the seek key.
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(raw) == *m.limitMessages {
				m.log.Debug("Message limit reached", "course", course, "limit", *m.limitMessages)
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			raw = append(raw, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(raw))
	for _, b := range lo.Reverse(raw) {
		var record structpb.Struct
		if err = proto.Unmarshal(b, &record); err != nil {
			return nil, fmt.Errorf("unmarshal message: %w", err)
		}
		message, err := toMessage(&record)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// Count is the number of messages ever appended to course.
func (m MessageRepository) Count(course domain.CourseID) (int, error) {
	var count uint64
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fmt.Sprintf("seq:%s", course)))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			count = binary.BigEndian.Uint64(val)
			return nil
		})
	})
	return int(count), err
}

// Clear drops every course log. Used when the session ends.
func (m MessageRepository) Clear() error {
	return m.db.Update(func(txn *badger.Txn) error {
		for _, key := range collectKeys(txn, []byte("msg:"), []byte("seq:")) {
			if err := txn.Delete(key); err != nil {
				return fmt.Errorf("clear messages: %w", err)
			}
		}
		return nil
	})
}

func collectKeys(txn *badger.Txn, prefixes ...[]byte) [][]byte {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	var keys [][]byte
	for _, prefix := range prefixes {
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
	}
	return keys
}

func nextSequence(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	var current uint64
	err = item.Value(func(val []byte) error {
		current = binary.BigEndian.Uint64(val)
		return nil
	})
	return current + 1, err
}

func fromMessage(message domain.Message) (*structpb.Struct, error) {
	fields := map[string]any{
		"id":          message.ID.String(),
		"course_id":   string(message.CourseID),
		"sender_name": message.Sender.DisplayName(),
		"sender_type": string(message.SenderType),
		"text":        message.Text,
		"created_at":  message.CreatedAt.Format(time.RFC3339Nano),
	}
	if identity, ok := message.Sender.Identity(); ok {
		fields["sender_id"] = identity.ID
		fields["sender_email"] = identity.Email
		fields["sender_student_id"] = identity.StudentID
	}
	if message.Attachment != nil {
		fields["attachment"] = map[string]any{
			"name":        message.Attachment.Name,
			"kind":        string(message.Attachment.Kind),
			"preview_ref": message.Attachment.PreviewRef,
		}
	}
	record, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return record, nil
}

func toMessage(record *structpb.Struct) (domain.Message, error) {
	f := record.GetFields()
	id, err := uuid.Parse(f["id"].GetStringValue())
	if err != nil {
		return domain.Message{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, f["created_at"].GetStringValue())
	if err != nil {
		return domain.Message{}, err
	}

	sender := domain.GuestSender(f["sender_name"].GetStringValue())
	if _, ok := f["sender_id"]; ok {
		sender = domain.KnownSender(domain.Identity{
			ID:        f["sender_id"].GetStringValue(),
			Name:      f["sender_name"].GetStringValue(),
			Email:     f["sender_email"].GetStringValue(),
			StudentID: f["sender_student_id"].GetStringValue(),
		})
	}

	message := domain.Message{
		ID:         id,
		CourseID:   domain.CourseID(f["course_id"].GetStringValue()),
		Sender:     sender,
		SenderType: domain.SenderType(f["sender_type"].GetStringValue()),
		Text:       f["text"].GetStringValue(),
		CreatedAt:  createdAt,
	}
	if a := f["attachment"].GetStructValue(); a != nil {
		af := a.GetFields()
		message.Attachment = &domain.Attachment{
			Name:       af["name"].GetStringValue(),
			Kind:       mimetypes.Kind(af["kind"].GetStringValue()),
			PreviewRef: af["preview_ref"].GetStringValue(),
		}
	}
	return message, nil
}
