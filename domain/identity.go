// Package domain contains the core concepts of the campus portal.
// No runtime, storage, or UI logic should be added here.
package domain

// Identity is the authenticated student for the lifetime of a session.
// ID and StudentID are the same value.
type Identity struct {
	ID        string
	Name      string
	Email     string
	StudentID string
}

func NewIdentity(studentID, email, name string) Identity {
	return Identity{
		ID:        studentID,
		Name:      name,
		Email:     email,
		StudentID: studentID,
	}
}

type senderKind int

const (
	guestSender senderKind = iota
	knownSender
)

// Sender is either a known Identity or a guest known only by display name.
type Sender struct {
	kind     senderKind
	identity Identity
	name     string
}

func KnownSender(identity Identity) Sender {
	return Sender{kind: knownSender, identity: identity, name: identity.Name}
}

func GuestSender(name string) Sender {
	return Sender{kind: guestSender, name: name}
}

// Identity returns the sender identity when it is known.
func (s Sender) Identity() (Identity, bool) {
	return s.identity, s.kind == knownSender
}

func (s Sender) IsKnown() bool {
	return s.kind == knownSender
}

func (s Sender) DisplayName() string {
	return s.name
}
