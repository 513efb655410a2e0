package services

import (
	"campus-hub/domain"
	"campus-hub/errors"
	"campus-hub/repositories"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

// ProfileSavedMessage is shown when an edit is saved. Nothing is stored.
const ProfileSavedMessage = "Profile update mocked. In a real app, this would save to a backend."

type IProfileService interface {
	Profile() (domain.Identity, error)
	ListedItems() ([]domain.Product, error)
	Edit() (domain.ProfileDraft, error)
	EditDraft() (domain.ProfileDraft, bool)
	SetDisplayName(name string) error
	SetContactEmail(email string) error
	CancelEdit()
	SaveEdit() (string, error)
}

// ProfileService is a read-only view over the session identity. Its edit
// form is a mock: saving never changes the identity.
type ProfileService struct {
	log     *slog.Logger
	session ISession
	catalog repositories.ICatalogRepository

	mu      sync.Mutex
	editing bool
	draft   domain.ProfileDraft
}

func NewProfileService(log *slog.Logger, session ISession, catalog repositories.ICatalogRepository) *ProfileService {
	s := &ProfileService{log: log, session: session, catalog: catalog}
	session.OnLogout(s.CancelEdit)
	return s
}

func (s *ProfileService) Profile() (domain.Identity, error) {
	return s.session.Require()
}

// ListedItems are the catalog products sold by the session user.
func (s *ProfileService) ListedItems() ([]domain.Product, error) {
	identity, err := s.session.Require()
	if err != nil {
		return nil, err
	}
	return lo.Filter(s.catalog.Products(), func(p domain.Product, _ int) bool {
		return p.Seller.Email == identity.Email
	}), nil
}

// Edit opens the form with the current name and email. An open form is
// reset to the identity.
func (s *ProfileService) Edit() (domain.ProfileDraft, error) {
	identity, err := s.session.Require()
	if err != nil {
		return domain.ProfileDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.draft = domain.ProfileDraft{DisplayName: identity.Name, ContactEmail: identity.Email}
	return s.draft, nil
}

func (s *ProfileService) EditDraft() (domain.ProfileDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, s.editing
}

func (s *ProfileService) SetDisplayName(name string) error {
	return s.update(func(d *domain.ProfileDraft) { d.DisplayName = name })
}

func (s *ProfileService) SetContactEmail(email string) error {
	return s.update(func(d *domain.ProfileDraft) { d.ContactEmail = email })
}

// CancelEdit closes the form and drops its content.
func (s *ProfileService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.draft = domain.ProfileDraft{}
}

// SaveEdit logs the form and closes it.
func (s *ProfileService) SaveEdit() (string, error) {
	identity, err := s.session.Require()
	if err != nil {
		return "", err
	}
	draft, editing := s.EditDraft()
	if !editing {
		return "", errors.ErrNotEditing
	}
	s.log.Info("Profile update mocked",
		"student_id", identity.StudentID,
		"display_name", draft.DisplayName,
		"contact_email", draft.ContactEmail)
	s.CancelEdit()
	return ProfileSavedMessage, nil
}

func (s *ProfileService) update(fn func(d *domain.ProfileDraft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return errors.ErrNotEditing
	}
	fn(&s.draft)
	return nil
}
