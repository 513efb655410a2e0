package services

import (
	"campus-hub/auth"
	"campus-hub/contract"
	"campus-hub/domain"
	"campus-hub/domain/event"
	"campus-hub/repositories"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OtherCategory is offered on top of the catalog categories.
const OtherCategory = "Other"

type IListingService interface {
	SetName(name string)
	SetDescription(description string)
	SetPrice(price string)
	SetCategory(category string)
	SetImage(file domain.FileDescriptor) string
	Draft() domain.ListingDraft
	Categories() []string
	Submit() (string, error)
}

// ListingService is the sell-item form. A submission is logged and
// announced but never added to the catalog.
type ListingService struct {
	log     *slog.Logger
	clock   contract.Clock
	sink    contract.EventSink
	session ISession
	catalog repositories.ICatalogRepository
	delay   time.Duration
	sleep   func(time.Duration)

	mu    sync.Mutex
	draft domain.ListingDraft
}

func NewListingService(
	log *slog.Logger,
	clock contract.Clock,
	sink contract.EventSink,
	session ISession,
	catalog repositories.ICatalogRepository,
	delay time.Duration,
) *ListingService {
	s := &ListingService{
		log:     log,
		clock:   clock,
		sink:    sink,
		session: session,
		catalog: catalog,
		delay:   delay,
		sleep:   time.Sleep,
	}
	session.OnLogout(s.clear)
	return s
}

func (s *ListingService) SetName(name string) {
	s.update(func(d *domain.ListingDraft) { d.Name = name })
}

func (s *ListingService) SetDescription(description string) {
	s.update(func(d *domain.ListingDraft) { d.Description = description })
}

func (s *ListingService) SetPrice(price string) {
	s.update(func(d *domain.ListingDraft) { d.Price = price })
}

func (s *ListingService) SetCategory(category string) {
	s.update(func(d *domain.ListingDraft) { d.Category = category })
}

// SetImage attaches the item picture and returns its local preview, empty
// when the file is not an image.
func (s *ListingService) SetImage(file domain.FileDescriptor) string {
	preview := file.Attachment().PreviewRef
	s.update(func(d *domain.ListingDraft) {
		d.Image = &file
		d.PreviewRef = preview
	})
	return preview
}

func (s *ListingService) Draft() domain.ListingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *ListingService) Categories() []string {
	return append(s.catalog.Categories(), OtherCategory)
}

// Submit validates the form, waits the simulated upload and clears the form.
// It returns the confirmation shown to the seller.
func (s *ListingService) Submit() (string, error) {
	identity, err := s.session.Require()
	if err != nil {
		return "", err
	}
	draft := s.Draft()
	price, err := auth.ValidateListing(draft)
	if err != nil {
		return "", err
	}

	s.sleep(s.delay)

	listing := domain.Listing{
		ID:          uuid.New(),
		SellerID:    identity.ID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       price,
		Category:    draft.Category,
		ImageName:   draft.Image.Name,
		SubmittedAt: s.clock.Now(),
	}
	s.log.Info("Item listed",
		"listing", listing.ID,
		"seller", listing.SellerID,
		"name", listing.Name,
		"price", listing.Price.StringFixed(2),
		"category", listing.Category,
		"image", listing.ImageName)
	publish(s.log, s.sink, event.ItemListed{
		ListingID: listing.ID,
		SellerID:  listing.SellerID,
		ItemName:  listing.Name,
		At:        listing.SubmittedAt,
	})
	s.clear()
	return fmt.Sprintf("Item %q listed successfully! It will appear in the marketplace shortly.", listing.Name), nil
}

func (s *ListingService) update(fn func(d *domain.ListingDraft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.draft)
}

func (s *ListingService) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = domain.ListingDraft{}
}
