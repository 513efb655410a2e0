package services

import (
	"campus-hub/auth"
	"campus-hub/contract"
	"campus-hub/domain"
	"campus-hub/domain/event"
	"campus-hub/errors"
	"campus-hub/repositories"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ICartService interface {
	AddToCart(productID domain.ProductID) ([]domain.CartLine, error)
	SetQuantity(productID domain.ProductID, quantity int) ([]domain.CartLine, error)
	RemoveFromCart(productID domain.ProductID) ([]domain.CartLine, error)
	Lines() ([]domain.CartLine, error)
	Total() (decimal.Decimal, error)
	ItemCount() (int, error)
	Checkout(method domain.PaymentMethod, details domain.PaymentDetails) (domain.Receipt, error)
}

// CartService is the cart of the session user and its checkout step.
type CartService struct {
	log     *slog.Logger
	clock   contract.Clock
	sink    contract.EventSink
	session ISession
	catalog repositories.ICatalogRepository

	mu   sync.Mutex
	cart *domain.Cart
}

func NewCartService(
	log *slog.Logger,
	clock contract.Clock,
	sink contract.EventSink,
	session ISession,
	catalog repositories.ICatalogRepository,
) *CartService {
	s := &CartService{
		log:     log,
		clock:   clock,
		sink:    sink,
		session: session,
		catalog: catalog,
		cart:    domain.NewCart(),
	}
	session.OnLogout(s.reset)
	return s
}

func (s *CartService) AddToCart(productID domain.ProductID) ([]domain.CartLine, error) {
	if _, err := s.session.Require(); err != nil {
		return nil, err
	}
	product, err := s.catalog.Product(productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	lines := s.cart.Add(product)
	s.mu.Unlock()

	quantity := 0
	for _, l := range lines {
		if l.Product.ID == productID {
			quantity = l.Quantity
		}
	}
	publish(s.log, s.sink, event.AddedToCart{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		At:          s.clock.Now(),
	})
	return lines, nil
}

func (s *CartService) SetQuantity(productID domain.ProductID, quantity int) ([]domain.CartLine, error) {
	return s.withCart(func(c *domain.Cart) []domain.CartLine {
		return c.SetQuantity(productID, quantity)
	})
}

func (s *CartService) RemoveFromCart(productID domain.ProductID) ([]domain.CartLine, error) {
	return s.withCart(func(c *domain.Cart) []domain.CartLine {
		return c.Remove(productID)
	})
}

func (s *CartService) Lines() ([]domain.CartLine, error) {
	return s.withCart(func(c *domain.Cart) []domain.CartLine {
		return c.Lines()
	})
}

func (s *CartService) Total() (decimal.Decimal, error) {
	if _, err := s.session.Require(); err != nil {
		return decimal.Zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total(), nil
}

func (s *CartService) ItemCount() (int, error) {
	if _, err := s.session.Require(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount(), nil
}

// Checkout validates the payment details, confirms the mock payment and
// empties the cart. Nothing changes when validation fails.
func (s *CartService) Checkout(method domain.PaymentMethod, details domain.PaymentDetails) (domain.Receipt, error) {
	identity, err := s.session.Require()
	if err != nil {
		return domain.Receipt{}, err
	}
	if err = auth.ValidatePayment(method, details); err != nil {
		return domain.Receipt{}, err
	}

	s.mu.Lock()
	if s.cart.IsEmpty() {
		s.mu.Unlock()
		return domain.Receipt{}, errors.ErrEmptyCart
	}
	receipt := domain.Receipt{
		OrderID: uuid.New(),
		Method:  method,
		Lines:   s.cart.Lines(),
		Total:   s.cart.Total(),
		PaidAt:  s.clock.Now(),
	}
	s.cart.Clear()
	s.mu.Unlock()

	s.log.Info("Payment confirmed",
		"student_id", identity.StudentID,
		"order", receipt.OrderID,
		"method", method.String(),
		"total", receipt.Total.StringFixed(2))
	publish(s.log, s.sink, event.CheckoutConfirmed{
		OrderID: receipt.OrderID,
		Method:  method,
		Total:   receipt.Total,
		At:      receipt.PaidAt,
	})
	return receipt, nil
}

func (s *CartService) withCart(fn func(c *domain.Cart) []domain.CartLine) ([]domain.CartLine, error) {
	if _, err := s.session.Require(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart), nil
}

func (s *CartService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}
