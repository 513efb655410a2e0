//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=../mocks/mock_catalog_repository.go -package=mocks
package repositories

import (
	"campus-hub/domain"
	"campus-hub/errors"
	"fmt"
	"time"

	"github.com/samber/lo"
)

type ICatalogRepository interface {
	Courses() []domain.Course
	Course(id domain.CourseID) (domain.Course, error)
	Products() []domain.Product
	Product(id domain.ProductID) (domain.Product, error)
	Categories() []string
}

// CatalogRepository is the read-only reference data, loaded once.
type CatalogRepository struct {
	courses  []domain.Course
	products []domain.Product
}

// NewCatalogRepository loads the seed catalog, dating products relative to now.
func NewCatalogRepository(now time.Time) *CatalogRepository {
	return NewCatalogRepositoryFrom(seedCourses, seedProducts(now))
}

func NewCatalogRepositoryFrom(courses []domain.Course, products []domain.Product) *CatalogRepository {
	return &CatalogRepository{
		courses:  append([]domain.Course(nil), courses...),
		products: append([]domain.Product(nil), products...),
	}
}

func (c *CatalogRepository) Courses() []domain.Course {
	return append([]domain.Course(nil), c.courses...)
}

func (c *CatalogRepository) Course(id domain.CourseID) (domain.Course, error) {
	course, ok := lo.Find(c.courses, func(item domain.Course) bool {
		return item.ID == id
	})
	if !ok {
		return domain.Course{}, fmt.Errorf("%w: %q", errors.ErrCourseNotFound, id)
	}
	return course, nil
}

func (c *CatalogRepository) Products() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

func (c *CatalogRepository) Product(id domain.ProductID) (domain.Product, error) {
	product, ok := lo.Find(c.products, func(item domain.Product) bool {
		return item.ID == id
	})
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %q", errors.ErrProductNotFound, id)
	}
	return product, nil
}

// Categories lists distinct product categories in catalog order.
func (c *CatalogRepository) Categories() []string {
	return lo.Uniq(lo.Map(c.products, func(p domain.Product, _ int) string {
		return p.Category
	}))
}
