package repositories

import (
	"campus-hub/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Courses(t *testing.T) {
	req := require.New(t)
	catalog := NewCatalogRepository(time.Now())

	courses := catalog.Courses()
	req.Len(courses, 4)
	req.EqualValues("cse101", courses[0].ID)

	course, err := catalog.Course("mat203")
	req.NoError(err)
	req.Equal("MAT203", course.Code)

	_, err = catalog.Course("phy999")
	req.ErrorIs(err, errors.ErrCourseNotFound)
}

func TestCatalogRepository_Products(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	catalog := NewCatalogRepository(now)

	product, err := catalog.Product("p3")
	req.NoError(err)
	req.Equal("Acoustic Guitar", product.Name)
	req.Equal("80", product.Price.String())
	req.Equal(now.Add(-24*time.Hour), product.PostDate)

	_, err = catalog.Product("p99")
	req.ErrorIs(err, errors.ErrProductNotFound)
}

func TestCatalogRepository_Categories(t *testing.T) {
	catalog := NewCatalogRepository(time.Now())
	require.Equal(t,
		[]string{"Electronics", "Books", "Musical Instruments", "Appliances"},
		catalog.Categories())
}

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	req := require.New(t)
	catalog := NewCatalogRepository(time.Now())

	courses := catalog.Courses()
	courses[0].Name = "changed"
	req.Equal("Introduction to Computer Science", catalog.Courses()[0].Name)
}
