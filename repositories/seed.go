package repositories

import (
	"campus-hub/domain"
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

var seedCourses = []domain.Course{
	{ID: "cse101", Name: "Introduction to Computer Science", Code: "CSE101"},
	{ID: "bus201", Name: "Principles of Business", Code: "BUS201"},
	{ID: "eng102", Name: "Composition II", Code: "ENG102"},
	{ID: "mat203", Name: "Calculus and Analytical Geometry", Code: "MAT203"},
}

var (
	janeDoe    = domain.Identity{ID: "s1", Name: "Jane Doe", StudentID: "1810001", Email: "jane@example.com"}
	johnSmith  = domain.Identity{ID: "s2", Name: "John Smith", StudentID: "1920002", Email: "john@example.com"}
	aliceBrown = domain.Identity{ID: "s3", Name: "Alice Brown", StudentID: "1730003", Email: "alice@example.com"}
)

// seedProducts builds the marketplace listings with post dates relative to now.
func seedProducts(now time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Used Graphics Calculator",
			Description: "Slightly used TI-84 Plus calculator, perfect for math and engineering courses.",
			Price:       decimal.NewFromInt(50),
			ImageRef:    "https://picsum.photos/seed/calc/300/200",
			Seller:      janeDoe,
			PostDate:    now.Add(-2 * day),
			Category:    "Electronics",
		},
		{
			ID:          "p2",
			Name:        "Organic Chemistry Textbook",
			Description: "8th Edition, good condition with some highlights.",
			Price:       decimal.NewFromInt(30),
			ImageRef:    "https://picsum.photos/seed/book/300/200",
			Seller:      johnSmith,
			PostDate:    now.Add(-5 * day),
			Category:    "Books",
		},
		{
			ID:          "p3",
			Name:        "Acoustic Guitar",
			Description: "Beginner acoustic guitar, comes with a soft case.",
			Price:       decimal.NewFromInt(80),
			ImageRef:    "https://picsum.photos/seed/guitar/300/200",
			Seller:      aliceBrown,
			PostDate:    now.Add(-1 * day),
			Category:    "Musical Instruments",
		},
		{
			ID:          "p4",
			Name:        "Mini Fridge",
			Description: "Compact mini fridge, great for dorm rooms.",
			Price:       decimal.NewFromInt(60),
			ImageRef:    "https://picsum.photos/seed/fridge/300/200",
			Seller:      janeDoe,
			PostDate:    now.Add(-10 * day),
			Category:    "Appliances",
		},
	}
}
