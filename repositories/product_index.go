//go:generate go run go.uber.org/mock/mockgen -source=product_index.go -destination=../mocks/mock_product_index.go -package=mocks
package repositories

import (
	"campus-hub/domain"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/samber/lo"
)

const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldCategory    = "category"
)

type IProductIndex interface {
	Index(products []domain.Product) error
	Search(ctx context.Context, text, category string) ([]domain.ProductID, error)
}

// ProductIndex is a bluge index over product name, description and
// category. Name and description are stored lower-cased as single keyword
// terms so that a search is a case-insensitive substring match.
type ProductIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewProductIndex(writer *bluge.Writer, log *slog.Logger) *ProductIndex {
	return &ProductIndex{writer: writer, log: log}
}

func (p *ProductIndex) Index(products []domain.Product) error {
	batch := bluge.NewBatch()
	for _, product := range products {
		doc := bluge.NewDocument(string(product.ID)).
			AddField(bluge.NewKeywordField(fieldName, strings.ToLower(product.Name))).
			AddField(bluge.NewKeywordField(fieldDescription, strings.ToLower(product.Description))).
			AddField(bluge.NewKeywordField(fieldCategory, product.Category))
		batch.Update(doc.ID(), doc)
	}
	if err := p.writer.Batch(batch); err != nil {
		return fmt.Errorf("index products: %w", err)
	}
	p.log.Debug("Products indexed", "count", len(products))
	return nil
}

// Search returns the ids of products whose name or description contains
// text, restricted to category when one is given. Result order is not
// meaningful.
func (p *ProductIndex) Search(ctx context.Context, text, category string) ([]domain.ProductID, error) {
	reader, err := p.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer reader.Close()

	iterator, err := reader.Search(ctx, bluge.NewAllMatches(buildQuery(text, category)))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	var ids []domain.ProductID
	match, err := iterator.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, domain.ProductID(value))
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return lo.Uniq(ids), nil
}

// buildQuery matches text as typed: surrounding spaces are part of the
// term, only an empty text means no text filter.
func buildQuery(text, category string) bluge.Query {
	text = strings.ToLower(text)
	hasText := text != ""
	hasCategory := category != ""
	if !hasText && !hasCategory {
		return bluge.NewMatchAllQuery()
	}

	query := bluge.NewBooleanQuery()
	if hasText {
		contains := ".*" + regexp.QuoteMeta(text) + ".*"
		query.AddMust(bluge.NewBooleanQuery().
			AddShould(bluge.NewRegexpQuery(contains).SetField(fieldName)).
			AddShould(bluge.NewRegexpQuery(contains).SetField(fieldDescription)).
			SetMinShould(1))
	}
	if hasCategory {
		query.AddMust(bluge.NewTermQuery(category).SetField(fieldCategory))
	}
	return query
}
