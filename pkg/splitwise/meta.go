package splitwise

import (
	"context"

	"github.com/pkg/errors"
)

// metaService implements the MetaService interface
type metaService struct {
	client *Client
}

// Currencies retrieves all supported currencies
func (s *metaService) Currencies(ctx context.Context) ([]*Currency, error) {
	var result struct {
		Currencies []*Currency `json:"currencies"`
	}

	if err := s.client.get(ctx, "get_currencies", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get currencies")
	}

	return result.Currencies, nil
}

// Categories retrieves all expense categories with their subcategories
func (s *metaService) Categories(ctx context.Context) ([]*Category, error) {
	var result struct {
		Categories []*Category `json:"categories"`
	}

	if err := s.client.get(ctx, "get_categories", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}

	return result.Categories, nil
}
