package services

import (
	"context"

	"SubastasAPI/internal/model"
)

// AuctionStore is the slice of the auction repository the services need.
type AuctionStore interface {
	List(ctx context.Context) ([]model.Auction, error)
	GetByAuctionID(ctx context.Context, auctionID string) (*model.Auction, error)
	ListByAuctionIDs(ctx context.Context, ids []string) ([]model.Auction, error)
	Search(ctx context.Context, ids []string, state, status *string) ([]model.Auction, error)
}

// ItemStore is the slice of the item repository the services need.
type ItemStore interface {
	GetByItemID(ctx context.Context, itemID string) (*model.AuctionItem, error)
	ListByAuctionID(ctx context.Context, auctionID string) ([]model.AuctionItem, error)
	AuctionIDsMatching(ctx context.Context, category *string, minPrice, maxPrice *float64) ([]string, error)
}

type AuctionService struct {
	Auctions AuctionStore
	Items    ItemStore
}

func NewAuctionService(auctions AuctionStore, items ItemStore) *AuctionService {
	return &AuctionService{Auctions: auctions, Items: items}
}

func (s *AuctionService) List(ctx context.Context) ([]model.Auction, error) {
	return s.Auctions.List(ctx)
}

func (s *AuctionService) Get(ctx context.Context, auctionID string) (*model.Auction, error) {
	return s.Auctions.GetByAuctionID(ctx, auctionID)
}

// ListItems returns the lots of an auction. An unknown or empty auction
// yields an empty list, never a not-found error.
func (s *AuctionService) ListItems(ctx context.Context, auctionID string) ([]model.AuctionItem, error) {
	return s.Items.ListByAuctionID(ctx, auctionID)
}

func (s *AuctionService) GetItem(ctx context.Context, itemID string) (*model.AuctionItem, error) {
	return s.Items.GetByItemID(ctx, itemID)
}

// SearchFilter holds the optional auction search predicates. Nil fields
// impose no constraint; price bounds are inclusive and compare against the
// items' starting price.
type SearchFilter struct {
	Category *string
	State    *string
	Status   *string
	MinPrice *float64
	MaxPrice *float64
}

func (f SearchFilter) hasItemFilter() bool {
	return f.Category != nil || f.MinPrice != nil || f.MaxPrice != nil
}

// Search runs the two-phase filter: when category or a price bound is
// supplied, the item scan first narrows the candidate set to the distinct
// owning auction ids, then the auction-level query conjoins the remaining
// predicates.
func (s *AuctionService) Search(ctx context.Context, f SearchFilter) ([]model.Auction, error) {
	var ids []string
	if f.hasItemFilter() {
		matched, err := s.Items.AuctionIDsMatching(ctx, f.Category, f.MinPrice, f.MaxPrice)
		if err != nil {
			return nil, err
		}
		// no matching items means no matching auctions, not "no filter"
		if len(matched) == 0 {
			return []model.Auction{}, nil
		}
		ids = matched
	}
	return s.Auctions.Search(ctx, ids, f.State, f.Status)
}
