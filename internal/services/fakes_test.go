package services

import (
	"context"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/model"
)

// fakeUserStore implements UserStore in memory, mirroring the repository's
// error contract (unique email, ErrUserNotFound on misses).
type fakeUserStore struct {
	users     []*model.User
	createErr error
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailTaken
		}
	}
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	for _, u := range f.users {
		if u.UserID == userID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// fakeAuctionStore implements AuctionStore in memory and records the
// arguments of the last Search call.
type fakeAuctionStore struct {
	auctions []model.Auction

	searchCalls int
	lastIDs     []string
	lastState   *string
	lastStatus  *string
}

func (f *fakeAuctionStore) List(ctx context.Context) ([]model.Auction, error) {
	return append([]model.Auction{}, f.auctions...), nil
}

func (f *fakeAuctionStore) GetByAuctionID(ctx context.Context, auctionID string) (*model.Auction, error) {
	for _, a := range f.auctions {
		if a.AuctionID == auctionID {
			cp := a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAuctionNotFound
}

func (f *fakeAuctionStore) ListByAuctionIDs(ctx context.Context, ids []string) ([]model.Auction, error) {
	out := []model.Auction{}
	for _, a := range f.auctions {
		for _, id := range ids {
			if a.AuctionID == id {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeAuctionStore) Search(ctx context.Context, ids []string, state, status *string) ([]model.Auction, error) {
	f.searchCalls++
	f.lastIDs = ids
	f.lastState = state
	f.lastStatus = status

	out := []model.Auction{}
	for _, a := range f.auctions {
		if ids != nil && !contains(ids, a.AuctionID) {
			continue
		}
		if state != nil && a.State != *state {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// fakeItemStore implements ItemStore in memory.
type fakeItemStore struct {
	items []model.AuctionItem
}

func (f *fakeItemStore) GetByItemID(ctx context.Context, itemID string) (*model.AuctionItem, error) {
	for _, it := range f.items {
		if it.ItemID == itemID {
			cp := it
			return &cp, nil
		}
	}
	return nil, apperrors.ErrItemNotFound
}

func (f *fakeItemStore) ListByAuctionID(ctx context.Context, auctionID string) ([]model.AuctionItem, error) {
	out := []model.AuctionItem{}
	for _, it := range f.items {
		if it.AuctionID == auctionID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemStore) AuctionIDsMatching(ctx context.Context, category *string, minPrice, maxPrice *float64) ([]string, error) {
	ids := []string{}
	for _, it := range f.items {
		if category != nil && it.Category != *category {
			continue
		}
		if minPrice != nil && it.StartingPrice < *minPrice {
			continue
		}
		if maxPrice != nil && it.StartingPrice > *maxPrice {
			continue
		}
		if !contains(ids, it.AuctionID) {
			ids = append(ids, it.AuctionID)
		}
	}
	return ids, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
