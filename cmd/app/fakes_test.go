package main

import (
	"context"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/model"
	"SubastasAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type fakeUserStore struct {
	users []*model.User
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User) error {
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

type fakeAuctionStore struct {
	auctions []model.Auction
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
	out := []model.Auction{}
	for _, a := range f.auctions {
		if ids != nil && !containsID(ids, a.AuctionID) {
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
		if !containsID(ids, it.AuctionID) {
			ids = append(ids, it.AuctionID)
		}
	}
	return ids, nil
}

func containsID(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// newTestServer wires every route against the given fakes, mirroring main.
func newTestServer(users services.UserStore, auctions services.AuctionStore, items services.ItemStore) *echo.Echo {
	e := echo.New()
	api := e.Group("/api")
	registerAuthRoutes(api, services.NewAuthService(users))
	registerAuctionRoutes(api, services.NewAuctionService(auctions, items))
	registerItemRoutes(api, services.NewAuctionService(auctions, items))
	registerUserRoutes(api, services.NewUserService(users, auctions))
	return e
}
