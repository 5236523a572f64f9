package services

import (
	"context"
	"errors"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/model"
)

type UserService struct {
	Users    UserStore
	Auctions AuctionStore
}

func NewUserService(users UserStore, auctions AuctionStore) *UserService {
	return &UserService{Users: users, Auctions: auctions}
}

// Profile resolves an authenticated user id to its record. A token that
// decodes but references a vanished user is unauthorized, not a 404.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	u, err := s.Users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}

// RegisteredAuctions returns the auctions the user has registered interest
// in. Dangling auction ids are simply absent from the result.
func (s *UserService) RegisteredAuctions(ctx context.Context, userID string) ([]model.Auction, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(u.RegisteredAuctions) == 0 {
		return []model.Auction{}, nil
	}
	return s.Auctions.ListByAuctionIDs(ctx, u.RegisteredAuctions)
}
