package services

import (
	"context"
	"testing"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/model"

	"github.com/stretchr/testify/require"
)

func TestProfileUnknownUserIsUnauthorized(t *testing.T) {
	svc := NewUserService(&fakeUserStore{}, &fakeAuctionStore{})

	_, err := svc.Profile(context.Background(), "ghost-user")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestRegisteredAuctions(t *testing.T) {
	users := &fakeUserStore{users: []*model.User{{
		UserID:             "u1",
		Email:              "comprador@example.com",
		RegisteredAuctions: []string{"A1", "dangling-id"},
	}}}
	auctions := &fakeAuctionStore{auctions: []model.Auction{
		{AuctionID: "A1"},
		{AuctionID: "A2"},
	}}
	svc := NewUserService(users, auctions)

	list, err := svc.RegisteredAuctions(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "A1", list[0].AuctionID)
}

func TestRegisteredAuctionsEmptyList(t *testing.T) {
	users := &fakeUserStore{users: []*model.User{{UserID: "u1", Email: "a@b.mx"}}}
	svc := NewUserService(users, &fakeAuctionStore{})

	list, err := svc.RegisteredAuctions(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}
