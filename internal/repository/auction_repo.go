package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxAuctionResults caps every auction listing/search query.
const maxAuctionResults = 100

const auctionColumns = `id, auction_id, title, description, reason, company_name, start_date, end_date, status, location, state, total_items, registration_fee, created_at`

type AuctionRepository struct {
	DB *pgxpool.Pool
}

func NewAuctionRepository(db *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{DB: db}
}

func (r *AuctionRepository) Insert(ctx context.Context, a *model.Auction) error {
	query := `
		INSERT INTO auctions (auction_id, title, description, reason, company_name, start_date, end_date, status, location, state, total_items, registration_fee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	return r.DB.QueryRow(ctx, query,
		a.AuctionID, a.Title, a.Description, a.Reason, a.CompanyName,
		a.StartDate, a.EndDate, a.Status, a.Location, a.State,
		a.TotalItems, a.RegistrationFee, a.CreatedAt).
		Scan(&a.ID)
}

func (r *AuctionRepository) ExistsByAuctionID(ctx context.Context, auctionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM auctions WHERE auction_id=$1)`
	if err := r.DB.QueryRow(ctx, query, auctionID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *AuctionRepository) GetByAuctionID(ctx context.Context, auctionID string) (*model.Auction, error) {
	var a model.Auction
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE auction_id=$1`
	err := r.DB.QueryRow(ctx, query, auctionID).Scan(
		&a.ID, &a.AuctionID, &a.Title, &a.Description, &a.Reason, &a.CompanyName,
		&a.StartDate, &a.EndDate, &a.Status, &a.Location, &a.State,
		&a.TotalItems, &a.RegistrationFee, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAuctionNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns all auctions ordered by start date ascending.
func (r *AuctionRepository) List(ctx context.Context) ([]model.Auction, error) {
	query := fmt.Sprintf(`SELECT %s FROM auctions ORDER BY start_date ASC LIMIT %d`, auctionColumns, maxAuctionResults)
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAuctions(rows)
}

// ListByAuctionIDs returns the auctions whose external ids are in ids, in no
// particular order. An empty id list matches nothing.
func (r *AuctionRepository) ListByAuctionIDs(ctx context.Context, ids []string) ([]model.Auction, error) {
	query := fmt.Sprintf(`SELECT %s FROM auctions WHERE auction_id = ANY($1) LIMIT %d`, auctionColumns, maxAuctionResults)
	rows, err := r.DB.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAuctions(rows)
}

// Search conjoins the supplied predicates: auction_id membership when ids is
// non-nil (a non-nil empty set matches nothing), plus exact state and status
// matches when supplied. No ordering is guaranteed.
func (r *AuctionRepository) Search(ctx context.Context, ids []string, state, status *string) ([]model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions`
	var (
		clauses []string
		args    []any
	)
	if ids != nil {
		args = append(args, ids)
		clauses = append(clauses, fmt.Sprintf("auction_id = ANY($%d)", len(args)))
	}
	if state != nil {
		args = append(args, *state)
		clauses = append(clauses, fmt.Sprintf("state = $%d", len(args)))
	}
	if status != nil {
		args = append(args, *status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += fmt.Sprintf(" LIMIT %d", maxAuctionResults)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAuctions(rows)
}

func collectAuctions(rows pgx.Rows) ([]model.Auction, error) {
	list := []model.Auction{}
	for rows.Next() {
		var a model.Auction
		if err := rows.Scan(
			&a.ID, &a.AuctionID, &a.Title, &a.Description, &a.Reason, &a.CompanyName,
			&a.StartDate, &a.EndDate, &a.Status, &a.Location, &a.State,
			&a.TotalItems, &a.RegistrationFee, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
