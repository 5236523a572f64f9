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

// maxItemResults caps item listings and the item-level search scan.
const maxItemResults = 1000

const itemColumns = `id, item_id, name, description, category, subcategory, brand, model, year, starting_price, current_bid, estimated_value_min, estimated_value_max, images, condition, mileage, specifications, location, auction_id`

type ItemRepository struct {
	DB *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Insert(ctx context.Context, it *model.AuctionItem) error {
	query := `
		INSERT INTO auction_items (item_id, name, description, category, subcategory, brand, model, year, starting_price, current_bid, estimated_value_min, estimated_value_max, images, condition, mileage, specifications, location, auction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`
	return r.DB.QueryRow(ctx, query,
		it.ItemID, it.Name, it.Description, it.Category, it.Subcategory, it.Brand,
		it.Model, it.Year, it.StartingPrice, it.CurrentBid,
		it.EstimatedValue.Min, it.EstimatedValue.Max, it.Images, it.Condition,
		it.Mileage, it.Specifications, it.Location, it.AuctionID).
		Scan(&it.ID)
}

func (r *ItemRepository) GetByItemID(ctx context.Context, itemID string) (*model.AuctionItem, error) {
	var it model.AuctionItem
	query := `SELECT ` + itemColumns + ` FROM auction_items WHERE item_id=$1`
	err := r.DB.QueryRow(ctx, query, itemID).Scan(
		&it.ID, &it.ItemID, &it.Name, &it.Description, &it.Category, &it.Subcategory,
		&it.Brand, &it.Model, &it.Year, &it.StartingPrice, &it.CurrentBid,
		&it.EstimatedValue.Min, &it.EstimatedValue.Max, &it.Images, &it.Condition,
		&it.Mileage, &it.Specifications, &it.Location, &it.AuctionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

// ListByAuctionID returns the lots of an auction. An unknown auction id
// yields an empty list, not an error.
func (r *ItemRepository) ListByAuctionID(ctx context.Context, auctionID string) ([]model.AuctionItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM auction_items WHERE auction_id=$1 LIMIT %d`, itemColumns, maxItemResults)
	rows, err := r.DB.Query(ctx, query, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.AuctionItem{}
	for rows.Next() {
		var it model.AuctionItem
		if err := rows.Scan(
			&it.ID, &it.ItemID, &it.Name, &it.Description, &it.Category, &it.Subcategory,
			&it.Brand, &it.Model, &it.Year, &it.StartingPrice, &it.CurrentBid,
			&it.EstimatedValue.Min, &it.EstimatedValue.Max, &it.Images, &it.Condition,
			&it.Mileage, &it.Specifications, &it.Location, &it.AuctionID); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// AuctionIDsMatching is the item-level phase of auction search: it collects
// the distinct owning auction ids of items matching the category and the
// inclusive starting-price bounds. Absent filters impose no constraint.
func (r *ItemRepository) AuctionIDsMatching(ctx context.Context, category *string, minPrice, maxPrice *float64) ([]string, error) {
	query := `SELECT DISTINCT auction_id FROM auction_items`
	var (
		clauses []string
		args    []any
	)
	if category != nil {
		args = append(args, *category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if minPrice != nil {
		args = append(args, *minPrice)
		clauses = append(clauses, fmt.Sprintf("starting_price >= $%d", len(args)))
	}
	if maxPrice != nil {
		args = append(args, *maxPrice)
		clauses = append(clauses, fmt.Sprintf("starting_price <= $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += fmt.Sprintf(" LIMIT %d", maxItemResults)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
