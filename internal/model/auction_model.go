package model

import "time"

// Auction reasons.
const (
	ReasonCierreEmpresa      = "cierre_empresa"
	ReasonRenovacionFlotilla = "renovacion_flotilla"
)

// Auction statuses. Status is stored as-is, not derived from the start/end
// window, so it can drift from the actual dates.
const (
	StatusProxima    = "proxima"
	StatusActiva     = "activa"
	StatusFinalizada = "finalizada"
)

// Auction is a liquidation sale event. AuctionID is the external identifier
// used in URLs and as the foreign key from items.
type Auction struct {
	ID              int64     `json:"-"`
	AuctionID       string    `json:"auction_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Reason          string    `json:"reason"`
	CompanyName     string    `json:"company_name"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Status          string    `json:"status"`
	Location        string    `json:"location"`
	State           string    `json:"state"`
	TotalItems      int       `json:"total_items"` // denormalized, set at seed time
	RegistrationFee float64   `json:"registration_fee"`
	CreatedAt       time.Time `json:"created_at"`
}
