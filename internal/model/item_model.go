package model

// Known item categories. Category is an open-ended string in the store;
// these constants only cover the values the seed data uses.
const (
	CategoryVehiculos    = "vehiculos"
	CategoryCamiones     = "camiones"
	CategoryEquipoMedico = "equipo_medico"
	CategoryHerramientas = "herramientas"
	CategoryMaquinaria   = "maquinaria"
	CategoryEquipos      = "equipos"
)

// Item conditions.
const (
	CondicionExcelente      = "excelente"
	CondicionBueno          = "bueno"
	CondicionRegular        = "regular"
	CondicionParaReparacion = "para_reparacion"
)

// PriceRange is the estimated resale value band of an item.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AuctionItem is a lot within an auction. AuctionID references the owning
// auction's external identifier, not its row id.
type AuctionItem struct {
	ID             int64          `json:"-"`
	ItemID         string         `json:"item_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Subcategory    string         `json:"subcategory"`
	Brand          string         `json:"brand"`
	Model          *string        `json:"model,omitempty"`
	Year           *int           `json:"year,omitempty"`
	StartingPrice  float64        `json:"starting_price"`
	CurrentBid     float64        `json:"current_bid"`
	EstimatedValue PriceRange     `json:"estimated_value"`
	Images         []string       `json:"images"` // base64 payloads
	Condition      string         `json:"condition"`
	Mileage        *int           `json:"mileage,omitempty"`
	Specifications map[string]any `json:"specifications"`
	Location       string         `json:"location"`
	AuctionID      string         `json:"auction_id"`
}
