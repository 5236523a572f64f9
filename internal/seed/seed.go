package seed

import (
	"context"
	"time"

	"SubastasAPI/internal/model"

	log "github.com/sirupsen/logrus"
)

// AuctionStore is the slice of the auction repository the seeder needs.
type AuctionStore interface {
	ExistsByAuctionID(ctx context.Context, auctionID string) (bool, error)
	Insert(ctx context.Context, a *model.Auction) error
}

// ItemStore is the slice of the item repository the seeder needs.
type ItemStore interface {
	Insert(ctx context.Context, it *model.AuctionItem) error
}

type sale struct {
	auction model.Auction
	items   []model.AuctionItem
}

// Run inserts the sample auctions and their lots. Every auction carries a
// deterministic external id; a sale whose id already exists is skipped
// wholesale, so the routine is safe to run on every start. total_items is
// always set to the number of lots actually seeded.
func Run(ctx context.Context, auctions AuctionStore, items ItemStore) error {
	for _, s := range sampleSales() {
		exists, err := auctions.ExistsByAuctionID(ctx, s.auction.AuctionID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		s.auction.TotalItems = len(s.items)
		if err := auctions.Insert(ctx, &s.auction); err != nil {
			return err
		}
		for i := range s.items {
			s.items[i].AuctionID = s.auction.AuctionID
			if err := items.Insert(ctx, &s.items[i]); err != nil {
				return err
			}
		}
		log.WithFields(log.Fields{
			"auction_id": s.auction.AuctionID,
			"items":      len(s.items),
		}).Info("seeded auction")
	}
	return nil
}

// placeholderImage is a 1x1 PNG, base64-encoded.
const placeholderImage = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func sampleSales() []sale {
	now := time.Now().UTC()
	return []sale{
		{
			auction: model.Auction{
				AuctionID:       "monterrey-flota-ejecutiva",
				Title:           "Liquidación Flota Ejecutiva - Grupo Empresarial Monterrey",
				Description:     "Subasta por renovación de flotilla empresarial. Vehículos ejecutivos en excelente estado con mantenimiento premium.",
				Reason:          model.ReasonRenovacionFlotilla,
				CompanyName:     "Grupo Empresarial Monterrey S.A. de C.V.",
				StartDate:       now.AddDate(0, 0, 5),
				EndDate:         now.AddDate(0, 0, 6),
				Status:          model.StatusProxima,
				Location:        "Centro de Convenciones Monterrey, Nuevo León",
				State:           "Nuevo León",
				RegistrationFee: 750,
				CreatedAt:       now,
			},
			items: []model.AuctionItem{
				{
					ItemID:         "monterrey-flota-ejecutiva-bmw-530i",
					Name:           "BMW Serie 5 530i",
					Description:    "Vehículo ejecutivo en excelente estado. Servicio de mantenimiento premium. Interior en cuero, sistema de navegación.",
					Category:       model.CategoryVehiculos,
					Subcategory:    "sedan_ejecutivo",
					Brand:          "BMW",
					Model:          strPtr("530i"),
					Year:           intPtr(2022),
					StartingPrice:  450000,
					CurrentBid:     485000,
					EstimatedValue: model.PriceRange{Min: 520000, Max: 580000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionExcelente,
					Mileage:        intPtr(45000),
					Specifications: map[string]any{
						"motor":       "2.0L Turbo",
						"combustible": "Gasolina",
						"transmision": "Automática 8 velocidades",
						"color":       "Negro Carbón",
					},
					Location: "Monterrey, Nuevo León",
				},
			},
		},
		{
			auction: model.Auction{
				AuctionID:       "hospital-san-jose-equipo-medico",
				Title:           "Cierre Hospital Regional - Equipo Médico Especializado",
				Description:     "Liquidación por cierre de hospital. Equipo médico de última generación en condiciones operativas.",
				Reason:          model.ReasonCierreEmpresa,
				CompanyName:     "Hospital Regional San José",
				StartDate:       now.AddDate(0, 0, 12),
				EndDate:         now.AddDate(0, 0, 13),
				Status:          model.StatusProxima,
				Location:        "Instalaciones Hospitalarias, Ciudad de México",
				State:           "Ciudad de México",
				RegistrationFee: 1000,
				CreatedAt:       now,
			},
			items: []model.AuctionItem{
				{
					ItemID:         "hospital-san-jose-resonancia-magnetom",
					Name:           "Resonancia Magnética Siemens Magnetom",
					Description:    "Equipo de resonancia magnética 1.5T. Completamente operativo. Incluye mesa paciente y accesorios.",
					Category:       model.CategoryEquipoMedico,
					Subcategory:    "resonancia_magnetica",
					Brand:          "Siemens",
					Model:          strPtr("Magnetom Essenza"),
					Year:           intPtr(2020),
					StartingPrice:  2500000,
					CurrentBid:     2500000,
					EstimatedValue: model.PriceRange{Min: 3500000, Max: 4200000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionExcelente,
					Specifications: map[string]any{
						"potencia_campo":  "1.5 Tesla",
						"tipo_magnetismo": "Superconductor",
						"diametro_tunel":  "60 cm",
					},
					Location: "Ciudad de México",
				},
			},
		},
		{
			auction: model.Auction{
				AuctionID:       "transportes-norte-flotilla",
				Title:           "Transportes del Norte - Flotilla Comercial",
				Description:     "Cierre de empresa de transportes. Camiones y vehículos comerciales con documentación en orden.",
				Reason:          model.ReasonCierreEmpresa,
				CompanyName:     "Transportes del Norte S.A.",
				StartDate:       now.AddDate(0, 0, -2),
				EndDate:         now.Add(8 * time.Hour),
				Status:          model.StatusActiva,
				Location:        "Patio Industrial Tijuana, Baja California",
				State:           "Baja California",
				RegistrationFee: 500,
				CreatedAt:       now,
			},
			items: []model.AuctionItem{
				{
					ItemID:         "transportes-norte-freightliner-cascadia",
					Name:           "Freightliner Cascadia 2021",
					Description:    "Tractocamión de carga pesada. Motor Detroit Diesel, transmisión manual. Ideal para transporte de larga distancia.",
					Category:       model.CategoryCamiones,
					Subcategory:    "tractocamion",
					Brand:          "Freightliner",
					Model:          strPtr("Cascadia"),
					Year:           intPtr(2021),
					StartingPrice:  850000,
					CurrentBid:     920000,
					EstimatedValue: model.PriceRange{Min: 1200000, Max: 1400000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionBueno,
					Mileage:        intPtr(180000),
					Specifications: map[string]any{
						"motor":           "Detroit Diesel DD13",
						"potencia":        "475 HP",
						"capacidad_carga": "36,000 kg",
					},
					Location: "Tijuana, Baja California",
				},
			},
		},
		{
			auction: model.Auction{
				AuctionID:       "multimarcas-2025-10-09",
				Title:           "Gran Subasta Multimarcas",
				Description:     "Webcast | Motocicletas · Automóviles · Camionetas · Tractocamiones · Equipo de Construcción y mucho más. Inspecciones disponibles: Del 6 al 8 de octubre.",
				Reason:          model.ReasonRenovacionFlotilla,
				CompanyName:     "Hilco Global México",
				StartDate:       time.Date(2025, 10, 9, 11, 0, 0, 0, time.UTC),
				EndDate:         time.Date(2025, 10, 10, 18, 0, 0, 0, time.UTC),
				Status:          model.StatusProxima,
				Location:        "Vía webcast",
				State:           "Jalisco",
				RegistrationFee: 500,
				CreatedAt:       now,
			},
			items: []model.AuctionItem{
				{
					ItemID:         "multimarcas-2025-10-09-tsuru-2012",
					Name:           "Nissan Tsuru | 2012",
					Description:    "Automóvil compacto. Estado general bueno. Incluye documentación básica.",
					Category:       model.CategoryVehiculos,
					Subcategory:    "automoviles",
					Brand:          "Nissan",
					Model:          strPtr("Tsuru"),
					Year:           intPtr(2012),
					StartingPrice:  30000,
					CurrentBid:     30000,
					EstimatedValue: model.PriceRange{Min: 28000, Max: 35000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionBueno,
					Specifications: map[string]any{"numero_lote": "11"},
					Location:       "Jalisco",
				},
				{
					ItemID:         "multimarcas-2025-10-09-tsuru-2013",
					Name:           "Nissan Tsuru | 2013",
					Description:    "Automóvil compacto. Estado general bueno. Incluye documentación básica.",
					Category:       model.CategoryVehiculos,
					Subcategory:    "automoviles",
					Brand:          "Nissan",
					Model:          strPtr("Tsuru"),
					Year:           intPtr(2013),
					StartingPrice:  35000,
					CurrentBid:     35000,
					EstimatedValue: model.PriceRange{Min: 32000, Max: 38000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionBueno,
					Specifications: map[string]any{"numero_lote": "13"},
					Location:       "Jalisco",
				},
				{
					ItemID:         "multimarcas-2025-10-09-tsuru-2015",
					Name:           "Nissan Tsuru | 2015",
					Description:    "Automóvil compacto. Estado general bueno. Incluye documentación básica.",
					Category:       model.CategoryVehiculos,
					Subcategory:    "automoviles",
					Brand:          "Nissan",
					Model:          strPtr("Tsuru"),
					Year:           intPtr(2015),
					StartingPrice:  45000,
					CurrentBid:     45000,
					EstimatedValue: model.PriceRange{Min: 43000, Max: 50000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionBueno,
					Specifications: map[string]any{"numero_lote": "15"},
					Location:       "Jalisco",
				},
			},
		},
		{
			auction: model.Auction{
				AuctionID:       "pacific-aquaculture-2025-10-16",
				Title:           "Gran Subasta por Cierre de Planta Pacific Aquaculture",
				Description:     "Presencial y por Internet | City Express Plus Ensenada. Inspecciones disponibles: Del 13 al 15 de octubre.",
				Reason:          model.ReasonCierreEmpresa,
				CompanyName:     "Pacific Aquaculture",
				StartDate:       time.Date(2025, 10, 16, 11, 0, 0, 0, time.UTC),
				EndDate:         time.Date(2025, 10, 16, 18, 0, 0, 0, time.UTC),
				Status:          model.StatusProxima,
				Location:        "City Express Plus Ensenada",
				State:           "Baja California",
				RegistrationFee: 300,
				CreatedAt:       now,
			},
			items: []model.AuctionItem{
				{
					ItemID:         "pacific-aquaculture-2025-10-16-lote-2",
					Name:           "Lote De Herramientas Manuales",
					Description:    "Conjunto de herramientas manuales varias.",
					Category:       model.CategoryHerramientas,
					Subcategory:    "manuales",
					Brand:          "Varias",
					StartingPrice:  1,
					CurrentBid:     1,
					EstimatedValue: model.PriceRange{Min: 1000, Max: 3000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionBueno,
					Specifications: map[string]any{"precio_reservado": true, "numero_lote": "Lote 2"},
					Location:       "Baja California",
				},
				{
					ItemID:         "pacific-aquaculture-2025-10-16-lote-4",
					Name:           "Lote De Herramientas Eléctricas",
					Description:    "Taladros, sierras y equipos eléctricos variados.",
					Category:       model.CategoryHerramientas,
					Subcategory:    "electricas",
					Brand:          "Varias",
					StartingPrice:  1,
					CurrentBid:     1,
					EstimatedValue: model.PriceRange{Min: 3000, Max: 8000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionBueno,
					Specifications: map[string]any{"precio_reservado": true, "numero_lote": "Lote 4"},
					Location:       "Baja California",
				},
				{
					ItemID:         "pacific-aquaculture-2025-10-16-lote-6",
					Name:           "Soldadora Eléctrica Lincoln Electric WELD-PAK 140 HD",
					Description:    "Soldadora MIG compacta para trabajos ligeros y medianos.",
					Category:       model.CategoryMaquinaria,
					Subcategory:    "soldadoras",
					Brand:          "Lincoln Electric",
					Model:          strPtr("WELD-PAK 140 HD"),
					StartingPrice:  1,
					CurrentBid:     1,
					EstimatedValue: model.PriceRange{Min: 8000, Max: 15000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionBueno,
					Specifications: map[string]any{"precio_reservado": true, "numero_lote": "SLote 6"},
					Location:       "Baja California",
				},
				{
					ItemID:         "pacific-aquaculture-2025-10-16-lote-7",
					Name:           "Lote De Equipos Varios",
					Description:    "Mezcla de equipos y accesorios para pesca y cultivo.",
					Category:       model.CategoryEquipos,
					Subcategory:    "varios",
					Brand:          "Varias",
					StartingPrice:  1,
					CurrentBid:     1,
					EstimatedValue: model.PriceRange{Min: 2000, Max: 6000},
					Images:         []string{placeholderImage},
					Condition:      model.CondicionBueno,
					Specifications: map[string]any{"precio_reservado": true, "numero_lote": "LLote 7"},
					Location:       "Baja California",
				},
			},
		},
	}
}
