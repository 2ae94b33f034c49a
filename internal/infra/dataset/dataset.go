package dataset

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

// Dataset типизированный набор статических данных ресторана:
// реестр столов, каталог меню и справочная информация.
// Загружается один раз при старте и дальше не меняется.
type Dataset struct {
	Tables  []domain.Table
	Catalog domain.MenuCatalog
	Info    domain.RestaurantInfo
}

// Файловые модели. Категории меню - упорядоченный массив, а не таблица:
// порядок объявления каталога задает приоритет разрешения неоднозначных
// названий и обязан сохраняться.
type fileModel struct {
	Tables []tableModel `toml:"table"`
	Menu   menuModel    `toml:"menu"`
	Info   infoModel    `toml:"info"`
}

type tableModel struct {
	ID             string   `toml:"id"`
	Name           string   `toml:"name"`
	MinCapacity    int      `toml:"min_capacity"`
	MaxCapacity    int      `toml:"max_capacity"`
	Combinable     bool     `toml:"combinable"`
	CombinableWith []string `toml:"combinable_with"`
	X              int      `toml:"x"`
	Y              int      `toml:"y"`
	Shape          string   `toml:"shape"`
}

type menuModel struct {
	Categories []categoryModel `toml:"category"`
}

type categoryModel struct {
	Name  string      `toml:"name"`
	Items []itemModel `toml:"item"`
}

type itemModel struct {
	Name        string  `toml:"name"`
	Price       float64 `toml:"price"`
	Description string  `toml:"description"`
}

type infoModel struct {
	Location struct {
		Address     string `toml:"address"`
		Description string `toml:"description"`
		Parking     string `toml:"parking"`
	} `toml:"location"`
	Hours struct {
		Weekdays string `toml:"weekdays"`
		Weekends string `toml:"weekends"`
		Closed   string `toml:"closed"`
		Notes    string `toml:"notes"`
	} `toml:"hours"`
	Services struct {
		Integrations string `toml:"integrations"`
		Takeaway     string `toml:"takeaway"`
	} `toml:"services"`
	Policies struct {
		Allergies string `toml:"allergies"`
		Events    string `toml:"events"`
		Corkage   string `toml:"corkage"`
	} `toml:"policies"`
}

// Load загружает и валидирует набор данных из TOML файла
func Load(path string) (*Dataset, error) {
	var fm fileModel
	if _, err := toml.DecodeFile(path, &fm); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	ds := &Dataset{}

	seen := make(map[string]bool, len(fm.Tables))
	for _, tm := range fm.Tables {
		if tm.ID == "" {
			return nil, fmt.Errorf("%w: table without id", ErrInvalidTable)
		}
		if seen[tm.ID] {
			return nil, fmt.Errorf("%w: duplicate table id %q", ErrInvalidTable, tm.ID)
		}
		seen[tm.ID] = true

		if tm.MinCapacity <= 0 || tm.MaxCapacity < tm.MinCapacity {
			return nil, fmt.Errorf("%w: table %q capacity range %d-%d",
				ErrInvalidTable, tm.ID, tm.MinCapacity, tm.MaxCapacity)
		}

		ds.Tables = append(ds.Tables, domain.Table{
			ID:             tm.ID,
			Name:           tm.Name,
			MinCapacity:    tm.MinCapacity,
			MaxCapacity:    tm.MaxCapacity,
			IsCombinable:   tm.Combinable,
			CombinableWith: tm.CombinableWith,
			X:              tm.X,
			Y:              tm.Y,
			Shape:          domain.TableShape(tm.Shape),
		})
	}

	if len(ds.Tables) == 0 {
		return nil, fmt.Errorf("%w: no tables defined", ErrInvalidTable)
	}

	for _, cm := range fm.Menu.Categories {
		if cm.Name == "" {
			return nil, fmt.Errorf("%w: category without name", ErrInvalidMenu)
		}
		cat := domain.MenuCategory{Name: cm.Name}
		for _, im := range cm.Items {
			if im.Name == "" || im.Price <= 0 {
				return nil, fmt.Errorf("%w: item %q in category %q", ErrInvalidMenu, im.Name, cm.Name)
			}
			cat.Items = append(cat.Items, domain.MenuItem{
				Name:        im.Name,
				Price:       im.Price,
				Description: im.Description,
			})
		}
		ds.Catalog.Categories = append(ds.Catalog.Categories, cat)
	}

	if len(ds.Catalog.Categories) == 0 {
		return nil, fmt.Errorf("%w: no menu categories defined", ErrInvalidMenu)
	}

	ds.Info = domain.RestaurantInfo{
		Location: domain.LocationInfo{
			Address:     fm.Info.Location.Address,
			Description: fm.Info.Location.Description,
			Parking:     fm.Info.Location.Parking,
		},
		Hours: domain.HoursInfo{
			Weekdays: fm.Info.Hours.Weekdays,
			Weekends: fm.Info.Hours.Weekends,
			Closed:   fm.Info.Hours.Closed,
			Notes:    fm.Info.Hours.Notes,
		},
		Services: domain.ServicesInfo{
			Integrations: fm.Info.Services.Integrations,
			Takeaway:     fm.Info.Services.Takeaway,
		},
		Policies: domain.PoliciesInfo{
			Allergies: fm.Info.Policies.Allergies,
			Events:    fm.Info.Policies.Events,
			Corkage:   fm.Info.Policies.Corkage,
		},
	}

	return ds, nil
}
