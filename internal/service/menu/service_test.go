package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LDV-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() domain.MenuCatalog {
	return domain.MenuCatalog{Categories: []domain.MenuCategory{
		{Name: "specials", Items: []domain.MenuItem{
			{Name: "Risotto al Tartufo Bianco", Price: 35},
		}},
		{Name: "primi", Items: []domain.MenuItem{
			{Name: "Tagliatelle al Ragù", Price: 24},
			{Name: "Risotto alla Milanese", Price: 26},
			{Name: "Spaghetti alle Vongole", Price: 25},
		}},
		{Name: "dessert", Items: []domain.MenuItem{
			{Name: "Tiramisù", Price: 12},
			{Name: "Panna Cotta", Price: 9},
		}},
	}}
}

func TestResolve(t *testing.T) {
	svc := NewService(testCatalog(), nopLogger{})

	tests := []struct {
		name     string
		query    string
		wantName string
		wantOK   bool
	}{
		{name: "exact match", query: "Tiramisù", wantName: "Tiramisù", wantOK: true},
		{name: "exact match is case-insensitive", query: "tiramisù", wantName: "Tiramisù", wantOK: true},
		{name: "exact beats substring", query: "Risotto alla Milanese", wantName: "Risotto alla Milanese", wantOK: true},
		{name: "substring resolves to first declared", query: "Risotto", wantName: "Risotto al Tartufo Bianco", wantOK: true},
		{name: "substring with surrounding spaces", query: "  vongole ", wantName: "Spaghetti alle Vongole", wantOK: true},
		{name: "no match", query: "Pizza Margherita", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := svc.Resolve(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, entry.Name)
			}
		})
	}
}

func TestProcessOrderEmpty(t *testing.T) {
	svc := NewService(testCatalog(), nopLogger{})

	result := svc.ProcessOrder(nil)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Items)
	assert.Empty(t, result.Unresolved)
}

func TestProcessOrderDuplicatesAreNotDeduplicated(t *testing.T) {
	svc := NewService(testCatalog(), nopLogger{})

	result := svc.ProcessOrder([]string{"Tiramisù", "Tiramisù"})
	require.Len(t, result.Items, 2)
	assert.Equal(t, 24.0, result.Total)
	assert.Equal(t, "Tiramisù", result.Items[0].Name)
	assert.Equal(t, "Tiramisù", result.Items[1].Name)
}

func TestProcessOrderMixedResolution(t *testing.T) {
	svc := NewService(testCatalog(), nopLogger{})

	result := svc.ProcessOrder([]string{"Tagliatelle al Ragù", "Pizza", "panna cotta"})
	require.Len(t, result.Items, 2)
	assert.Equal(t, []string{"Pizza"}, result.Unresolved)
	// Итог - сумма только разрешенных позиций
	assert.Equal(t, 33.0, result.Total)
}
