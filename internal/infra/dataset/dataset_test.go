package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "restaurant.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validData = `
[[table]]
id = "T1"
name = "Win 1"
min_capacity = 1
max_capacity = 2
combinable = true
combinable_with = ["T2"]

[[table]]
id = "T2"
name = "Win 2"
min_capacity = 1
max_capacity = 2

[[menu.category]]
name = "Specials"

[[menu.category.item]]
name = "Risotto al Tartufo Bianco"
price = 35.0

[[menu.category]]
name = "Primi"

[[menu.category.item]]
name = "Risotto alla Milanese"
price = 26.0

[info.location]
address = "Via Roma 42"
parking = "Parcheggio convenzionato"
`

func TestLoad(t *testing.T) {
	ds, err := Load(writeDataFile(t, validData))
	require.NoError(t, err)

	require.Len(t, ds.Tables, 2)
	assert.Equal(t, "T1", ds.Tables[0].ID)
	assert.True(t, ds.Tables[0].IsCombinable)
	assert.Equal(t, []string{"T2"}, ds.Tables[0].CombinableWith)

	// Порядок объявления каталога сохранен: specials раньше primi
	require.Len(t, ds.Catalog.Categories, 2)
	assert.Equal(t, "Specials", ds.Catalog.Categories[0].Name)

	flat := ds.Catalog.Flatten()
	require.Len(t, flat, 2)
	assert.Equal(t, "Risotto al Tartufo Bianco", flat[0].Name)

	assert.Equal(t, "Via Roma 42", ds.Info.Location.Address)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestLoadInvalidTables(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no tables", `
[[menu.category]]
name = "Primi"
[[menu.category.item]]
name = "Pasta"
price = 10.0
`},
		{"duplicate id", `
[[table]]
id = "T1"
min_capacity = 1
max_capacity = 2
[[table]]
id = "T1"
min_capacity = 1
max_capacity = 2
`},
		{"bad capacity range", `
[[table]]
id = "T1"
min_capacity = 4
max_capacity = 2
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeDataFile(t, tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestLoadInvalidMenu(t *testing.T) {
	_, err := Load(writeDataFile(t, `
[[table]]
id = "T1"
min_capacity = 1
max_capacity = 2

[[menu.category]]
name = "Primi"

[[menu.category.item]]
name = "Pasta"
price = 0.0
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMenu)
}
