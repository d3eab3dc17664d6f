package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	require.Len(t, Dishes, DishCount)
	require.Len(t, Tables, TableCount)
	require.True(t, ValidTable("11"))
	require.True(t, ValidTable("33"))
	require.False(t, ValidTable("13"))
	require.False(t, ValidDish(-1))
	require.False(t, ValidDish(DishCount))
	require.Equal(t, "2. 5種盛り", Label(1))
}

func TestSearch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		query string
		first int
		size  int
	}{
		{name: "empty keeps catalog order", query: "  ", first: 0, size: DishCount},
		{name: "course number wins over substring", query: "5", first: 4, size: 2},
		{name: "substring", query: "穴子", first: 9, size: 1},
		{name: "typo tolerated", query: "焼き者", first: 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(tc.query)
			require.NotEmpty(t, got)
			require.Equal(t, tc.first, got[0])
			if tc.size > 0 {
				require.Len(t, got, tc.size)
			}
		})
	}

	require.Empty(t, Search("zzzzzzzz"))
}
