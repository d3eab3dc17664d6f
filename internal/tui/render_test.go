package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/floorboard/internal/floor"
	"github.com/jask/floorboard/internal/view"
)

func TestFitHandlesWideRunes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		width int
	}{
		{"11", 6},
		{"蒸し・穴子", 6},
		{"", 4},
		{"1. ウニトロ", 16},
	}
	for _, tc := range cases {
		out := fit(tc.in, tc.width)
		require.Equal(t, tc.width, ansi.StringWidth(out), "fit(%q, %d) = %q", tc.in, tc.width, out)
	}
}

func TestCellTextMarkers(t *testing.T) {
	t.Parallel()

	st := floor.NewTableState()
	st.CurrentDish = 3
	st.Served[0], st.Served[1] = true, true
	st.Allergies = []floor.Note{{DishIndex: 0, Memo: "えび"}}
	st.Specials = []floor.SpecialDish{{DishIndex: 0, Memo: "別皿"}, {DishIndex: 5, Memo: "小盛"}}

	require.Equal(t, "○!S", cellText(view.CellOf(st, 0)))
	require.Equal(t, "○", cellText(view.CellOf(st, 1)))
	require.Equal(t, " ", cellText(view.CellOf(st, 2)))
	require.Equal(t, " S", cellText(view.CellOf(st, 5)))
}

func TestFloorViewShowsEveryTable(t *testing.T) {
	a := newTestApp(t, true)
	send(t, a, runes("w"))

	out := a.View()
	for _, id := range a.tables() {
		require.Contains(t, out, id)
	}
	require.Contains(t, out, "料理")
	require.Contains(t, out, "ペア")
	require.Contains(t, out, "0/13")
	require.True(t, strings.Contains(out, "卓 11 / 1. ウニトロ [current]"))
}

func TestOneLineCollapsesWhitespace(t *testing.T) {
	require.Equal(t, "a b c", oneLine(" a\n b\t\tc "))
}
