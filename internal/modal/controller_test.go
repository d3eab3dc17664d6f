package modal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/floorboard/internal/floor"
)

func TestAnnotationFlow(t *testing.T) {
	c := New()
	require.Equal(t, Idle, c.Phase())
	require.Equal(t, -1, c.Dish())

	require.True(t, c.OpenPicker("21", floor.KindSpecial))
	require.Equal(t, DishPicking, c.Phase())
	require.Equal(t, "21", c.Table())
	require.Equal(t, floor.KindSpecial, c.Kind())

	require.True(t, c.PickDish(6))
	require.Equal(t, MemoEditing, c.Phase())
	require.Equal(t, "", c.Draft())

	c.SetDraft("誕生日プレート")
	req, ok := c.Save()
	require.True(t, ok)
	require.Equal(t, SaveRequest{Table: "21", Dish: 6, Kind: floor.KindSpecial, Memo: "誕生日プレート"}, req)
	require.Equal(t, Idle, c.Phase())
	require.Equal(t, "", c.Draft())
	require.Equal(t, "", c.Table())
}

func TestGuardsRejectOutOfOrderTransitions(t *testing.T) {
	c := New()

	require.False(t, c.PickDish(0))
	_, ok := c.Save()
	require.False(t, ok)
	c.SetDraft("ignored")
	require.Equal(t, "", c.Draft())

	require.True(t, c.OpenPicker("11", floor.KindAllergy))
	require.False(t, c.OpenPicker("12", floor.KindSpecial))
	require.False(t, c.ViewNote("11", floor.Note{DishIndex: 1, Memo: "x"}))
	require.False(t, c.PickDish(13))
	require.False(t, c.PickDish(-1))
	require.Equal(t, DishPicking, c.Phase())
	require.Equal(t, "11", c.Table())

	require.True(t, c.PickDish(0))
	require.False(t, c.PickDish(1))
	require.Equal(t, 0, c.Dish())
}

func TestCancelLeavesNothingBehind(t *testing.T) {
	for _, phase := range []Phase{DishPicking, MemoEditing, ViewingNote} {
		t.Run(phase.String(), func(t *testing.T) {
			c := New()
			switch phase {
			case DishPicking:
				c.OpenPicker("31", floor.KindAllergy)
			case MemoEditing:
				c.OpenPicker("31", floor.KindAllergy)
				c.PickDish(3)
				c.SetDraft("draft")
			case ViewingNote:
				c.ViewNote("31", floor.Note{DishIndex: 3, Memo: "memo"})
			}
			require.Equal(t, phase, c.Phase())

			c.Cancel()
			require.Equal(t, Idle, c.Phase())
			require.Equal(t, -1, c.Dish())
			require.Equal(t, "", c.Draft())
			_, ok := c.Note()
			require.False(t, ok)
		})
	}
}

func TestViewNote(t *testing.T) {
	c := New()
	note := floor.Note{DishIndex: 4, Memo: "甲殻類"}
	require.True(t, c.ViewNote("11", note))

	got, ok := c.Note()
	require.True(t, ok)
	require.Equal(t, note, got)
	require.False(t, c.OpenPicker("11", floor.KindAllergy))

	c.CloseNote()
	require.Equal(t, Idle, c.Phase())
}

func TestEditStartsBlankEachTime(t *testing.T) {
	c := New()
	c.OpenPicker("22", floor.KindAllergy)
	c.PickDish(2)
	c.SetDraft("first")
	_, _ = c.Save()

	c.OpenPicker("22", floor.KindAllergy)
	c.PickDish(2)
	require.Equal(t, "", c.Draft())
}
