package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/floorboard/internal/database"
	"github.com/jask/floorboard/internal/database/repository"
)

func TestEventRepoRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db, err := database.OpenMigrated("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewEventRepo(db)
	base := time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC)
	dish := 4
	memo := "甲殻類"
	events := []repository.Event{
		{ID: "e1", TableID: "11", Action: repository.ActionAdvance, CreatedAt: base},
		{ID: "e2", TableID: "11", Action: repository.ActionAllergy, DishIndex: &dish, Memo: &memo, CreatedAt: base.Add(time.Minute)},
		{ID: "e3", TableID: "12", Action: repository.ActionAdvance, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range events {
		require.NoError(t, repo.Insert(ctx, e))
	}

	all, err := repo.List(ctx, repository.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "e3", all[0].ID)
	require.Nil(t, all[0].DishIndex)
	require.Nil(t, all[0].Memo)

	t11, err := repo.List(ctx, repository.EventFilter{TableID: "11"})
	require.NoError(t, err)
	require.Len(t, t11, 2)
	require.Equal(t, repository.ActionAllergy, t11[0].Action)
	require.NotNil(t, t11[0].DishIndex)
	require.Equal(t, 4, *t11[0].DishIndex)
	require.Equal(t, "甲殻類", *t11[0].Memo)
	require.True(t, t11[0].CreatedAt.Equal(base.Add(time.Minute)))

	limited, err := repo.List(ctx, repository.EventFilter{Action: repository.ActionAdvance, Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, "e3", limited[0].ID)

	counts, err := repo.CountByAction(ctx, "")
	require.NoError(t, err)
	require.Equal(t, map[repository.Action]int{repository.ActionAdvance: 2, repository.ActionAllergy: 1}, counts)

	counts, err = repo.CountByAction(ctx, "12")
	require.NoError(t, err)
	require.Equal(t, 1, counts[repository.ActionAdvance])
	require.Zero(t, counts[repository.ActionAllergy])
}

func TestInMemoryDatabasesAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, err := database.OpenMigrated("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	b, err := database.OpenMigrated("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	require.NoError(t, repository.NewEventRepo(a).Insert(ctx, repository.Event{
		ID: "only-a", TableID: "21", Action: repository.ActionReset, CreatedAt: database.Now(),
	}))
	got, err := repository.NewEventRepo(b).List(ctx, repository.EventFilter{})
	require.NoError(t, err)
	require.Empty(t, got)
}
