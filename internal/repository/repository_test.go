package repository_test

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/repository"
	"github.com/Qayoomitcourse/Airport-Pass-Management/pkg/postgres"
)

func TestRepository_CreatePass_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	want := randomPass()

	err := repo.CreatePass(ctx, want)
	require.NoError(t, err)

	got, err := repo.PassByID(ctx, want.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = repo.PassByCNIC(ctx, want.CNIC)
	require.NoError(t, err)
	require.Equal(t, want, got)

	exists, err := repo.CNICExists(ctx, want.CNIC, uuid.Nil)
	require.NoError(t, err)
	require.True(t, exists)

	// The record itself is excluded when checking its own update.
	exists, err = repo.CNICExists(ctx, want.CNIC, want.ID)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.PassIDExists(ctx, want.Category, want.PassID, uuid.Nil)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.PassIDExists(ctx, want.Category, want.PassID, want.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestRepository_PassByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	_, err := repo.PassByID(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_DuplicateCNIC(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	first := randomPass()

	err := repo.CreatePass(ctx, first)
	require.NoError(t, err)

	second := randomPass()
	second.CNIC = first.CNIC

	err = repo.CreatePass(ctx, second)
	require.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestRepository_DuplicatePassIDPerCategory(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	first := randomPass()
	first.Category = entity.CategoryCargo

	err := repo.CreatePass(ctx, first)
	require.NoError(t, err)

	second := randomPass()
	second.Category = entity.CategoryCargo
	second.PassID = first.PassID

	err = repo.CreatePass(ctx, second)
	require.ErrorIs(t, err, entity.ErrAlreadyExists)

	// The same number is free in the other category.
	second.Category = entity.CategoryLandside

	err = repo.CreatePass(ctx, second)
	require.NoError(t, err)
}

func TestRepository_CreatePasses_Atomic(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	first := randomPass()

	conflicting := randomPass()
	conflicting.CNIC = first.CNIC

	err := repo.CreatePasses(ctx, first, conflicting)
	require.ErrorIs(t, err, entity.ErrAlreadyExists)

	// The failed batch must not leave the first row behind.
	_, err = repo.PassByID(ctx, first.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_PassKeys(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	first := randomPass()
	second := randomPass()
	second.Category = entity.CategoryLandside

	err := repo.CreatePasses(ctx, first, second)
	require.NoError(t, err)

	keys, err := repo.PassKeys(ctx)
	require.NoError(t, err)
	require.Contains(t, keys, entity.PassKey{Category: first.Category, PassID: first.PassID, CNIC: first.CNIC})
	require.Contains(t, keys, entity.PassKey{Category: second.Category, PassID: second.PassID, CNIC: second.CNIC})

	ids, err := repo.PassIDsByCategory(ctx, first.Category)
	require.NoError(t, err)
	require.Contains(t, ids, first.PassID)
	require.NotContains(t, ids, second.PassID)
}

func TestRepository_UpdatePass(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	pass := randomPass()

	err := repo.CreatePass(ctx, pass)
	require.NoError(t, err)

	pass.Name = "Updated Holder"
	pass.Designation = "Supervisor"
	pass.AreaAllowed = []string{"Import Shed"}

	err = repo.UpdatePass(ctx, pass)
	require.NoError(t, err)

	got, err := repo.PassByID(ctx, pass.ID)
	require.NoError(t, err)
	require.Equal(t, pass, got)

	missing := randomPass()

	err = repo.UpdatePass(ctx, missing)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_SetPhotoURL(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	pass := randomPass()

	err := repo.CreatePass(ctx, pass)
	require.NoError(t, err)

	err = repo.SetPhotoURL(ctx, pass.ID, "https://cdn.example.com/photo.jpg")
	require.NoError(t, err)

	got, err := repo.PassByID(ctx, pass.ID)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/photo.jpg", got.PhotoURL)

	err = repo.SetPhotoURL(ctx, uuid.Must(uuid.NewV4()), "x")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_DeletePasses(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	first := randomPass()
	second := randomPass()

	err := repo.CreatePasses(ctx, first, second)
	require.NoError(t, err)

	ids := []uuid.UUID{first.ID, second.ID}

	err = repo.DeletePasses(ctx, ids)
	require.NoError(t, err)

	_, err = repo.PassByID(ctx, first.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = repo.DeletePasses(ctx, ids)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_PassesByIDs(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	first := randomPass()
	second := randomPass()

	err := repo.CreatePasses(ctx, first, second)
	require.NoError(t, err)

	passes, err := repo.PassesByIDs(ctx, []uuid.UUID{first.ID, second.ID, uuid.Must(uuid.NewV4())})
	require.NoError(t, err)
	require.Len(t, passes, 2)
}

func TestRepository_PassesListByFilter(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	// A unique organization isolates this test's rows from parallel inserts.
	org := "Org " + uuid.Must(uuid.NewV4()).String()

	first := randomPass()
	first.Name = "Aamir"
	first.Organization = org

	second := randomPass()
	second.Name = "Zubair"
	second.Organization = org

	err := repo.CreatePasses(ctx, first, second)
	require.NoError(t, err)

	passes, count, err := repo.PassesListByFilter(ctx, entity.PassesFilter{
		Search:  org,
		Page:    1,
		Limit:   10,
		SortBy:  entity.SortByName,
		OrderBy: entity.ASC,
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, passes, 2)
	require.Equal(t, first.ID, passes[0].ID)
	require.Equal(t, second.ID, passes[1].ID)

	passes, count, err = repo.PassesListByFilter(ctx, entity.PassesFilter{
		Search:  org,
		Page:    2,
		Limit:   1,
		SortBy:  entity.SortByName,
		OrderBy: entity.ASC,
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, passes, 1)
	require.Equal(t, second.ID, passes[0].ID)

	_, _, err = repo.PassesListByFilter(ctx, entity.PassesFilter{
		Search:  "no such organization " + org,
		Page:    1,
		Limit:   10,
		SortBy:  entity.SortByName,
		OrderBy: entity.ASC,
	})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_PassesExpiringBetween(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	pass := randomPass()
	pass.DateOfExpiry = time.Date(2031, 7, 14, 0, 0, 0, 0, time.UTC)

	err := repo.CreatePass(ctx, pass)
	require.NoError(t, err)

	passes, err := repo.PassesExpiringBetween(ctx,
		time.Date(2031, 7, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2031, 7, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var found bool

	for _, p := range passes {
		if p.ID == pass.ID {
			found = true
		}
	}

	require.True(t, found)
}

func TestRepository_PassStats(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	pass := randomPass()
	pass.Category = entity.CategoryCargo
	pass.PhotoURL = ""

	err := repo.CreatePass(ctx, pass)
	require.NoError(t, err)

	stats, err := repo.PassStats(ctx,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.Total, 1)
	require.GreaterOrEqual(t, stats.Cargo, 1)
	require.GreaterOrEqual(t, stats.WithoutPhoto, 1)
	require.GreaterOrEqual(t, stats.ExpiringSoon, 1)
}

func randomPass() entity.Pass {
	return entity.Pass{
		ID:       uuid.Must(uuid.NewV4()),
		PassID:   uuid.Must(uuid.NewV4()).String(),
		Category: entity.CategoryCargo,
		CNIC: fmt.Sprintf("%05d-%07d-%d",
			rand.Intn(100000), rand.Intn(10000000), rand.Intn(10)), //nolint:gosec
		Name:         uuid.Must(uuid.NewV4()).String(),
		Designation:  "Loader",
		Organization: uuid.Must(uuid.NewV4()).String(),
		AreaAllowed:  []string{"Import Shed", "Export Shed"},
		DateOfEntry:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DateOfExpiry: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		PhotoURL:     "",
		AuthorID:     uuid.Must(uuid.NewV4()),
		CreatedAt:    time.Now().Truncate(time.Millisecond),
	}
}

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := postgres.Connect(context.Background(), os.Getenv("TEST_POSTGRES_DSN"), 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}
