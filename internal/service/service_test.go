package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/mocks"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/service"
)

type TestService struct {
	repo   *mocks.MockRepository
	assets *mocks.MockAssets
	events *mocks.MockEvents
	s      *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRepository(ctrl)
	mockAssets := mocks.NewMockAssets(ctrl)
	mockEvents := mocks.NewMockEvents(ctrl)

	s := service.New(mockRepo, mockAssets, mockEvents, nil, 30*24*time.Hour)

	return &TestService{
		repo:   mockRepo,
		assets: mockAssets,
		events: mockEvents,
		s:      s,
	}
}

func ctxWithUser(user entity.User) context.Context {
	return entity.SetUserToContext(context.Background(), user)
}

func validPass() entity.Pass {
	return entity.Pass{
		Category:     entity.CategoryCargo,
		CNIC:         "35202-1234567-1",
		Name:         "Ahmed Khan",
		Designation:  "Loader",
		Organization: "Cargo Services Ltd",
		AreaAllowed:  []string{"Import Shed", "Export Shed"},
		DateOfEntry:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DateOfExpiry: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_CreatePass(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEditor}
	ctx := ctxWithUser(user)
	input := validPass()

	ts.repo.EXPECT().CNICExists(gomock.Any(), input.CNIC, uuid.Nil).Return(false, nil)
	ts.repo.EXPECT().PassIDsByCategory(gomock.Any(), entity.CategoryCargo).Return([]string{"1039", "1040"}, nil)
	ts.repo.EXPECT().PassIDExists(gomock.Any(), entity.CategoryCargo, "1041", uuid.Nil).Return(false, nil)
	ts.repo.EXPECT().CreatePass(gomock.Any(), gomock.Any()).Return(nil)
	ts.events.EXPECT().PassCreated(gomock.Any(), gomock.Any())

	created, err := ts.s.CreatePass(ctx, input, nil)
	r.NoError(err)
	r.Equal("1041", created.PassID)
	r.Equal(user.ID, created.AuthorID)
	r.False(created.ID.IsNil())
	r.False(created.CreatedAt.IsZero())
}

func TestService_CreatePass_CNICConflict(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEditor})
	input := validPass()

	ts.repo.EXPECT().CNICExists(gomock.Any(), input.CNIC, uuid.Nil).Return(true, nil)

	_, err := ts.s.CreatePass(ctx, input, nil)
	r.ErrorIs(err, entity.ErrAlreadyExists)
}

func TestService_CreatePass_InvalidBody(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEditor})

	input := validPass()
	input.CNIC = "35202-1234567"

	_, err := ts.s.CreatePass(ctx, input, nil)
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)
}

func TestService_CreatePass_NoUser(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	_, err := ts.s.CreatePass(context.Background(), validPass(), nil)
	r.Error(err)
}

func TestService_UpdatePass_Forbidden(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEditor})

	input := validPass()
	input.ID = uuid.Must(uuid.NewV4())

	current := validPass()
	current.ID = input.ID
	current.AuthorID = uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().PassByID(gomock.Any(), input.ID).Return(current, nil)

	_, err := ts.s.UpdatePass(ctx, input, nil)
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_UpdatePass_AdminOverridesAuthor(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin})

	input := validPass()
	input.ID = uuid.Must(uuid.NewV4())
	input.Name = "Renamed Holder"

	current := validPass()
	current.ID = input.ID
	current.PassID = "1040"
	current.AuthorID = uuid.Must(uuid.NewV4())
	current.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ts.repo.EXPECT().PassByID(gomock.Any(), input.ID).Return(current, nil)
	ts.repo.EXPECT().UpdatePass(gomock.Any(), gomock.Any()).Return(nil)
	ts.events.EXPECT().PassUpdated(gomock.Any(), gomock.Any())

	updated, err := ts.s.UpdatePass(ctx, input, nil)
	r.NoError(err)
	r.Equal("Renamed Holder", updated.Name)
	r.Equal(current.PassID, updated.PassID)
	r.Equal(current.AuthorID, updated.AuthorID)
	r.Equal(current.CreatedAt, updated.CreatedAt)
}

func TestService_UpdatePass_CategoryChangeReallocates(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEditor}
	ctx := ctxWithUser(user)

	current := validPass()
	current.ID = uuid.Must(uuid.NewV4())
	current.PassID = "1040"
	current.AuthorID = user.ID

	input := current
	input.Category = entity.CategoryLandside

	ts.repo.EXPECT().PassByID(gomock.Any(), input.ID).Return(current, nil)
	ts.repo.EXPECT().PassIDsByCategory(gomock.Any(), entity.CategoryLandside).Return(nil, nil)

	var saved entity.Pass

	ts.repo.EXPECT().UpdatePass(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, pass entity.Pass) error {
			saved = pass
			return nil
		})
	ts.events.EXPECT().PassUpdated(gomock.Any(), gomock.Any())

	updated, err := ts.s.UpdatePass(ctx, input, nil)
	r.NoError(err)
	r.Equal("47", updated.PassID)
	r.Equal("47", saved.PassID)
	r.Equal(entity.CategoryLandside, saved.Category)
}

func TestService_DeletePasses(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEditor}
	ctx := ctxWithUser(user)

	ownPass := validPass()
	ownPass.ID = uuid.Must(uuid.NewV4())
	ownPass.AuthorID = user.ID

	otherPass := validPass()
	otherPass.ID = uuid.Must(uuid.NewV4())
	otherPass.AuthorID = uuid.Must(uuid.NewV4())

	ids := []uuid.UUID{ownPass.ID, otherPass.ID}

	ts.repo.EXPECT().PassesByIDs(gomock.Any(), ids).Return([]entity.Pass{ownPass, otherPass}, nil)
	ts.repo.EXPECT().DeletePasses(gomock.Any(), []uuid.UUID{ownPass.ID}).Return(nil)
	ts.events.EXPECT().PassesDeleted(gomock.Any(), []uuid.UUID{ownPass.ID})

	deleted, skipped, err := ts.s.DeletePasses(ctx, ids)
	r.NoError(err)
	r.Equal(1, deleted)
	r.Equal(1, skipped)
}

func TestService_DeletePasses_NonePermitted(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleViewer})

	pass := validPass()
	pass.ID = uuid.Must(uuid.NewV4())
	pass.AuthorID = uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().PassesByIDs(gomock.Any(), []uuid.UUID{pass.ID}).Return([]entity.Pass{pass}, nil)

	_, _, err := ts.s.DeletePasses(ctx, []uuid.UUID{pass.ID})
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_AttachPhoto(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	pass := validPass()
	pass.ID = uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().PassByCNIC(gomock.Any(), pass.CNIC).Return(pass, nil)
	ts.repo.EXPECT().SetPhotoURL(gomock.Any(), pass.ID, "https://cdn.example.com/p.jpg").Return(nil)
	ts.events.EXPECT().PassUpdated(gomock.Any(), gomock.Any())

	err := ts.s.AttachPhoto(context.Background(), pass.CNIC, "https://cdn.example.com/p.jpg")
	r.NoError(err)
}

func TestService_AttachPhoto_UnknownCNIC(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().PassByCNIC(gomock.Any(), "35202-0000000-1").Return(entity.Pass{}, entity.ErrNotFound)

	err := ts.s.AttachPhoto(context.Background(), "35202-0000000-1", "https://cdn.example.com/p.jpg")
	r.ErrorIs(err, entity.ErrNotFound)
}
