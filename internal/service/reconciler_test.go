package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

func importRow(category, cnic string) entity.ImportRow {
	return entity.ImportRow{
		Name:         "Ahmed Khan",
		Category:     category,
		Designation:  "Loader",
		Organization: "Cargo Services Ltd",
		CNIC:         cnic,
		AreaAllowed:  "Import Shed, Export Shed",
		DateOfEntry:  "2026-01-01",
		DateOfExpiry: "2026-12-31",
	}
}

func editorCtx() context.Context {
	return ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEditor})
}

func TestService_BulkImport(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	existingCNIC := "35202-0000001-1"

	badRow := importRow("cargo", "not-a-cnic")

	rows := []entity.ImportRow{
		importRow("cargo", "35202-1111111-1"),
		importRow("cargo", existingCNIC),
		badRow,
		importRow("landside", "35202-2222222-2"),
		importRow("cargo", "35202-1111111-1"),
	}

	ts.repo.EXPECT().PassKeys(gomock.Any()).Return([]entity.PassKey{
		{Category: entity.CategoryCargo, PassID: "1040", CNIC: existingCNIC},
	}, nil)
	ts.repo.EXPECT().PassIDsByCategory(gomock.Any(), entity.CategoryCargo).Return([]string{"1040"}, nil)
	ts.repo.EXPECT().PassIDsByCategory(gomock.Any(), entity.CategoryLandside).Return(nil, nil)

	var staged []entity.Pass

	ts.repo.EXPECT().CreatePasses(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, passes ...entity.Pass) error {
			staged = passes
			return nil
		})
	ts.events.EXPECT().PassesImported(gomock.Any(), 2, 3)

	report, err := ts.s.BulkImport(editorCtx(), rows)
	r.NoError(err)
	r.Equal(2, report.Succeeded)
	r.Equal(3, report.Failed)
	r.Len(report.Results, len(rows))

	// The report preserves input order; row numbers account for the header.
	for i, result := range report.Results {
		r.Equal(i+2, result.Row)
	}

	r.Equal(entity.RowStatusSuccess, report.Results[0].Status)
	r.Equal(1041, report.Results[0].PassID)

	r.Equal(entity.RowStatusError, report.Results[1].Status)
	r.Contains(report.Results[1].Message, "CNIC")

	r.Equal(entity.RowStatusError, report.Results[2].Status)
	r.Contains(report.Results[2].Message, "CNIC")

	r.Equal(entity.RowStatusSuccess, report.Results[3].Status)
	r.Equal(47, report.Results[3].PassID)

	// Same CNIC as an earlier accepted row.
	r.Equal(entity.RowStatusError, report.Results[4].Status)

	r.Len(staged, 2)
	r.Equal("1041", staged[0].PassID)
	r.Equal(entity.CategoryCargo, staged[0].Category)
	r.Equal("47", staged[1].PassID)
	r.Equal(entity.CategoryLandside, staged[1].Category)
}

func TestService_BulkImport_NothingAcceptedSkipsCommit(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	rows := []entity.ImportRow{
		importRow("cargo", "not-a-cnic"),
		importRow("unknown", "35202-1111111-1"),
	}

	ts.repo.EXPECT().PassKeys(gomock.Any()).Return(nil, nil)

	report, err := ts.s.BulkImport(editorCtx(), rows)
	r.NoError(err)
	r.Equal(0, report.Succeeded)
	r.Equal(2, report.Failed)
}

func TestService_BulkImport_CommitFailureReturnsReport(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	rows := []entity.ImportRow{
		importRow("cargo", "35202-1111111-1"),
	}

	ts.repo.EXPECT().PassKeys(gomock.Any()).Return(nil, nil)
	ts.repo.EXPECT().PassIDsByCategory(gomock.Any(), entity.CategoryCargo).Return(nil, nil)
	ts.repo.EXPECT().CreatePasses(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	report, err := ts.s.BulkImport(editorCtx(), rows)
	r.Error(err)
	r.Equal(1, report.Succeeded)
	r.Len(report.Results, 1)
	r.Equal(entity.RowStatusSuccess, report.Results[0].Status)
}

func TestService_BulkImport_EmptyBatch(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	_, err := ts.s.BulkImport(editorCtx(), nil)
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)
}

func TestService_BulkImport_NoUser(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	_, err := ts.s.BulkImport(context.Background(), []entity.ImportRow{importRow("cargo", "35202-1111111-1")})
	r.Error(err)
}

func TestService_HistoricalImport(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	taken := importRow("landside", "35202-3333333-3")
	taken.PassID = "46"

	fresh := importRow("landside", "35202-4444444-4")
	fresh.PassID = "500"

	duplicateNumber := importRow("landside", "35202-5555555-5")
	duplicateNumber.PassID = "500"

	duplicateCNIC := importRow("landside", "35202-4444444-4")
	duplicateCNIC.PassID = "501"

	unnumbered := importRow("landside", "35202-6666666-6")

	rows := []entity.ImportRow{taken, fresh, duplicateNumber, duplicateCNIC, unnumbered}

	ts.repo.EXPECT().PassKeys(gomock.Any()).Return([]entity.PassKey{
		{Category: entity.CategoryLandside, PassID: "46", CNIC: "35202-0000002-2"},
	}, nil)

	var staged []entity.Pass

	ts.repo.EXPECT().CreatePasses(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, passes ...entity.Pass) error {
			staged = passes
			return nil
		})
	ts.events.EXPECT().PassesImported(gomock.Any(), 1, 4)

	report, err := ts.s.HistoricalImport(editorCtx(), rows)
	r.NoError(err)
	r.Equal(1, report.Succeeded)
	r.Equal(4, report.Failed)

	r.Equal(entity.RowStatusError, report.Results[0].Status)
	r.Contains(report.Results[0].Message, "Pass ID 46 already exists")

	r.Equal(entity.RowStatusSuccess, report.Results[1].Status)
	r.Equal(500, report.Results[1].PassID)

	r.Equal(entity.RowStatusError, report.Results[2].Status)
	r.Contains(report.Results[2].Message, "Pass ID 500 already exists")

	r.Equal(entity.RowStatusError, report.Results[3].Status)
	r.Contains(report.Results[3].Message, "CNIC")

	r.Equal(entity.RowStatusError, report.Results[4].Status)
	r.Contains(report.Results[4].Message, "positive number")

	r.Len(staged, 1)
	r.Equal("500", staged[0].PassID)
}
