package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

func TestService_NextPassID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		category  entity.Category
		storedIDs []string
		want      int
	}{
		{
			name:      "empty cargo registry starts above the paper watermark",
			category:  entity.CategoryCargo,
			storedIDs: nil,
			want:      1039,
		},
		{
			name:      "empty landside registry starts above the paper watermark",
			category:  entity.CategoryLandside,
			storedIDs: nil,
			want:      47,
		},
		{
			name:      "continues from the highest stored number",
			category:  entity.CategoryCargo,
			storedIDs: []string{"1039", "1041", "1040"},
			want:      1042,
		},
		{
			name:      "non-numeric legacy values are skipped",
			category:  entity.CategoryCargo,
			storedIDs: []string{"1040", "C-112", "", "legacy"},
			want:      1041,
		},
		{
			name:      "numbers below the watermark never lower the floor",
			category:  entity.CategoryLandside,
			storedIDs: []string{"3", "12"},
			want:      47,
		},
		{
			name:      "whitespace around stored numbers is tolerated",
			category:  entity.CategoryLandside,
			storedIDs: []string{" 48 "},
			want:      49,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t)

			ts.repo.EXPECT().PassIDsByCategory(gomock.Any(), tt.category).Return(tt.storedIDs, nil)

			got, err := ts.s.NextPassID(context.Background(), tt.category)
			r.NoError(err)
			r.Equal(tt.want, got)
		})
	}
}

func TestService_NextPassID_InvalidCategory(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	_, err := ts.s.NextPassID(context.Background(), entity.Category("airside"))
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)
}
