package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/service"
)

func TestValidatePass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(p *entity.Pass)
		wantErr bool
	}{
		{
			name:   "valid pass",
			mutate: func(p *entity.Pass) {},
		},
		{
			name:    "name too short",
			mutate:  func(p *entity.Pass) { p.Name = "Al" },
			wantErr: true,
		},
		{
			name:    "name of only whitespace",
			mutate:  func(p *entity.Pass) { p.Name = "      " },
			wantErr: true,
		},
		{
			name:    "missing designation",
			mutate:  func(p *entity.Pass) { p.Designation = "" },
			wantErr: true,
		},
		{
			name:    "missing organization",
			mutate:  func(p *entity.Pass) { p.Organization = "" },
			wantErr: true,
		},
		{
			name:    "unknown category",
			mutate:  func(p *entity.Pass) { p.Category = "airside" },
			wantErr: true,
		},
		{
			name:    "cnic without dashes",
			mutate:  func(p *entity.Pass) { p.CNIC = "3520212345671" },
			wantErr: true,
		},
		{
			name:    "cnic with short middle group",
			mutate:  func(p *entity.Pass) { p.CNIC = "35202-123456-1" },
			wantErr: true,
		},
		{
			name:    "no areas selected",
			mutate:  func(p *entity.Pass) { p.AreaAllowed = nil },
			wantErr: true,
		},
		{
			name:    "zero entry date",
			mutate:  func(p *entity.Pass) { p.DateOfEntry = time.Time{} },
			wantErr: true,
		},
		{
			name:    "zero expiry date",
			mutate:  func(p *entity.Pass) { p.DateOfExpiry = time.Time{} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			pass := validPass()
			tt.mutate(&pass)

			err := service.ValidatePass(pass)
			if tt.wantErr {
				r.ErrorIs(err, entity.ErrIncorrectRequestBody)
			} else {
				r.NoError(err)
			}
		})
	}
}
