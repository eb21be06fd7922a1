package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

// baseOffsets is the watermark of the paper registry each category continued
// from. Allocation never goes below offset+1, even if every digital record
// for the category has been deleted.
var baseOffsets = map[entity.Category]int{
	entity.CategoryCargo:    1038,
	entity.CategoryLandside: 46,
}

// NextPassID computes the next pass number for a category by scanning every
// stored pass_id value. Non-numeric legacy values are skipped. The read is
// not locked against concurrent allocations; the unique index on
// (category, pass_id) catches the losing writer.
func (s *Service) NextPassID(ctx context.Context, category entity.Category) (int, error) {
	if !category.IsValid() {
		return 0, fmt.Errorf("%w: category %q", entity.ErrIncorrectRequestBody, category)
	}

	raw, err := s.repo.PassIDsByCategory(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("fetch pass ids: %w", err)
	}

	highest := 0

	for _, v := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}

		if n > highest {
			highest = n
		}
	}

	if base := baseOffsets[category]; highest < base {
		highest = base
	}

	return highest + 1, nil
}
