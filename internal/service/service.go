package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/metrics"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreatePass(ctx context.Context, pass entity.Pass) error
	CreatePasses(ctx context.Context, passes ...entity.Pass) error
	PassByID(ctx context.Context, id uuid.UUID) (entity.Pass, error)
	PassByCNIC(ctx context.Context, cnic string) (entity.Pass, error)
	PassesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Pass, error)
	PassIDsByCategory(ctx context.Context, category entity.Category) ([]string, error)
	PassKeys(ctx context.Context) ([]entity.PassKey, error)
	CNICExists(ctx context.Context, cnic string, excludeID uuid.UUID) (bool, error)
	PassIDExists(ctx context.Context, category entity.Category, passID string, excludeID uuid.UUID) (bool, error)
	UpdatePass(ctx context.Context, pass entity.Pass) error
	SetPhotoURL(ctx context.Context, id uuid.UUID, url string) error
	DeletePasses(ctx context.Context, ids []uuid.UUID) error
	PassesListByFilter(ctx context.Context, filter entity.PassesFilter) ([]entity.Pass, int, error)
	PassStats(ctx context.Context, now, expiringBefore time.Time) (entity.PassStats, error)
	PassesExpiringBetween(ctx context.Context, from, to time.Time) ([]entity.Pass, error)
}

type Assets interface {
	UploadPhoto(ctx context.Context, filename, contentType string, data io.Reader) (string, error)
}

type Events interface {
	PassCreated(ctx context.Context, pass entity.Pass)
	PassUpdated(ctx context.Context, pass entity.Pass)
	PassesDeleted(ctx context.Context, ids []uuid.UUID)
	PassesImported(ctx context.Context, succeeded, failed int)
	PassExpiring(ctx context.Context, pass entity.Pass)
}

type Service struct {
	repo         Repository
	assets       Assets
	events       Events
	metrics      *metrics.Metrics
	expiryWindow time.Duration
}

func New(
	repo Repository,
	assets Assets,
	events Events,
	m *metrics.Metrics,
	expiryWindow time.Duration,
) *Service {
	return &Service{
		repo:         repo,
		assets:       assets,
		events:       events,
		metrics:      m,
		expiryWindow: expiryWindow,
	}
}

// PhotoUpload carries an optional photo file attached to a create or update.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

func (s *Service) CreatePass(ctx context.Context, input entity.Pass, photo *PhotoUpload) (entity.Pass, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Pass{}, fmt.Errorf("get user from context: %w", err)
	}

	err = ValidatePass(input)
	if err != nil {
		return entity.Pass{}, err
	}

	err = s.checkCNICAvailable(ctx, input.CNIC, uuid.Nil)
	if err != nil {
		return entity.Pass{}, err
	}

	nextID, err := s.NextPassID(ctx, input.Category)
	if err != nil {
		return entity.Pass{}, err
	}

	input.PassID = strconv.Itoa(nextID)

	err = s.checkPassIDAvailable(ctx, input.Category, input.PassID, uuid.Nil)
	if err != nil {
		return entity.Pass{}, err
	}

	if photo != nil {
		url, err := s.assets.UploadPhoto(ctx, photo.Filename, photo.ContentType, photo.Data)
		if err != nil {
			return entity.Pass{}, fmt.Errorf("upload photo: %w", err)
		}

		input.PhotoURL = url
	}

	input.ID = uuid.Must(uuid.NewV4())
	input.AuthorID = user.ID
	input.CreatedAt = time.Now()

	err = s.repo.CreatePass(ctx, input)
	if err != nil {
		return entity.Pass{}, err
	}

	s.metrics.IncPassCreated(input.Category.String())
	s.events.PassCreated(ctx, input)

	slog.InfoContext(ctx, "pass created",
		"pass_id", input.PassID, "category", input.Category.String())

	return input, nil
}

// UpdatePass replaces every editable field of the record addressed by
// input.ID. A category change abandons the old pass number and allocates a
// fresh one in the new category.
func (s *Service) UpdatePass(ctx context.Context, input entity.Pass, photo *PhotoUpload) (entity.Pass, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Pass{}, fmt.Errorf("get user from context: %w", err)
	}

	err = ValidatePass(input)
	if err != nil {
		return entity.Pass{}, err
	}

	current, err := s.repo.PassByID(ctx, input.ID)
	if err != nil {
		return entity.Pass{}, err
	}

	if !user.IsAdmin() && current.AuthorID != user.ID {
		return entity.Pass{}, fmt.Errorf("%w: user %s is not admin or pass author", entity.ErrForbidden, user.ID)
	}

	input.PassID = current.PassID
	input.PhotoURL = current.PhotoURL
	input.AuthorID = current.AuthorID
	input.CreatedAt = current.CreatedAt

	if current.CNIC != input.CNIC {
		err = s.checkCNICAvailable(ctx, input.CNIC, input.ID)
		if err != nil {
			return entity.Pass{}, err
		}
	}

	if current.Category != input.Category {
		nextID, err := s.NextPassID(ctx, input.Category)
		if err != nil {
			return entity.Pass{}, err
		}

		input.PassID = strconv.Itoa(nextID)
	}

	if photo != nil {
		url, err := s.assets.UploadPhoto(ctx, photo.Filename, photo.ContentType, photo.Data)
		if err != nil {
			return entity.Pass{}, fmt.Errorf("upload photo: %w", err)
		}

		input.PhotoURL = url
	}

	err = s.repo.UpdatePass(ctx, input)
	if err != nil {
		return entity.Pass{}, err
	}

	s.events.PassUpdated(ctx, input)

	return input, nil
}

// DeletePasses removes the passes the acting user may delete (admin, or the
// pass author) and reports how many of the requested ids were skipped.
func (s *Service) DeletePasses(ctx context.Context, ids []uuid.UUID) (deleted, skipped int, err error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("get user from context: %w", err)
	}

	if len(ids) == 0 {
		return 0, 0, fmt.Errorf("%w: at least one id is required", entity.ErrIncorrectRequestBody)
	}

	passes, err := s.repo.PassesByIDs(ctx, ids)
	if err != nil {
		return 0, 0, err
	}

	if len(passes) == 0 {
		return 0, 0, fmt.Errorf("%w: no matching passes", entity.ErrNotFound)
	}

	permitted := make([]uuid.UUID, 0, len(passes))

	for _, pass := range passes {
		if user.IsAdmin() || pass.AuthorID == user.ID {
			permitted = append(permitted, pass.ID)
		}
	}

	if len(permitted) == 0 {
		return 0, 0, fmt.Errorf("%w: user %s may not delete any of the selected passes", entity.ErrForbidden, user.ID)
	}

	err = s.repo.DeletePasses(ctx, permitted)
	if err != nil {
		return 0, 0, err
	}

	s.events.PassesDeleted(ctx, permitted)

	slog.InfoContext(ctx, "passes deleted", "count", len(permitted))

	return len(permitted), len(ids) - len(permitted), nil
}

func (s *Service) GetPass(ctx context.Context, id uuid.UUID) (entity.Pass, error) {
	return s.repo.PassByID(ctx, id)
}

// PassesByIDs serves the print page, which renders a selected batch of cards.
func (s *Service) PassesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Pass, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one id is required", entity.ErrIncorrectRequestBody)
	}

	return s.repo.PassesByIDs(ctx, ids)
}

func (s *Service) GetPassesList(ctx context.Context, filter entity.PassesFilter) ([]entity.Pass, int, error) {
	return s.repo.PassesListByFilter(ctx, filter)
}

func (s *Service) Stats(ctx context.Context) (entity.PassStats, error) {
	now := time.Now()

	return s.repo.PassStats(ctx, now, now.Add(s.expiryWindow))
}

// AttachPhoto links an out-of-band uploaded photo to the pass holding the
// given CNIC. Called from the photo pipeline event handler.
func (s *Service) AttachPhoto(ctx context.Context, cnic, url string) error {
	pass, err := s.repo.PassByCNIC(ctx, cnic)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: no pass with CNIC %s", entity.ErrNotFound, cnic)
		}

		return err
	}

	err = s.repo.SetPhotoURL(ctx, pass.ID, url)
	if err != nil {
		return err
	}

	pass.PhotoURL = url
	s.events.PassUpdated(ctx, pass)

	return nil
}

// SweepExpiring publishes an expiring event for every pass whose expiry date
// falls within the configured window. Runs on a ticker from main.
func (s *Service) SweepExpiring(ctx context.Context) error {
	now := time.Now()

	passes, err := s.repo.PassesExpiringBetween(ctx, now, now.Add(s.expiryWindow))
	if err != nil {
		return fmt.Errorf("fetch expiring passes: %w", err)
	}

	for _, pass := range passes {
		s.events.PassExpiring(ctx, pass)
	}

	if len(passes) > 0 {
		slog.InfoContext(ctx, "expiring passes announced", "count", len(passes))
	}

	return nil
}
