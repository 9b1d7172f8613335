package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yossyi0323/App/internal/config"
	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/repositories"
	"github.com/yossyi0323/App/internal/utils"
)

type InventoryStatusService struct {
	cfg      *config.Config
	repo     repositories.InventoryStatusRepository
	calendar *utils.BusinessCalendar
	now      func() time.Time
}

func NewInventoryStatusService(
	cfg *config.Config,
	repo repositories.InventoryStatusRepository,
	calendar *utils.BusinessCalendar,
) *InventoryStatusService {
	return &InventoryStatusService{
		cfg:      cfg,
		repo:     repo,
		calendar: calendar,
		now:      time.Now,
	}
}

/* ------------------------------------------------------------------
   Reads
------------------------------------------------------------------ */

func (s *InventoryStatusService) List(ctx context.Context, f dtos.InventoryStatusFilter) ([]*models.InventoryStatus, error) {
	var (
		out []*models.InventoryStatus
		err error
	)
	switch {
	case f.DestinationID != nil:
		out, err = s.repo.ListByBusinessDateAndDestination(ctx, f.BusinessDate, *f.DestinationID)
	case f.SourceID != nil:
		out, err = s.repo.ListByBusinessDateAndSource(ctx, f.BusinessDate, *f.SourceID)
	default:
		out, err = s.repo.ListByBusinessDate(ctx, f.BusinessDate)
	}
	if err != nil {
		return nil, internalError("Failed to list inventory status", err)
	}
	return nonNil(out), nil
}

// ListPending returns the rows of date that still have work outstanding.
func (s *InventoryStatusService) ListPending(ctx context.Context, date models.BusinessDate) ([]*models.InventoryStatus, error) {
	out, err := s.repo.ListPending(ctx, date)
	if err != nil {
		return nil, internalError("Failed to list pending inventory status", err)
	}
	return nonNil(out), nil
}

func (s *InventoryStatusService) Get(ctx context.Context, id uuid.UUID) (*models.InventoryStatus, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch inventory status", err)
	}
	if st == nil {
		return nil, notFound("Inventory status")
	}
	return st, nil
}

/* ------------------------------------------------------------------
   Writes
------------------------------------------------------------------ */

// Save creates when req has no ID and otherwise applies the fields present
// in req on top of the stored row, guarded by req.Version.
func (s *InventoryStatusService) Save(ctx context.Context, req dtos.InventoryStatusRequest) (*models.InventoryStatus, error) {
	return save(ctx, s.repo, req)
}

// SaveBulk saves every request in one transaction. The first failure rolls
// back the whole batch and is returned as is.
func (s *InventoryStatusService) SaveBulk(ctx context.Context, reqs []dtos.InventoryStatusRequest) ([]*models.InventoryStatus, error) {
	out := make([]*models.InventoryStatus, 0, len(reqs))
	err := s.repo.RunInTx(ctx, func(tx repositories.InventoryStatusRepository) error {
		for i, req := range reqs {
			saved, err := save(ctx, tx, req)
			if err != nil {
				utils.Logger.WithError(err).Warnf("Bulk inventory save aborted at index %d", i)
				return err
			}
			out = append(out, saved)
		}
		return nil
	})
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, internalError("Failed to save inventory status", err)
	}
	return out, nil
}

func save(ctx context.Context, repo repositories.InventoryStatusRepository, req dtos.InventoryStatusRequest) (*models.InventoryStatus, error) {
	if req.ID == nil {
		st := models.NewDefaultInventoryStatus(utils.Val(req.BusinessDate), utils.Val(req.ItemID))
		applyInventoryRequest(st, req)
		created, err := repo.Create(ctx, st)
		if err != nil {
			return nil, writeError("Inventory status", err)
		}
		return created, nil
	}

	current, err := repo.GetByID(ctx, *req.ID)
	if err != nil {
		return nil, internalError("Failed to fetch inventory status", err)
	}
	if current == nil {
		return nil, versionConflict[models.InventoryStatus](nil)
	}
	expected := utils.Val(req.Version)
	applyInventoryRequest(current, req)

	updated, err := repo.Update(ctx, current, expected)
	if errors.Is(err, utils.ErrRowVersionConflict) {
		latest, rerr := repo.GetByID(ctx, *req.ID)
		if rerr != nil {
			utils.Logger.WithError(rerr).WithField("inventory_status_id", *req.ID).Warn("Failed to re-read inventory status after version conflict")
		}
		return nil, versionConflict(latest)
	}
	if err != nil {
		return nil, writeError("Inventory status", err)
	}
	return updated, nil
}

// applyInventoryRequest copies the mutable fields present in req. Business
// date and item are fixed once the row exists.
func applyInventoryRequest(st *models.InventoryStatus, req dtos.InventoryStatusRequest) {
	if req.InventoryCheckStatus != nil {
		st.InventoryCheckStatus = models.InventoryCheckStatus(*req.InventoryCheckStatus)
	}
	if req.ReplenishmentStatus != nil {
		st.ReplenishmentStatus = models.ProgressStatus(*req.ReplenishmentStatus)
	}
	if req.PreparationStatus != nil {
		st.PreparationStatus = models.ProgressStatus(*req.PreparationStatus)
	}
	if req.OrderRequestStatus != nil {
		st.OrderRequestStatus = models.ProgressStatus(*req.OrderRequestStatus)
	}
	if req.InventoryCount != nil {
		st.InventoryCount = *req.InventoryCount
	}
	if req.ReplenishmentCount != nil {
		st.ReplenishmentCount = *req.ReplenishmentCount
	}
	if req.ReplenishmentNote != nil {
		st.ReplenishmentNote = strings.TrimSpace(*req.ReplenishmentNote)
	}
}

// Delete is idempotent.
func (s *InventoryStatusService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internalError("Failed to delete inventory status", err)
	}
	return nil
}

/* ------------------------------------------------------------------
   Business date preparation
------------------------------------------------------------------ */

// NextBusinessDate is the date the nightly job prepares for, relative to
// today in the business time zone.
func (s *InventoryStatusService) NextBusinessDate() (models.BusinessDate, error) {
	today := s.calendar.Today(s.now())
	next, err := s.calendar.NextBusinessDate(today, s.cfg.LDFlag_SkipClosedBusinessDays)
	if err != nil {
		return models.BusinessDate{}, err
	}
	return models.NewBusinessDate(next), nil
}

// PrepareNextBusinessDate creates default rows for the next business date.
func (s *InventoryStatusService) PrepareNextBusinessDate(ctx context.Context) (*dtos.PrepareResponse, error) {
	date, err := s.NextBusinessDate()
	if err != nil {
		return nil, internalError("Failed to resolve next business date", err)
	}
	return s.PrepareForDate(ctx, date)
}

// PrepareForDate creates a default row for every routed item that has none
// on date. Running it twice creates nothing the second time.
func (s *InventoryStatusService) PrepareForDate(ctx context.Context, date models.BusinessDate) (*dtos.PrepareResponse, error) {
	if date.IsZero() {
		return nil, validationError(fmt.Sprintf("businessDate is required (%s)", models.BusinessDateLayout))
	}
	n, err := s.repo.CreateDefaultsForDate(ctx, date)
	if err != nil {
		return nil, internalError("Failed to prepare inventory status", err)
	}
	utils.Logger.WithField("businessDate", date.String()).Infof("Prepared %d inventory status rows", n)
	return &dtos.PrepareResponse{BusinessDate: date, Created: n}, nil
}
