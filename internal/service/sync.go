package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"planner-backend/internal/allocation"
	"planner-backend/internal/audit"
	"planner-backend/internal/conflict"
	"planner-backend/internal/delta"
	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/hierarchy"
	"planner-backend/internal/logger"
	"planner-backend/internal/metrics"
	"planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const resultOK = "ok"

// SyncOptions tunes the sync service
type SyncOptions struct {
	// Timeout bounds one change-set from authorization to commit
	Timeout time.Duration
	// EnforceBaseVersion rejects change-sets built on an outdated version
	EnforceBaseVersion bool
}

// SyncService applies change-sets to projects. Each change-set is validated
// and authorized before a transaction opens, then written in plan order
// inside one transaction together with the version bump.
type SyncService struct {
	uow        repository.UnitOfWorkInterface
	repos      *repository.Repositories
	authorizer *ProjectAuthorizer
	applier    *DeltaApplier
	versions   *VersionController
	validator  *validator.Validate
	audit      audit.DispatcherInterface
	timeout    time.Duration
}

// NewSyncService creates a new sync service. repos is used outside
// transactions for authorization and read-only checks.
func NewSyncService(uow repository.UnitOfWorkInterface, repos *repository.Repositories, validator *validator.Validate, dispatcher audit.DispatcherInterface, opts SyncOptions) *SyncService {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &SyncService{
		uow:        uow,
		repos:      repos,
		authorizer: NewProjectAuthorizer(repos.Projects),
		applier:    NewDeltaApplier(),
		versions:   NewVersionController(opts.EnforceBaseVersion),
		validator:  validator,
		audit:      dispatcher,
		timeout:    opts.Timeout,
	}
}

// DeltaResponse is returned after a change-set commits
type DeltaResponse struct {
	ProjectID string               `json:"projectId" example:"0b6f3c1e-3c49-4c57-9b0e-1f7f2f6f9a10"`
	Version   int64                `json:"version" example:"42"`
	UpdatedAt time.Time            `json:"updatedAt"`
	StaleBase bool                 `json:"staleBase"`
	Warnings  []allocation.Warning `json:"warnings"`
	Timings   Timings              `json:"timings"`
	Counts    map[string]int64     `json:"counts"`
}

// Timings reports where the time of a change-set went
type Timings struct {
	TransactionMs int64 `json:"transactionMs"`
	TotalMs       int64 `json:"totalMs"`
}

// HierarchyCheckResponse tells the client whether a reporting line may be set
type HierarchyCheckResponse struct {
	ResourceID string   `json:"resourceId"`
	ManagerID  string   `json:"managerId"`
	Allowed    bool     `json:"allowed"`
	Path       []string `json:"path,omitempty"`
	Corrupt    bool     `json:"corrupt,omitempty"`
	Reason     string   `json:"reason,omitempty"`
}

type applyOutcome struct {
	counts    map[string]int64
	warnings  []allocation.Warning
	staleBase bool
	version   int64
	updatedAt time.Time
}

// ApplyDelta validates, authorizes and applies cs to the project
func (s *SyncService) ApplyDelta(ctx context.Context, userID, projectID string, cs *delta.ChangeSet) (*DeltaResponse, error) {
	start := time.Now()
	log := logger.WithContext(ctx).WithProject(projectID)

	if err := delta.Validate(s.validator, cs); err != nil {
		metrics.ObserveApply(apperrors.KindValidation, 0, 0)
		return nil, err
	}
	if _, err := s.authorizer.AuthorizeWrite(ctx, userID, projectID); err != nil {
		metrics.ObserveApply(apperrors.KindOf(err), 0, 0)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var outcome applyOutcome
	txStart := time.Now()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		project, err := repos.Projects.GetForUpdate(ctx, projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to load project %s: %w", projectID, err)
		}

		stale, err := s.versions.CheckBase(project.Version, cs.BaseVersion)
		if err != nil {
			return err
		}
		outcome.staleBase = stale

		if cs.IsEmpty() {
			// nothing to write: report the current state without a new version
			outcome.counts = zeroCounts()
			outcome.version = project.Version
			outcome.updatedAt = project.UpdatedAt
			return nil
		}

		counts, err := s.applier.Apply(ctx, repos, projectID, cs)
		if err != nil {
			return err
		}
		warnings, err := s.applier.Warnings(ctx, repos.Phases, projectID, cs)
		if err != nil {
			return err
		}
		updated, err := s.versions.Bump(ctx, repos.Projects, projectID)
		if err != nil {
			return err
		}

		outcome.counts = counts
		outcome.warnings = warnings
		outcome.version = updated.Version
		outcome.updatedAt = updated.UpdatedAt
		return nil
	})
	txDuration := time.Since(txStart)

	if err != nil {
		resolved := conflict.Resolve(err)
		kind := apperrors.KindOf(resolved)
		metrics.ObserveApply(kind, txDuration, 0)
		if staleRejected(resolved) {
			metrics.ObserveStaleBase(true)
		}
		entry := log.WithError(err).WithField("kind", kind)
		if kind == apperrors.KindInternal {
			entry.Error("change-set failed")
		} else {
			entry.Info("change-set rejected")
		}
		return nil, resolved
	}

	if outcome.staleBase {
		metrics.ObserveStaleBase(false)
		log.WithFields(map[string]interface{}{
			"base_version": *cs.BaseVersion,
			"version":      outcome.version,
		}).Warn("change-set was built on an outdated project version")
	}
	records := 0
	for _, n := range outcome.counts {
		records += int(n)
	}
	metrics.ObserveApply(resultOK, txDuration, records)
	metrics.ObserveWarnings(len(outcome.warnings))

	if !cs.IsEmpty() && s.audit != nil {
		s.audit.Dispatch(ctx, audit.Entry{
			ProjectID: projectID,
			UserID:    userID,
			RequestID: logger.RequestIDFromContext(ctx),
			Version:   outcome.version,
			StaleBase: outcome.staleBase,
			Counts:    outcome.counts,
			Warnings:  len(outcome.warnings),
		})
	}

	warnings := outcome.warnings
	if warnings == nil {
		warnings = []allocation.Warning{}
	}
	log.WithFields(map[string]interface{}{
		"version":  outcome.version,
		"records":  records,
		"warnings": len(warnings),
		"tx_ms":    txDuration.Milliseconds(),
	}).Info("change-set applied")

	return &DeltaResponse{
		ProjectID: projectID,
		Version:   outcome.version,
		UpdatedAt: outcome.updatedAt,
		StaleBase: outcome.staleBase,
		Warnings:  warnings,
		Timings: Timings{
			TransactionMs: txDuration.Milliseconds(),
			TotalMs:       time.Since(start).Milliseconds(),
		},
		Counts: outcome.counts,
	}, nil
}

// CheckHierarchy reports whether resourceID may report to managerID given
// the stored reporting lines of the project.
func (s *SyncService) CheckHierarchy(ctx context.Context, userID, projectID, resourceID, managerID string) (*HierarchyCheckResponse, error) {
	var violations []apperrors.FieldViolation
	if resourceID == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "resourceId", Rule: "required", Message: "is required"})
	}
	if managerID == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "managerId", Rule: "required", Message: "is required"})
	}
	if len(violations) > 0 {
		return nil, apperrors.NewValidationErrors(violations)
	}

	if _, err := s.authorizer.AuthorizeWrite(ctx, userID, projectID); err != nil {
		return nil, err
	}

	edges, err := s.repos.Resources.ListHierarchy(ctx, projectID)
	if err != nil {
		return nil, conflict.Resolve(fmt.Errorf("failed to load resource hierarchy: %w", err))
	}

	resp := &HierarchyCheckResponse{ResourceID: resourceID, ManagerID: managerID, Allowed: true}
	forest := hierarchy.NewForest(edges)
	// the current edge of the resource is the one being replaced
	forest.Set(resourceID, nil)
	if err := forest.Check(resourceID, managerID); err != nil {
		var cycle *apperrors.HierarchyCycleError
		if !errors.As(err, &cycle) {
			return nil, err
		}
		resp.Allowed = false
		resp.Path = cycle.Path
		resp.Corrupt = cycle.Corrupt
		resp.Reason = cycle.Error()
	}
	return resp, nil
}

func zeroCounts() map[string]int64 {
	counts := make(map[string]int64)
	for _, step := range delta.Plan() {
		counts[step.String()] = 0
	}
	return counts
}

func staleRejected(err error) bool {
	var conflictErr *apperrors.ConflictError
	return errors.As(err, &conflictErr) && conflictErr.Kind == apperrors.KindStaleVersion
}
