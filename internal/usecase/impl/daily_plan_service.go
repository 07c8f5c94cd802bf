package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "github.com/Yakorrr/merchandising-management-system/internal/delivery/context"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/reconcile"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const parentDailyPlan = "daily_plan"

// dailyPlanService implements the DailyPlanUsecase interface.
type dailyPlanService struct {
	txManager repository.TransactionManager
	planRepo  repository.DailyPlanRepository
	userRepo  repository.UserRepository
	validator *childValidator
	audit     *auditTrail
	observer  service.ReconcileObserver
	logger    *slog.Logger
	now       func() time.Time
}

// DailyPlanServiceParams holds dependencies for DailyPlanService, injected by Fx.
type DailyPlanServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PlanRepo    repository.DailyPlanRepository
	UserRepo    repository.UserRepository
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Observer    service.ReconcileObserver `optional:"true"`
	Logger      *slog.Logger
}

// NewDailyPlanService is the constructor for dailyPlanService.
func NewDailyPlanService(params DailyPlanServiceParams) usecase.DailyPlanUsecase {
	return &dailyPlanService{
		txManager: params.TxManager,
		planRepo:  params.PlanRepo,
		userRepo:  params.UserRepo,
		validator: newChildValidator(params.ProductRepo, params.StoreRepo),
		audit:     newAuditTrail(params.Publisher, params.Logger),
		observer:  params.Observer,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dailyPlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePlan persists the plan and its full visit list in one transaction. Managers only.
func (srv *dailyPlanService) CreatePlan(ctx context.Context, actor usecase.Actor, input usecase.CreateDailyPlanInput) (*entity.DailyPlan, error) {
	if !actor.IsManager() {
		return nil, domainerrors.ErrForbidden
	}
	if input.PlanDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("plan_date is required")
	}
	if err := srv.ensureMerchandiser(ctx, input.MerchandiserID); err != nil {
		return nil, err
	}

	start := time.Now()
	entries, err := srv.validator.PlanVisits(ctx, input.Visits)
	if err == nil {
		err = reconcile.CheckTarget(entries, planVisitKeys)
	}
	if err != nil {
		srv.observe(start, nil, err)

		return nil, err
	}

	srv.log(ctx).Info("Creating daily plan",
		slog.Any("merchandiser_id", input.MerchandiserID),
		slog.Time("plan_date", input.PlanDate),
		slog.Int("visits", len(entries)),
	)

	plan := &entity.DailyPlan{
		ID:             uuid.Must(uuid.NewV7()),
		MerchandiserID: input.MerchandiserID,
		PlanDate:       calendarDate(input.PlanDate),
		Notes:          input.Notes,
	}

	var logEntry *entity.AuditLog
	result, err := srv.saveVisits(ctx, plan, entries, true, func(plans repository.DailyPlanRepository) error {
		return plans.CreatePlan(ctx, plan)
	}, func(result *reconcile.Result[*entity.PlanVisit]) *entity.AuditLog {
		logEntry = newAuditLog(actor, entity.AuditDailyPlanCreated, map[string]any{
			"daily_plan_id":   plan.ID.String(),
			"merchandiser_id": plan.MerchandiserID.String(),
			"plan_date":       plan.PlanDate.Format(time.DateOnly),
			"visits_count":    len(result.Children),
		})

		return logEntry
	})
	srv.observe(start, result, err)
	if err != nil {
		srv.log(ctx).Error("Failed to create daily plan", slog.Any("error", err))

		return nil, txError(err, "failed to create daily plan")
	}

	srv.audit.publish(ctx, logEntry)

	return srv.planRepo.FindPlanByID(ctx, plan.ID)
}

// UpdatePlan writes header changes and reconciles the visits when given. Managers only.
func (srv *dailyPlanService) UpdatePlan(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateDailyPlanInput) (*entity.DailyPlan, error) {
	if !actor.IsManager() {
		return nil, domainerrors.ErrForbidden
	}
	if input.MerchandiserID != nil {
		if err := srv.ensureMerchandiser(ctx, *input.MerchandiserID); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	var entries []reconcile.Entry[entity.PlanVisitSpec]
	if input.Visits != nil {
		var err error
		entries, err = srv.validator.PlanVisits(ctx, input.Visits)
		if err == nil {
			err = reconcile.CheckTarget(entries, planVisitKeys)
		}
		if err != nil {
			srv.observe(start, nil, err)

			return nil, err
		}
	}

	srv.log(ctx).Info("Updating daily plan", slog.Any("daily_plan_id", id), slog.Bool("replace_visits", input.Visits != nil))

	plan := &entity.DailyPlan{ID: id}
	var logEntry *entity.AuditLog
	result, err := srv.saveVisits(ctx, plan, entries, input.Visits != nil, func(plans repository.DailyPlanRepository) error {
		current, err := plans.LockPlanByID(ctx, id)
		if err != nil {
			return err
		}

		*plan = *current
		if input.MerchandiserID != nil {
			plan.MerchandiserID = *input.MerchandiserID
		}
		if input.PlanDate != nil {
			plan.PlanDate = calendarDate(*input.PlanDate)
		}
		if input.Notes != nil {
			plan.Notes = *input.Notes
		}

		return plans.UpdatePlan(ctx, plan)
	}, func(result *reconcile.Result[*entity.PlanVisit]) *entity.AuditLog {
		details := map[string]any{
			"daily_plan_id":   plan.ID.String(),
			"merchandiser_id": plan.MerchandiserID.String(),
			"plan_date":       plan.PlanDate.Format(time.DateOnly),
		}
		if result != nil {
			details["visits_created"] = result.Created
			details["visits_updated"] = result.Updated
			details["visits_deleted"] = result.Deleted
		}
		logEntry = newAuditLog(actor, entity.AuditDailyPlanUpdated, details)

		return logEntry
	})
	if input.Visits != nil {
		srv.observe(start, result, err)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to update daily plan", slog.Any("error", err), slog.Any("daily_plan_id", id))

		return nil, txError(err, "failed to update daily plan")
	}

	srv.audit.publish(ctx, logEntry)

	return srv.planRepo.FindPlanByID(ctx, id)
}

// saveVisits runs writeHeader, reconciles the visits and appends the audit
// record built by auditFor. With reconcileVisits false the visits are left
// alone and auditFor receives a nil result.
func (srv *dailyPlanService) saveVisits(
	ctx context.Context,
	plan *entity.DailyPlan,
	entries []reconcile.Entry[entity.PlanVisitSpec],
	reconcileVisits bool,
	writeHeader func(repository.DailyPlanRepository) error,
	auditFor func(*reconcile.Result[*entity.PlanVisit]) *entity.AuditLog,
) (*reconcile.Result[*entity.PlanVisit], error) {
	var result *reconcile.Result[*entity.PlanVisit]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		plans := repoFactory.NewDailyPlanRepository()

		if err := writeHeader(plans); err != nil {
			return err
		}

		if reconcileVisits {
			res, err := reconcile.Apply(ctx, &planVisitCollection{planID: plan.ID, repo: plans}, entries, planVisitKeys)
			if err != nil {
				return err
			}
			result = res
		}

		return repoFactory.NewAuditLogRepository().Create(ctx, auditFor(result))
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetPlan returns the plan when the actor may see it.
func (srv *dailyPlanService) GetPlan(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.DailyPlan, error) {
	plan, err := srv.planRepo.FindPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(plan.MerchandiserID) {
		return nil, domainerrors.ErrDailyPlanNotFound
	}

	return plan, nil
}

// ListPlans lists plans; merchandisers only ever see their own.
func (srv *dailyPlanService) ListPlans(ctx context.Context, actor usecase.Actor, filter usecase.DailyPlanFilter) ([]*entity.DailyPlan, error) {
	repoFilter := repository.DailyPlanFilter{MerchandiserID: filter.MerchandiserID}
	if filter.PlanDate != nil {
		day := calendarDate(*filter.PlanDate)
		repoFilter.PlanDate = &day
	}
	if !actor.IsManager() {
		repoFilter.MerchandiserID = &actor.UserID
	}

	plans, err := srv.planRepo.ListPlans(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily plans")
	}

	return plans, nil
}

// DeletePlan removes a plan with its visits. Managers only.
func (srv *dailyPlanService) DeletePlan(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsManager() {
		return domainerrors.ErrForbidden
	}

	srv.log(ctx).Info("Deleting daily plan", slog.Any("daily_plan_id", id))

	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		plans := repoFactory.NewDailyPlanRepository()

		plan, err := plans.LockPlanByID(ctx, id)
		if err != nil {
			return err
		}
		if err := plans.DeletePlan(ctx, id); err != nil {
			return err
		}

		logEntry = newAuditLog(actor, entity.AuditDailyPlanDeleted, map[string]any{
			"daily_plan_id":   id.String(),
			"merchandiser_id": plan.MerchandiserID.String(),
			"plan_date":       plan.PlanDate.Format(time.DateOnly),
		})

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		return txError(err, "failed to delete daily plan")
	}

	srv.audit.publish(ctx, logEntry)

	return nil
}

// UpdateVisitProgress marks a single visit. Completing a visit without a
// timestamp stamps it with the current time.
func (srv *dailyPlanService) UpdateVisitProgress(ctx context.Context, actor usecase.Actor, planID, visitID uuid.UUID, input usecase.VisitProgressInput) (*entity.PlanVisit, error) {
	var updated *entity.PlanVisit
	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		plans := repoFactory.NewDailyPlanRepository()

		plan, err := plans.LockPlanByID(ctx, planID)
		if err != nil {
			return err
		}
		if !actor.CanAccess(plan.MerchandiserID) {
			return domainerrors.ErrDailyPlanNotFound
		}

		visit, err := plans.FindVisit(ctx, planID, visitID)
		if err != nil {
			return err
		}

		spec := entity.PlanVisitSpec{
			StoreID:    visit.StoreID,
			VisitOrder: visit.VisitOrder,
			VisitedAt:  visit.VisitedAt,
			Completed:  visit.Completed,
		}
		if input.VisitedAt != nil {
			spec.VisitedAt = input.VisitedAt
		}
		if input.Completed != nil {
			spec.Completed = *input.Completed
		}
		if spec.Completed && spec.VisitedAt == nil {
			now := srv.now().UTC()
			spec.VisitedAt = &now
		}

		updated, err = plans.UpdateVisit(ctx, planID, visitID, spec)
		if err != nil {
			return err
		}

		logEntry = newAuditLog(actor, entity.AuditVisitUpdated, map[string]any{
			"daily_plan_id": planID.String(),
			"visit_id":      visitID.String(),
			"store_id":      updated.StoreID.String(),
			"completed":     updated.Completed,
		})

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update visit", slog.Any("error", err), slog.Any("visit_id", visitID))

		return nil, txError(err, "failed to update visit")
	}

	srv.audit.publish(ctx, logEntry)

	return updated, nil
}

func (srv *dailyPlanService) ensureMerchandiser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("merchandiser is required")
	}

	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("merchandiser %s does not exist", id))
		}

		return errors.Wrap(err, "failed to find merchandiser")
	}

	return nil
}

func (srv *dailyPlanService) observe(start time.Time, result *reconcile.Result[*entity.PlanVisit], err error) {
	if srv.observer == nil {
		return
	}

	outcome := service.ReconcileOutcome{Parent: parentDailyPlan, Elapsed: time.Since(start), Err: err}
	if result != nil {
		outcome.Created, outcome.Updated, outcome.Deleted = result.Created, result.Updated, result.Deleted
	}
	srv.observer.ObserveReconcile(outcome)
}
