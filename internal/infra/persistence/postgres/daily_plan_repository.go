package postgres

import (
	"context"
	"fmt"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dailyPlanRepository implements repository.DailyPlanRepository. Visits live
// in daily_plan_stores and are always filtered by daily_plan_id.
type dailyPlanRepository struct {
	db *gorm.DB
}

// NewDailyPlanRepository is the constructor for dailyPlanRepository.
func NewDailyPlanRepository(db *gorm.DB) repository.DailyPlanRepository {
	return &dailyPlanRepository{db: db}
}

func orderVisits(db *gorm.DB) *gorm.DB {
	return db.Order("visit_order ASC")
}

func (repo *dailyPlanRepository) CreatePlan(ctx context.Context, plan *entity.DailyPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = newID()
	}

	planM := fromDailyPlanDomain(plan)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(planM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDailyPlanExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WithDetails("invalid merchandiser reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create daily plan")
	}

	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

func (repo *dailyPlanRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.DailyPlan, error) {
	var planM model.DailyPlanModel
	err := repo.db.WithContext(ctx).
		Preload("Visits", orderVisits).
		Preload("Visits.Store").
		Where("id = ?", id).
		First(&planM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDailyPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find daily plan by id")
	}

	return toDailyPlanDomain(&planM), nil
}

func (repo *dailyPlanRepository) LockPlanByID(ctx context.Context, id uuid.UUID) (*entity.DailyPlan, error) {
	var planM model.DailyPlanModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&planM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDailyPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to lock daily plan")
	}

	return toDailyPlanDomain(&planM), nil
}

func (repo *dailyPlanRepository) ListPlans(ctx context.Context, filter repository.DailyPlanFilter) ([]*entity.DailyPlan, error) {
	query := repo.db.WithContext(ctx).Model(&model.DailyPlanModel{}).
		Preload("Visits", orderVisits).
		Preload("Visits.Store")
	if filter.MerchandiserID != nil {
		query = query.Where("merchandiser_id = ?", *filter.MerchandiserID)
	}
	if filter.PlanDate != nil {
		query = query.Where("plan_date = ?", datatypes.Date(*filter.PlanDate))
	}

	var planMs []model.DailyPlanModel
	if err := query.Order("plan_date DESC, created_at DESC").Find(&planMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list daily plans")
	}

	plans := make([]*entity.DailyPlan, 0, len(planMs))
	for i := range planMs {
		plans = append(plans, toDailyPlanDomain(&planMs[i]))
	}

	return plans, nil
}

func (repo *dailyPlanRepository) UpdatePlan(ctx context.Context, plan *entity.DailyPlan) error {
	result := repo.db.WithContext(ctx).Model(&model.DailyPlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"merchandiser_id": plan.MerchandiserID,
			"plan_date":       datatypes.Date(plan.PlanDate),
			"notes":           plan.Notes,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDailyPlanExists
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferenceNotFound.WithDetails("invalid merchandiser reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update daily plan")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDailyPlanNotFound
	}

	return nil
}

func (repo *dailyPlanRepository) DeletePlan(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("daily_plan_id = ?", id).Delete(&model.PlanVisitModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete plan visits")
	}

	result := db.Where("id = ?", id).Delete(&model.DailyPlanModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete daily plan")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDailyPlanNotFound
	}

	return nil
}

func (repo *dailyPlanRepository) ListVisits(ctx context.Context, planID uuid.UUID) ([]*entity.PlanVisit, error) {
	var visitMs []model.PlanVisitModel
	err := orderVisits(repo.db.WithContext(ctx)).
		Preload("Store").
		Where("daily_plan_id = ?", planID).
		Find(&visitMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plan visits")
	}

	visits := make([]*entity.PlanVisit, 0, len(visitMs))
	for i := range visitMs {
		visits = append(visits, toPlanVisitDomain(&visitMs[i]))
	}

	return visits, nil
}

func (repo *dailyPlanRepository) FindVisit(ctx context.Context, planID, visitID uuid.UUID) (*entity.PlanVisit, error) {
	var visitM model.PlanVisitModel
	err := repo.db.WithContext(ctx).
		Preload("Store").
		Where("id = ? AND daily_plan_id = ?", visitID, planID).
		First(&visitM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrChildNotFound.WithDetails(fmt.Sprintf("visit %s does not belong to plan %s", visitID, planID))
		}

		return nil, errors.Wrap(err, "failed to load plan visit")
	}

	return toPlanVisitDomain(&visitM), nil
}

func (repo *dailyPlanRepository) CreateVisit(ctx context.Context, planID uuid.UUID, spec entity.PlanVisitSpec) (*entity.PlanVisit, error) {
	visitM := &model.PlanVisitModel{
		ID:          newID(),
		DailyPlanID: planID,
		StoreID:     spec.StoreID,
		VisitOrder:  spec.VisitOrder,
		VisitedAt:   spec.VisitedAt,
		Completed:   spec.Completed,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(visitM).Error; err != nil {
		return nil, visitWriteError(err, spec, "failed to create plan visit")
	}

	return repo.FindVisit(ctx, planID, visitM.ID)
}

func (repo *dailyPlanRepository) UpdateVisit(ctx context.Context, planID, visitID uuid.UUID, spec entity.PlanVisitSpec) (*entity.PlanVisit, error) {
	result := repo.db.WithContext(ctx).Model(&model.PlanVisitModel{}).
		Where("id = ? AND daily_plan_id = ?", visitID, planID).
		Updates(map[string]any{
			"store_id":    spec.StoreID,
			"visit_order": spec.VisitOrder,
			"visited_at":  spec.VisitedAt,
			"completed":   spec.Completed,
		})
	if result.Error != nil {
		return nil, visitWriteError(result.Error, spec, "failed to update plan visit")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrChildNotFound.WithDetails(fmt.Sprintf("visit %s does not belong to plan %s", visitID, planID))
	}

	return repo.FindVisit(ctx, planID, visitID)
}

func (repo *dailyPlanRepository) DeleteVisits(ctx context.Context, planID uuid.UUID, visitIDs []uuid.UUID) error {
	if len(visitIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("daily_plan_id = ? AND id IN ?", planID, visitIDs).
		Delete(&model.PlanVisitModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete plan visits")
	}

	return nil
}

// ReleaseVisitOrders negates the visit order of the given visits. Orders
// submitted by clients are positive, so parked rows never collide with them.
func (repo *dailyPlanRepository) ReleaseVisitOrders(ctx context.Context, planID uuid.UUID, visitIDs []uuid.UUID) error {
	if len(visitIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).Model(&model.PlanVisitModel{}).
		Where("daily_plan_id = ? AND id IN ? AND visit_order > 0", planID, visitIDs).
		UpdateColumn("visit_order", gorm.Expr("-visit_order")).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to release visit orders")
	}

	return nil
}

func visitWriteError(err error, spec entity.PlanVisitSpec, msg string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrDuplicateKey.WithDetails(fmt.Sprintf("visit_order %d already used in this plan", spec.VisitOrder))
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("store %s does not exist", spec.StoreID))
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

// --- Mapper Functions ---

func toDailyPlanDomain(data *model.DailyPlanModel) *entity.DailyPlan {
	if data == nil {
		return nil
	}

	plan := &entity.DailyPlan{
		ID:             data.ID,
		MerchandiserID: data.MerchandiserID,
		PlanDate:       dateToTime(data.PlanDate),
		Notes:          data.Notes,
		Visits:         make([]*entity.PlanVisit, 0, len(data.Visits)),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	for i := range data.Visits {
		plan.Visits = append(plan.Visits, toPlanVisitDomain(&data.Visits[i]))
	}

	return plan
}

func fromDailyPlanDomain(data *entity.DailyPlan) *model.DailyPlanModel {
	if data == nil {
		return nil
	}

	return &model.DailyPlanModel{
		ID:             data.ID,
		MerchandiserID: data.MerchandiserID,
		PlanDate:       datatypes.Date(data.PlanDate),
		Notes:          data.Notes,
	}
}

func toPlanVisitDomain(data *model.PlanVisitModel) *entity.PlanVisit {
	if data == nil {
		return nil
	}

	visit := &entity.PlanVisit{
		ID:          data.ID,
		DailyPlanID: data.DailyPlanID,
		StoreID:     data.StoreID,
		VisitOrder:  data.VisitOrder,
		VisitedAt:   data.VisitedAt,
		Completed:   data.Completed,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Store != nil {
		visit.StoreName = data.Store.Name
	}

	return visit
}
