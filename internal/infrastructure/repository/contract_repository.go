package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/mappers"
	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/db"
	"github.com/prism-finance/prism/internal/shared/query"
)

var contractSortColumns = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"name":        true,
	"status":      true,
	"expiry_date": true,
}

type ContractRepository struct {
	db     *gorm.DB
	mapper mappers.ContractMapper
}

func NewContractRepository(db *gorm.DB) contract.Repository {
	return &ContractRepository{db: db, mapper: mappers.NewContractMapper()}
}

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(c)).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (*contract.Contract, error) {
	var model models.ContractModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ContractRepository) List(ctx context.Context, filter contract.ListFilter) ([]*contract.Contract, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.ContractModel{}).Scopes(db.ForCompany(filter.CompanyID))
	if filter.SupplierID != "" {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.TemplateID != "" {
		q = q.Where("template_id = ?", filter.TemplateID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	sort := query.SortFilter{SortBy: filter.SortBy, SortOrder: filter.SortOrder}
	var list []*models.ContractModel
	err := q.Order(sort.OrderClause(contractSortColumns, "created_at DESC")).
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contracts: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ContractRepository) CountByTemplateID(ctx context.Context, templateID string) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ContractModel{}).Where("template_id = ?", templateID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count contracts for template: %w", err)
	}
	return count, nil
}

// ApplyTransition never touches content, file_path or variables.
func (r *ContractRepository) ApplyTransition(ctx context.Context, c *contract.Contract, from vo.ContractStatus) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ContractModel{}).
		Where("id = ? AND status = ?", c.ID(), from.String()).
		Updates(r.mapper.TransitionColumns(c))
	if result.Error != nil {
		return fmt.Errorf("failed to update contract status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return contract.ErrConcurrentModification
	}
	return nil
}

func (r *ContractRepository) ListExpirable(ctx context.Context, now time.Time, limit int) ([]*contract.Contract, error) {
	var list []*models.ContractModel
	q := db.GetTxFromContext(ctx, r.db).
		Where("status IN ? AND expiry_date IS NOT NULL AND expiry_date < ?", statusStrings(vo.NonTerminalStatuses), now).
		Order("expiry_date ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list expirable contracts: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func statusStrings(statuses []vo.ContractStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
