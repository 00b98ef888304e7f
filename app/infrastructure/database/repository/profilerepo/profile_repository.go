package profilerepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/murayeeto/HornetHelper/app/domain/common"
	domain "github.com/murayeeto/HornetHelper/app/domain/user"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database/dbschema"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database/repository/transaction"
	"github.com/murayeeto/HornetHelper/app/utils/functional"
)

type ProfileGormRepository struct {
	db *transaction.Database
}

var _ domain.ProfileRepository = (*ProfileGormRepository)(nil)

func NewProfileGormRepository(db *transaction.Database) domain.ProfileRepository {
	return &ProfileGormRepository{
		db: db,
	}
}

func (r *ProfileGormRepository) Create(ctx context.Context, p *domain.Profile) error {
	model := dbschema.NewSchemaProfile(p)
	if err := r.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return common.NewError(err, "c9c79116-5fca-4002-8f4d-bf6625d622a3")
	}
	p.ID = model.ID
	return nil
}

func (r *ProfileGormRepository) Update(ctx context.Context, p *domain.Profile) error {
	model := dbschema.NewSchemaProfile(p)
	return r.db.GetTx(ctx).WithContext(ctx).Save(model).Error
}

// UpdateMajor writes the single field; the row must already exist.
func (r *ProfileGormRepository) UpdateMajor(ctx context.Context, subjectID string, major string) error {
	result := r.db.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Profile{}).
		Where("subject_id = ?", subjectID).
		Update("major", major)
	if result.Error != nil {
		return common.NewError(result.Error, "85c46144-bc89-4047-8f2b-750ec612b404")
	}
	if result.RowsAffected == 0 {
		return common.NewErrorWithMessage(fmt.Sprintf("profile not found for subject %s", subjectID), "9818d576-f034-4a29-8655-0dd8a5339f52")
	}
	return nil
}

func (r *ProfileGormRepository) FindFirst(ctx context.Context, filter domain.ProfileFilter) (*domain.Profile, error) {
	var model dbschema.Profile
	sql := r.applyFilter(r.db.GetTx(ctx).WithContext(ctx), filter)
	if err := sql.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *ProfileGormRepository) FindByFilter(ctx context.Context, filter domain.ProfileFilter) ([]*domain.Profile, error) {
	var rows []*dbschema.Profile
	sql := r.applyFilter(r.db.GetTx(ctx).WithContext(ctx), filter)
	if err := sql.Find(&rows).Error; err != nil {
		return nil, err
	}
	result := functional.Map(rows, func(item *dbschema.Profile) *domain.Profile {
		return item.EtoD()
	})
	return result, nil
}

// applyFilter applies conditions dynamically to the query.
func (r *ProfileGormRepository) applyFilter(sql *gorm.DB, filter domain.ProfileFilter) *gorm.DB {
	if filter.SubjectID != nil {
		sql = sql.Where("subject_id = ?", *filter.SubjectID)
	}
	if filter.Email != nil {
		sql = sql.Where("email = ?", *filter.Email)
	}
	return sql
}
