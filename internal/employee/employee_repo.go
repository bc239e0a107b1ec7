package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, skip, limit int) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindAllByDepartment(ctx context.Context, departmentID int64) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

// FindAll returns one page ordered by id, each employee with its department.
func (r *repository) FindAll(ctx context.Context, skip, limit int) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&empl, id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindAllByDepartment(ctx context.Context, departmentID int64) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("id").
		Find(&empls).Error
	return empls, err
}
