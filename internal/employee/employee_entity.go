package employee

import (
	"time"

	"go-hrms/internal/department"
)

// Employee belongs to exactly one department. Department is only populated
// when the query preloads it.
type Employee struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uq_employees_email"`
	FullName     string    `gorm:"size:200;not null"`
	Role         string    `gorm:"size:100;not null"`
	IsActive     bool      `gorm:"not null"`
	JoinedDate   time.Time `gorm:"autoCreateTime;<-:create"`
	DepartmentID int64     `gorm:"not null;index"`

	Department *department.Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

func (Employee) TableName() string {
	return "employees"
}
