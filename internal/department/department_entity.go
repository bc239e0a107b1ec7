package department

// Department owns a set of employees. Employees reference it by
// DepartmentID only; there is no back-pointer slice here.
type Department struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:100;not null;uniqueIndex:uq_departments_name"`
	Description *string `gorm:"type:text"`
}

func (Department) TableName() string {
	return "departments"
}
