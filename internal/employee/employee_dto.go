package employee

import (
	"time"

	"go-hrms/internal/department"
)

const (
	DefaultRole  = "Employee"
	DefaultSkip  = 0
	DefaultLimit = 100
)

type CreateEmployeeRequest struct {
	Email        string  `json:"email" binding:"required,email,max=255"`
	FullName     string  `json:"full_name" binding:"required,max=200"`
	Role         *string `json:"role" binding:"omitempty,max=100"`
	IsActive     *bool   `json:"is_active"`
	DepartmentID *int64  `json:"department_id" binding:"required"`
}

// ListEmployeesQuery has no upper bound on Limit.
type ListEmployeesQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=1"`
}

type EmployeeResponse struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	JoinedDate   time.Time `json:"joined_date"`
	DepartmentID int64     `json:"department_id"`
}

// EmployeeWithDepartmentResponse embeds the owning department. The nested
// department never carries its employees.
type EmployeeWithDepartmentResponse struct {
	EmployeeResponse
	Department department.DepartmentResponse `json:"department"`
}

// DepartmentWithEmployeesResponse lists a department's employees. Each
// employee is the flat shape, without its department.
type DepartmentWithEmployeesResponse struct {
	department.DepartmentResponse
	Employees []EmployeeResponse `json:"employees"`
}

func (r CreateEmployeeRequest) role() string {
	if r.Role == nil {
		return DefaultRole
	}
	return *r.Role
}

func (r CreateEmployeeRequest) isActive() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID,
		Email:        empl.Email,
		FullName:     empl.FullName,
		Role:         empl.Role,
		IsActive:     empl.IsActive,
		JoinedDate:   empl.JoinedDate,
		DepartmentID: empl.DepartmentID,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func mapToDetailResponse(empl Employee, dept department.Department) EmployeeWithDepartmentResponse {
	return EmployeeWithDepartmentResponse{
		EmployeeResponse: mapToResponse(empl),
		Department:       department.MapToResponse(dept),
	}
}
