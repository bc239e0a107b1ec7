package events

import "time"

const (
	EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"
	EmployeeCreatedType    = "employee_created"
)

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   int64     `json:"employee_id"`
	DepartmentID int64     `json:"department_id"`
	Email        string    `json:"email"`
	OccurredAt   time.Time `json:"occurred_at"`
}
