package employee

import (
	"context"
	"errors"
	"time"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dberror"

	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, skip, limit int) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeWithDepartmentResponse, error)
	GetDepartmentRoster(ctx context.Context, departmentID int64) (DepartmentWithEmployeesResponse, error)
}

type service struct {
	repo        Repository
	departments department.Repository
	publisher   EventPublisher
	now         func() time.Time
	logger      *zap.Logger
}

// NewService wires the employee use cases. A nil publisher disables
// employee events.
func NewService(
	repo Repository,
	departments department.Repository,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		repo:        repo,
		departments: departments,
		publisher:   publisher,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l,
	}
}

// Create checks the email before the department, so a request that is both
// a duplicate and points at a missing department reports the duplicate.
func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	if req.DepartmentID == nil {
		return EmployeeResponse{}, apperror.RequiredField("Department Id")
	}

	rid := contextutil.GetRequestID(ctx)
	// The request logger already carries the request id.
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested", zap.String("email", req.Email))

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil && existing != nil:
		log.Warn("create employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.EmailTaken(req.Email)
	case err != nil && !dberror.IsNotFound(err):
		log.Error("create employee email lookup failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	departmentID := *req.DepartmentID
	if _, err := s.departments.FindByID(ctx, departmentID); err != nil {
		if dberror.IsNotFound(err) {
			log.Warn("create employee unknown department", zap.Int64("department_id", departmentID))
			return EmployeeResponse{}, departmenterrors.NotFound(departmentID)
		}
		log.Error("create employee department lookup failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl := &Employee{
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.role(),
		IsActive:     req.isActive(),
		JoinedDate:   s.now(),
		DepartmentID: departmentID,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		mapped := mapRepositoryError(err)
		switch {
		case errors.Is(mapped, employeeerrors.ErrEmployeeAlreadyExists):
			log.Warn("create employee unique constraint hit", zap.String("email", req.Email))
			return EmployeeResponse{}, employeeerrors.EmailTaken(req.Email)
		case errors.Is(mapped, departmenterrors.ErrDepartmentNotFound):
			// Department removed between the check and the insert.
			log.Warn("create employee foreign key hit", zap.Int64("department_id", departmentID))
			return EmployeeResponse{}, departmenterrors.NotFound(departmentID)
		}
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapped
	}

	s.publishCreated(ctx, rid, empl)

	log.Info("create employee success",
		zap.Int64("employee_id", empl.ID),
		zap.Int64("department_id", empl.DepartmentID),
	)

	return mapToResponse(*empl), nil
}

// publishCreated runs after the row is committed. A failure is logged and
// never undoes the create.
func (s *service) publishCreated(ctx context.Context, rid string, empl *Employee) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := s.publisher.PublishEmployeeCreated(pubCtx, events.EmployeeCreatedEvent{
		EventType:    events.EmployeeCreatedType,
		RequestID:    rid,
		EmployeeID:   empl.ID,
		DepartmentID: empl.DepartmentID,
		Email:        empl.Email,
		OccurredAt:   s.now(),
	})
	if err != nil {
		s.logger.Warn("publish employee created failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", empl.ID),
			zap.Error(err),
		)
	}
}

func (s *service) GetAll(ctx context.Context, skip, limit int) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested", zap.Int("skip", skip), zap.Int("limit", limit))

	empls, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeWithDepartmentResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, employeeerrors.ErrEmployeeNotFound) {
			return EmployeeWithDepartmentResponse{}, employeeerrors.NotFound(id)
		}
		s.logger.Error("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeWithDepartmentResponse{}, mapped
	}

	dept := empl.Department
	if dept == nil {
		dept, err = s.departments.FindByID(ctx, empl.DepartmentID)
		if err != nil {
			s.logger.Error("get employee department failed",
				zap.Int64("employee_id", id),
				zap.Int64("department_id", empl.DepartmentID),
				zap.Error(err),
			)
			return EmployeeWithDepartmentResponse{}, mapRepositoryError(err)
		}
	}

	return mapToDetailResponse(*empl, *dept), nil
}

// GetDepartmentRoster returns a department with its employees. It is not
// exposed over HTTP.
func (s *service) GetDepartmentRoster(
	ctx context.Context,
	departmentID int64,
) (DepartmentWithEmployeesResponse, error) {
	dept, err := s.departments.FindByID(ctx, departmentID)
	if err != nil {
		if dberror.IsNotFound(err) {
			return DepartmentWithEmployeesResponse{}, departmenterrors.NotFound(departmentID)
		}
		s.logger.Error("get department roster failed", zap.Int64("department_id", departmentID), zap.Error(err))
		return DepartmentWithEmployeesResponse{}, mapRepositoryError(err)
	}

	empls, err := s.repo.FindAllByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("get department roster employees failed", zap.Int64("department_id", departmentID), zap.Error(err))
		return DepartmentWithEmployeesResponse{}, mapRepositoryError(err)
	}

	return DepartmentWithEmployeesResponse{
		DepartmentResponse: department.MapToResponse(*dept),
		Employees:          mapToListResponse(empls),
	}, nil
}
