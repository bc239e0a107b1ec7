package department

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	departmenterrors "go-hrms/internal/department/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dberror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DepartmentsCacheKey = "departments:all"
	DefaultCacheTTL     = 30 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (DepartmentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       *singleflight.Group
	logger   *zap.Logger
}

// NewService wires the department use cases. rdb may be nil, in which case
// the department list is always read from the database.
func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	existing, err := s.repo.FindByName(ctx, req.Name)
	switch {
	case err == nil && existing != nil:
		s.logger.Warn("create department duplicate name",
			zap.String("request_id", rid),
			zap.String("name", req.Name),
		)
		return DepartmentResponse{}, departmenterrors.NameTaken(req.Name)
	case err != nil && !dberror.IsNotFound(err):
		s.logger.Error("create department lookup failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept := &Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		mapped := mapRepositoryError(err)
		// Lost a race with a concurrent insert of the same name.
		if errors.Is(mapped, departmenterrors.ErrDepartmentAlreadyExists) {
			s.logger.Warn("create department unique constraint hit",
				zap.String("request_id", rid),
				zap.String("name", req.Name),
			)
			return DepartmentResponse{}, departmenterrors.NameTaken(req.Name)
		}
		s.logger.Error("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapped
	}

	s.invalidateCache(ctx)

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.Int64("department_id", dept.ID),
	)

	return MapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, DepartmentsCacheKey).Result()
		switch {
		case err == nil:
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
			s.logger.Warn("department cache entry unreadable", zap.String("key", DepartmentsCacheKey))
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("department cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(DepartmentsCacheKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := MapToListResponse(depts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, DepartmentsCacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("department cache write failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (DepartmentResponse, error) {
	s.logger.Debug("get department by id requested", zap.Int64("department_id", id))

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, departmenterrors.ErrDepartmentNotFound) {
			return DepartmentResponse{}, departmenterrors.NotFound(id)
		}
		s.logger.Error("get department by id failed", zap.Int64("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapped
	}

	return MapToResponse(*dept), nil
}

// Delete removes a department together with its employees. It is not
// exposed over HTTP.
func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete department requested", zap.Int64("department_id", id))

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, departmenterrors.ErrDepartmentNotFound) {
			return departmenterrors.NotFound(id)
		}
		s.logger.Error("delete department failed", zap.Int64("department_id", id), zap.Error(err))
		return mapped
	}

	s.invalidateCache(ctx)

	s.logger.Info("delete department success",
		zap.Int64("department_id", id),
		zap.Int64("employees_removed", removed),
	)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DepartmentsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department cache",
			zap.Error(err),
			zap.String("key", DepartmentsCacheKey),
		)
	}
}
