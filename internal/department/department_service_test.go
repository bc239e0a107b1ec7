package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"
	departmentMock "go-hrms/internal/department/mock"
	"go-hrms/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(repo, dbRedis, 30*time.Minute)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func strPtr(s string) *string { return &s }

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns generated id and unchanged fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := department.CreateDepartmentRequest{Name: "Engineering", Description: strPtr("Eng team")}

		deps.repo.EXPECT().
			FindByName(ctx, "Engineering").
			Return(nil, gorm.ErrRecordNotFound)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, req.Name, d.Name)
				assert.Equal(t, "Eng team", *d.Description)
				d.ID = 1
				return nil
			})

		deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Engineering", resp.Name)
		assert.Equal(t, "Eng team", *resp.Description)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name is a conflict regardless of description", func(t *testing.T) {
		deps := setupServiceTest(t)

		for _, desc := range []*string{nil, strPtr("other")} {
			deps.repo.EXPECT().
				FindByName(ctx, "Engineering").
				Return(&department.Department{ID: 1, Name: "Engineering"}, nil)

			_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering", Description: desc})

			require.Error(t, err)
			assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyExists)

			httpErr := apperror.ToHTTP(err)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, apperror.CodeConflict, httpErr.Code)
			assert.Equal(t, "Department with name 'Engineering' already exists", httpErr.Message)
		}
	})

	t.Run("unique constraint after a clean pre-check is still a conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByName(ctx, "Engineering").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_departments_name"})

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyExists)
		assert.Equal(t, "Department with name 'Engineering' already exists", apperror.ToHTTP(err).Message)
	})

	t.Run("storage failure is not classified", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByName(ctx, "Engineering").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("commit failed"))

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(err).Status)
	})

	t.Run("lookup failure stops before insert", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByName(ctx, "Engineering").
			Return(nil, errors.New("connection reset"))
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.Error(t, err)
	})
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectedResp := []department.DepartmentResponse{
			{ID: 1, Name: "HR"},
			{ID: 2, Name: "IT"},
		}
		jsonResp, _ := json.Marshal(expectedResp)
		deps.redismock.ExpectGet(department.DepartmentsCacheKey).SetVal(string(jsonResp))
		deps.repo.EXPECT().FindAll(gomock.Any()).Times(0)

		resp, err := deps.service.GetAll(ctx)

		require.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "HR", resp[0].Name)
	})

	t.Run("cache miss reads the database and fills the cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(department.DepartmentsCacheKey).RedisNil()

		mockDepartments := []department.Department{{ID: 4, Name: "Finance"}}
		deps.repo.EXPECT().
			FindAll(ctx).
			Return(mockDepartments, nil).
			Times(1)

		jsonData, _ := json.Marshal(department.MapToListResponse(mockDepartments))
		deps.redismock.ExpectSet(department.DepartmentsCacheKey, jsonData, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		require.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Finance", resp[0].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("empty store returns an empty list", func(t *testing.T) {
		repo := departmentMock.NewMockRepository(gomock.NewController(t))
		svc := department.NewService(repo, nil, 0)

		repo.EXPECT().FindAll(ctx).Return(nil, nil)

		resp, err := svc.GetAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("database error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(department.DepartmentsCacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db connection error"))

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(3)).
			Return(&department.Department{ID: 3, Name: "HR"}, nil)

		resp, err := deps.service.GetByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.ID)
	})

	t.Run("never created id is not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, int64(999)).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetByID(ctx, 999)

		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Department with id 999 not found", httpErr.Message)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().Delete(ctx, int64(5)).Return(int64(3), nil)
		deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

		err := deps.service.Delete(ctx, 5)

		assert.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("missing department", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().Delete(ctx, int64(5)).Return(int64(0), gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 5)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}
