package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/deepakk/fieldcare/internal/model"
	"github.com/deepakk/fieldcare/internal/service"
)

func payrollFixture(t *testing.T) (*service.MockAttendanceStore, *service.MockStatementExporter, *service.MockPayslipGenerator, *service.PayrollService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := service.NewMockAttendanceStore(ctrl)
	excel := service.NewMockStatementExporter(ctrl)
	pdf := service.NewMockPayslipGenerator(ctrl)
	svc := service.NewPayrollService(store, excel, pdf, testConfig(), zerolog.Nop())
	return store, excel, pdf, svc
}

func selfPrincipal(technicianID uuid.UUID) model.Principal {
	return model.Principal{UserID: uuid.New(), TechnicianID: technicianID, Role: "TECHNICIAN"}
}

func TestPayrollService_CheckIn(t *testing.T) {
	technicianID := uuid.New()
	day := time.Date(2024, time.November, 4, 0, 0, 0, 0, time.UTC)

	t.Run("CreatesRecord", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		store.EXPECT().GetRecord(gomock.Any(), technicianID, day).Return(nil, gorm.ErrRecordNotFound)
		store.EXPECT().
			CreateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r model.AttendanceRecord) (*model.AttendanceRecord, error) {
				assert.Equal(t, technicianID, r.TechnicianID)
				require.NotNil(t, r.CheckInTime)
				assert.Equal(t, "09:05", *r.CheckInTime)
				assert.Equal(t, model.AttendanceStatusCheckedIn, r.Status)
				r.ID = uuid.New()
				return &r, nil
			})

		record, err := svc.CheckIn(context.Background(), service.CheckInput{
			TechnicianID: technicianID,
			Day:          day,
			Clock:        "09:05",
			Principal:    selfPrincipal(technicianID),
		})
		require.NoError(t, err)
		assert.Equal(t, model.AttendanceStatusCheckedIn, record.Status)
	})

	t.Run("SecondCheckInConflicts", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		checkIn := "08:55"
		store.EXPECT().GetRecord(gomock.Any(), technicianID, day).Return(&model.AttendanceRecord{
			ID:           uuid.New(),
			TechnicianID: technicianID,
			Date:         day,
			CheckInTime:  &checkIn,
			Status:       model.AttendanceStatusCheckedIn,
		}, nil)

		_, err := svc.CheckIn(context.Background(), service.CheckInput{
			TechnicianID: technicianID,
			Day:          day,
			Clock:        "09:05",
			Principal:    selfPrincipal(technicianID),
		})
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("OtherTechnicianDenied", func(t *testing.T) {
		_, _, _, svc := payrollFixture(t)

		_, err := svc.CheckIn(context.Background(), service.CheckInput{
			TechnicianID: technicianID,
			Day:          day,
			Clock:        "09:05",
			Principal:    selfPrincipal(uuid.New()),
		})
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})
}

func TestPayrollService_CheckOut(t *testing.T) {
	technicianID := uuid.New()
	day := time.Date(2024, time.November, 4, 0, 0, 0, 0, time.UTC)

	t.Run("CompletesRecord", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		checkIn := "09:00"
		store.EXPECT().GetRecord(gomock.Any(), technicianID, day).Return(&model.AttendanceRecord{
			ID:           uuid.New(),
			TechnicianID: technicianID,
			Date:         day,
			CheckInTime:  &checkIn,
			Status:       model.AttendanceStatusCheckedIn,
		}, nil)
		store.EXPECT().
			UpdateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *model.AttendanceRecord) error {
				assert.Equal(t, model.AttendanceStatusCompleted, r.Status)
				assert.InDelta(t, 8.5, r.WorkingHours, 0.001)
				return nil
			})

		record, err := svc.CheckOut(context.Background(), service.CheckInput{
			TechnicianID: technicianID,
			Day:          day,
			Clock:        "17:30",
			Principal:    selfPrincipal(technicianID),
		})
		require.NoError(t, err)
		assert.Equal(t, model.AttendanceStatusCompleted, record.Status)
	})

	t.Run("NoCheckIn", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		store.EXPECT().GetRecord(gomock.Any(), technicianID, day).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CheckOut(context.Background(), service.CheckInput{
			TechnicianID: technicianID,
			Day:          day,
			Clock:        "17:30",
			Principal:    selfPrincipal(technicianID),
		})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("CheckOutBeforeCheckIn", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		checkIn := "09:00"
		store.EXPECT().GetRecord(gomock.Any(), technicianID, day).Return(&model.AttendanceRecord{
			ID:          uuid.New(),
			Date:        day,
			CheckInTime: &checkIn,
			Status:      model.AttendanceStatusCheckedIn,
		}, nil)

		_, err := svc.CheckOut(context.Background(), service.CheckInput{
			TechnicianID: technicianID,
			Day:          day,
			Clock:        "08:00",
			Principal:    selfPrincipal(technicianID),
		})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestPayrollService_MonthlyStatement(t *testing.T) {
	technicianID := uuid.New()

	t.Run("SettlesAndStores", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		store.EXPECT().GetSalaryStructure(gomock.Any(), technicianID).Return(&model.SalaryStructure{
			TechnicianID:       technicianID,
			MonthlySalary:      30000,
			OvertimeRate:       100,
			ExpectedDailyHours: 8,
		}, nil)
		store.EXPECT().ListMonth(gomock.Any(), technicianID, 2024, time.November).Return(nil, nil)
		store.EXPECT().
			SaveSalaryStatement(gomock.Any(), technicianID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, s model.SalaryStatement) error {
				assert.Equal(t, "2024-11", s.Month)
				assert.False(t, s.CalculatedAt.IsZero())
				return nil
			})

		statement, err := svc.MonthlyStatement(context.Background(), technicianID, "2024-11", selfPrincipal(technicianID))
		require.NoError(t, err)

		assert.Equal(t, "2024-11", statement.Month)
		assert.InDelta(t, 1000.0, statement.PerDaySalary, 0.001) // 30000 / 30 days
		assert.False(t, statement.CalculatedAt.IsZero())
	})

	t.Run("SalaryNotConfigured", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		store.EXPECT().GetSalaryStructure(gomock.Any(), technicianID).Return(&model.SalaryStructure{
			TechnicianID: technicianID,
		}, nil)

		_, err := svc.MonthlyStatement(context.Background(), technicianID, "2024-11", selfPrincipal(technicianID))
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("BadMonth", func(t *testing.T) {
		_, _, _, svc := payrollFixture(t)

		_, err := svc.MonthlyStatement(context.Background(), technicianID, "November 2024", selfPrincipal(technicianID))
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestPayrollService_SetSalary(t *testing.T) {
	technicianID := uuid.New()

	t.Run("AdminOnly", func(t *testing.T) {
		_, _, _, svc := payrollFixture(t)

		_, err := svc.SetSalary(context.Background(), service.SetSalaryInput{
			TechnicianID:  technicianID,
			MonthlySalary: 30000,
			Principal:     selfPrincipal(technicianID),
		})
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("StoresStructure", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		store.EXPECT().GetTechnician(gomock.Any(), technicianID).Return(&model.Technician{ID: technicianID}, nil)
		store.EXPECT().
			SaveSalaryStructure(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s model.SalaryStructure) error {
				assert.InDelta(t, 1000.0, s.PerDaySalary, 0.001)
				assert.Equal(t, 8.0, s.ExpectedDailyHours) // falls back to policy
				return nil
			})

		structure, err := svc.SetSalary(context.Background(), service.SetSalaryInput{
			TechnicianID:  technicianID,
			MonthlySalary: 30000,
			OvertimeRate:  100,
			Principal:     adminPrincipal(),
		})
		require.NoError(t, err)
		assert.InDelta(t, 1000.0, structure.PerDaySalary, 0.001)
	})

	t.Run("UnknownTechnician", func(t *testing.T) {
		store, _, _, svc := payrollFixture(t)

		store.EXPECT().GetTechnician(gomock.Any(), technicianID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.SetSalary(context.Background(), service.SetSalaryInput{
			TechnicianID:  technicianID,
			MonthlySalary: 30000,
			Principal:     adminPrincipal(),
		})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestPayrollService_ExportStatement(t *testing.T) {
	technicianID := uuid.New()

	store, excel, _, svc := payrollFixture(t)

	store.EXPECT().GetSalaryStructure(gomock.Any(), technicianID).Return(&model.SalaryStructure{
		TechnicianID:  technicianID,
		MonthlySalary: 30000,
	}, nil)
	store.EXPECT().ListMonth(gomock.Any(), technicianID, 2024, time.November).Return(nil, nil)
	store.EXPECT().SaveSalaryStatement(gomock.Any(), technicianID, gomock.Any()).Return(nil)
	store.EXPECT().GetTechnician(gomock.Any(), technicianID).Return(&model.Technician{
		ID:       technicianID,
		FullName: "Suresh Patel",
	}, nil)
	excel.EXPECT().Generate(gomock.Any(), gomock.Any()).Return([]byte("xlsx-bytes"), nil)

	result, err := svc.ExportStatement(context.Background(), technicianID, "2024-11", adminPrincipal())
	require.NoError(t, err)
	assert.Contains(t, result.FileName, "2024-11")
	assert.Contains(t, result.FileName, ".xlsx")
	assert.Equal(t, []byte("xlsx-bytes"), result.Content)
}
