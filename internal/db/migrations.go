package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS technicians (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		full_name VARCHAR(128) NOT NULL,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		monthly_salary NUMERIC(12,2) NOT NULL DEFAULT 0,
		per_day_salary NUMERIC(12,2) NOT NULL DEFAULT 0,
		overtime_rate NUMERIC(12,2) NOT NULL DEFAULT 0,
		expected_daily_hours NUMERIC(4,1) NOT NULL DEFAULT 8,
		salary_updated_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS amc_contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL,
		customer_name VARCHAR(128) NOT NULL DEFAULT '',
		customer_phone VARCHAR(32) NOT NULL DEFAULT '',
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		interval_months INT NOT NULL DEFAULT 3,
		total_services INT NOT NULL DEFAULT 4,
		services_completed INT NOT NULL DEFAULT 0,
		last_service_date DATE,
		next_service_date DATE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		paid_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (start_date <= end_date)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_amc_contracts_customer_id ON amc_contracts (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_amc_contracts_is_active ON amc_contracts (is_active);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'visit_status') THEN
			CREATE TYPE visit_status AS ENUM ('PENDING', 'COMPLETED', 'CANCELLED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS service_visits (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES amc_contracts(id),
		sequence_no INT NOT NULL,
		label VARCHAR(64) NOT NULL DEFAULT '',
		scheduled_date DATE NOT NULL,
		completed_date DATE,
		technician_id UUID REFERENCES technicians(id),
		status visit_status NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_service_visits_contract_id ON service_visits (contract_id);`,
	`CREATE INDEX IF NOT EXISTS idx_service_visits_status ON service_visits (status);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'attendance_status') THEN
			CREATE TYPE attendance_status AS ENUM ('incomplete', 'checked-in', 'completed');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		technician_id UUID NOT NULL REFERENCES technicians(id),
		day DATE NOT NULL,
		check_in_time VARCHAR(8),
		check_out_time VARCHAR(8),
		working_hours NUMERIC(5,2) NOT NULL DEFAULT 0,
		status attendance_status NOT NULL DEFAULT 'incomplete',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (technician_id, day)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_technician_day ON attendance (technician_id, day);`,
	`CREATE TABLE IF NOT EXISTS salary_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		technician_id UUID NOT NULL REFERENCES technicians(id),
		month VARCHAR(7) NOT NULL,
		statement JSONB NOT NULL,
		net_salary NUMERIC(12,2) NOT NULL,
		calculated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (technician_id, month)
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
