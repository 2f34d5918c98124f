package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type AMCConfig struct {
	IntervalMonths int
	TotalServices  int
	DurationMonths int
}

type PayrollConfig struct {
	ExpectedStartTime  string
	ExpectedEndTime    string
	ExpectedDailyHours float64
	LateDeductionRate  float64
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	AMC         AMCConfig
	Payroll     PayrollConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		AMC: AMCConfig{
			IntervalMonths: v.GetInt("AMC_INTERVAL_MONTHS"),
			TotalServices:  v.GetInt("AMC_TOTAL_SERVICES"),
			DurationMonths: v.GetInt("AMC_DURATION_MONTHS"),
		},
		Payroll: PayrollConfig{
			ExpectedStartTime:  v.GetString("PAYROLL_EXPECTED_START"),
			ExpectedEndTime:    v.GetString("PAYROLL_EXPECTED_END"),
			ExpectedDailyHours: v.GetFloat64("PAYROLL_EXPECTED_DAILY_HOURS"),
			LateDeductionRate:  v.GetFloat64("PAYROLL_LATE_DEDUCTION_RATE"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7810
	}
	if cfg.AMC.IntervalMonths == 0 {
		cfg.AMC.IntervalMonths = 3
	}
	if cfg.AMC.TotalServices == 0 {
		cfg.AMC.TotalServices = 4
	}
	if cfg.AMC.DurationMonths == 0 {
		cfg.AMC.DurationMonths = 12
	}
	if cfg.Payroll.ExpectedStartTime == "" {
		cfg.Payroll.ExpectedStartTime = "09:00"
	}
	if cfg.Payroll.ExpectedEndTime == "" {
		cfg.Payroll.ExpectedEndTime = "17:30"
	}
	if cfg.Payroll.ExpectedDailyHours == 0 {
		cfg.Payroll.ExpectedDailyHours = 8
	}
	if cfg.Payroll.LateDeductionRate == 0 {
		cfg.Payroll.LateDeductionRate = 0.1
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.AMC.IntervalMonths < 0 || cfg.AMC.TotalServices < 0 {
		return fmt.Errorf("AMC settings must not be negative")
	}
	return nil
}
