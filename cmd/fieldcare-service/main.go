package main

import (
	"fmt"
	"os"

	"github.com/deepakk/fieldcare/internal/auth"
	"github.com/deepakk/fieldcare/internal/config"
	"github.com/deepakk/fieldcare/internal/db"
	"github.com/deepakk/fieldcare/internal/excel"
	httphandler "github.com/deepakk/fieldcare/internal/http"
	"github.com/deepakk/fieldcare/internal/http/middleware"
	"github.com/deepakk/fieldcare/internal/logger"
	"github.com/deepakk/fieldcare/internal/pdf"
	"github.com/deepakk/fieldcare/internal/repository"
	"github.com/deepakk/fieldcare/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	contractRepo := repository.NewContractRepository(database)
	attendanceRepo := repository.NewAttendanceRepository(database)

	amcService := service.NewAMCService(contractRepo, cfg, log)
	payrollService := service.NewPayrollService(
		attendanceRepo,
		excel.NewGenerator(),
		pdf.NewGenerator(),
		cfg,
		log,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(amcService, payrollService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fieldcare service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
