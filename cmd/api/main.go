package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/folgas-app/folgas-backend-go/internal/config"
	appHTTP "github.com/folgas-app/folgas-backend-go/internal/handler/http"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/database"
	"github.com/folgas-app/folgas-backend-go/internal/pkg/storage"
	"github.com/folgas-app/folgas-backend-go/internal/repository/postgresql"
	reportService "github.com/folgas-app/folgas-backend-go/internal/service/report"
	rosterService "github.com/folgas-app/folgas-backend-go/internal/service/roster"
	scheduleService "github.com/folgas-app/folgas-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	scheduleSvc := scheduleService.NewScheduleService(employeeRepo, leaveRequestRepo)
	rosterSvc := rosterService.NewRosterService(db, employeeRepo, leaveRequestRepo, fileStorage)
	reportSvc := reportService.NewReportService(scheduleSvc)

	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(rosterSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		scheduleHandler,
		employeeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
