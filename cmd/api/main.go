package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/request"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-backend-go/internal/service/auth"
	calendarService "github.com/cmlabs-hris/attendance-backend-go/internal/service/calendar"
	orgUnitService "github.com/cmlabs-hris/attendance-backend-go/internal/service/orgunit"
	personnelService "github.com/cmlabs-hris/attendance-backend-go/internal/service/personnel"
	reportService "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
	requestService "github.com/cmlabs-hris/attendance-backend-go/internal/service/request"
	shiftService "github.com/cmlabs-hris/attendance-backend-go/internal/service/shift"
	workGroupService "github.com/cmlabs-hris/attendance-backend-go/internal/service/workgroup"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	orgUnitRepo := postgresql.NewOrgUnitRepository(db)
	personnelRepo := postgresql.NewPersonnelRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	workGroupRepo := postgresql.NewWorkGroupRepository(db)
	logRepo := postgresql.NewLogRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	missionTypeRepo := postgresql.NewMissionTypeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, GoogleService)
	orgUnitSvc := orgUnitService.NewOrgUnitService(db, orgUnitRepo)
	personnelSvc := personnelService.NewPersonnelService(db, personnelRepo, orgUnitRepo, workGroupRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo)
	calendarSvc := calendarService.NewCalendarService(db, calendarRepo, holidayRepo)
	workGroupSvc := workGroupService.NewWorkGroupService(db, workGroupRepo, shiftRepo, calendarRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		logRepo,
		summaryRepo,
		personnelRepo,
		workGroupRepo,
		shiftRepo,
		holidayRepo,
		requestRepo,
		leaveTypeRepo,
		missionTypeRepo,
	)
	requestSvc := requestService.NewRequestService(db, requestRepo, leaveTypeRepo, missionTypeRepo, personnelRepo, attendanceSvc)
	reportSvc := reportService.NewReportService(db, summaryRepo, personnelRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		OrgUnit:    appHTTP.NewOrgUnitHandler(orgUnitSvc),
		Personnel:  appHTTP.NewPersonnelHandler(personnelSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Calendar:   appHTTP.NewCalendarHandler(calendarSvc),
		WorkGroup:  appHTTP.NewWorkGroupHandler(workGroupSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewRequestHandler(requestSvc, request.TypeLeave),
		Mission:    appHTTP.NewRequestHandler(requestSvc, request.TypeMission),
		Master:     appHTTP.NewMasterHandler(requestSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
