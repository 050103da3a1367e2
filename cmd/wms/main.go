package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dreamworld/wms-console/internal/config"
	"github.com/dreamworld/wms-console/internal/repository/sheets"
	"github.com/dreamworld/wms-console/internal/server/handlers"
	"github.com/dreamworld/wms-console/internal/server/router"
	inventorysvc "github.com/dreamworld/wms-console/internal/service/inventory"
	orderssvc "github.com/dreamworld/wms-console/internal/service/orders"
	sessionsvc "github.com/dreamworld/wms-console/internal/service/session"
	"github.com/dreamworld/wms-console/internal/tui"
	identityclient "github.com/dreamworld/wms-console/pkg/clients/identity"
	warehouseclient "github.com/dreamworld/wms-console/pkg/clients/warehouse"
	"github.com/dreamworld/wms-console/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	// Logs go to a file; the terminal belongs to the interface.
	baseLogger := logger.Must(logger.New(cfg.Log.File))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	idpClient := identityclient.NewClient(cfg.Identity)
	apiClient := warehouseclient.NewClient(cfg.API)

	sessionSvc := sessionsvc.NewService(idpClient, baseLogger.Named("svc.session"))
	inventorySvc := inventorysvc.NewService(apiClient, baseLogger.Named("svc.inventory"))
	ordersSvc := orderssvc.NewService(apiClient, baseLogger.Named("svc.orders"))

	var exporter sheets.Exporter
	if cfg.ExportEnabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("report export enabled", zap.String("range", cfg.Sheets.ReportRange))
	} else {
		baseLogger.Info("report export disabled")
	}

	slipHandler := handlers.NewSlipHandler(ordersSvc, baseLogger.Named("handlers.slip"))
	engine := router.New(slipHandler, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         cfg.Print.Addr,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("slip server starting", zap.String("addr", cfg.Print.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Error("slip server crashed", zap.Error(err))
		}
	}()

	program := tea.NewProgram(tui.New(tui.Deps{
		Logger:    baseLogger,
		Session:   sessionSvc,
		Inventory: inventorySvc,
		Orders:    ordersSvc,
		Exporter:  exporter,
		PrintAddr: cfg.Print.Addr,
	}), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		baseLogger.Fatal("interface crashed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
