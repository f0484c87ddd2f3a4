package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/eduhub/apps/api/echo"
	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/assistant"
	"github.com/trezcool/eduhub/core/notification"
	"github.com/trezcool/eduhub/core/offline"
	"github.com/trezcool/eduhub/core/pomodoro"
	"github.com/trezcool/eduhub/core/student"
	aisvc "github.com/trezcool/eduhub/services/ai"
	emailsvc "github.com/trezcool/eduhub/services/email"
	logsvc "github.com/trezcool/eduhub/services/logger"
	notifysvc "github.com/trezcool/eduhub/services/notifier"
	"github.com/trezcool/eduhub/storage/cachestore"
	dummydb "github.com/trezcool/eduhub/storage/database/dummy"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up logger
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	db, err := dummydb.OpenSeeded()
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// =========================================================================
	// Offline Cache

	var transport http.RoundTripper
	if conf.PWA.Enabled {
		store := cachestore.Open()

		offWorker := offline.NewWorker(store, nil, conf, logger)
		if err = offWorker.Install(ctx); err != nil {
			logger.Error(fmt.Sprintf("installing offline cache: %v", err), err)
		} else if err = offWorker.Activate(ctx); err != nil {
			logger.Error(fmt.Sprintf("activating offline cache: %v", err), err)
		}

		interceptor := offline.NewInterceptor(store, nil, conf, logger)
		defer interceptor.Flush()
		transport = interceptor
	}

	// =========================================================================
	// Notifications

	reg := notification.NewPortRegistration(16)
	workerDone := make(chan struct{})
	reg.Bind(workerDone)

	notifWorker := notification.NewWorker(notifysvc.NewConsoleShower(conf), notifysvc.NewConsoleClients(), conf, logger)
	go func() {
		defer close(workerDone)
		notifWorker.Run(ctx, reg.Port())
	}()

	gateway := notification.NewGateway(
		notifysvc.NewConsoleShower(conf),
		reg,
		notifysvc.NewConfigPrompter(conf),
		conf,
		logger,
	)
	gateway.RequestPermission()

	// =========================================================================
	// Domain Services

	stuSvc := student.NewService(dummydb.NewStudentRepository(db), mailSvc, gateway, logger)

	var session *assistant.Session
	if conf.AI.Enabled {
		session = assistant.NewSession(aisvc.NewService(conf, transport, logger), logger)
		go session.RunHealthChecks(ctx, 0)
	}

	timer := pomodoro.NewTimer(pomodoro.DefaultSettings(), gateway, logger)
	go timer.Run(ctx)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err = http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			StudentSvc: stuSvc,
			Session:    session,
			Timer:      timer,
			Gateway:    gateway,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		sdCtx, sdCancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer sdCancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(sdCtx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
