package main

import (
	"context"
	"flag"
	"log/syslog"
	"os"
	"os/signal"
	"time"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/coffeeconnect/coffeeconnect/authapi"
	"github.com/coffeeconnect/coffeeconnect/client"
	"github.com/coffeeconnect/coffeeconnect/persistent"
	"github.com/coffeeconnect/coffeeconnect/places"
	"github.com/coffeeconnect/coffeeconnect/transport/rest"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/sirupsen/logrus"
	logrusys "github.com/sirupsen/logrus/hooks/syslog"
	"github.com/tidwall/buntdb"
	"github.com/uptrace/bun"
	_ "github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

func listenAndServe(
	ctx context.Context,
	bdb *buntdb.DB,
	db *bun.DB,
	config appConfig,
	debug bool,
) func() error {
	profileStore := &persistent.ProfileStore{DB: db}
	likeStore := &persistent.LikeStore{DB: db}
	preferenceStore := &persistent.PreferenceStore{DB: db}
	sessionStore := &persistent.SessionStore{Buntdb: bdb}

	// missing auth credentials leave the collaborators nil; the owning
	// handlers report that as a configuration error instead of crashing
	var deleteAuthUser coffeeconnect.UserDeleter
	var userInfo authapi.UserInfo
	if config.authApiUrl != "" {
		userInfo = authapi.RestUserInfo(config.authApiUrl)
		if config.authServiceKey != "" {
			deleteAuthUser = authapi.RestUserDeleter(config.authApiUrl, config.authServiceKey)
		}
	}

	accountController := rest.AccountController{
		Profiles:       profileStore,
		DeleteAuthUser: deleteAuthUser,
	}
	likeController := rest.LikeController{Likes: likeStore}
	placeController := rest.PlaceController{
		ApiKey:       config.placesApiKey,
		FetchDetails: places.RestDetailsProvider(config.placesApiKey),
	}
	profileController := rest.ProfileController{Store: profileStore}
	onboardingController := rest.OnboardingController{
		Accessor: &coffeeconnect.Onboarding{
			Profiles:    profileStore,
			Preferences: preferenceStore,
		},
	}
	sessionController := rest.SessionController{Store: sessionStore}
	authController := rest.AuthController{
		UserInfo:     userInfo,
		SessionStore: sessionStore,
	}

	server := fiber.New()
	server.Use(rest.LogHandler())

	api := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: rest.ErrorHandler,
	})

	allowOrigins := "https://coffeeconnect.app"
	if debug {
		allowOrigins += ", http://localhost:3000"
	}
	api.Use(cors.New(cors.Config{AllowOrigins: allowOrigins}))
	api.Use(rest.SessionResolver(sessionStore))

	api.Get("/status", monitor.New())
	accountController.InstallTo(api)
	likeController.InstallTo(api)
	placeController.InstallTo(api)
	profileController.InstallTo(api)
	onboardingController.InstallTo(api)
	sessionController.InstallTo(api)
	authController.InstallTo(api)

	server.Mount("/api/", api)

	server.Static("/", "./www/", fiber.Static{
		Browse: false,
		Index:  "index.html",
	})

	server.Use(rest.NotFoundHandler)

	var addr string
	if debug {
		addr = "127.0.0.1:8080"
	} else {
		addr = ":8080"
	}
	go server.Listen(addr)

	return func() error {
		return server.Shutdown()
	}
}

func setupLogger(verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.Stamp,
		FullTimestamp:   true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	syslogHook, err := logrusys.NewSyslogHook("", "", syslog.LOG_USER, "coffeeconnect_backend")
	if err != nil {
		logrus.WithError(err).Fatalln("Could not create syslog hook.")
		return
	}
	logrus.AddHook(syslogHook)
}

type appConfig struct {
	authApiUrl     string
	authServiceKey string
	placesApiKey   string
}

func appConfigFromEnv() appConfig {
	warnEnv := func(key string) string {
		value := os.Getenv(key)
		if value == "" {
			logrus.Warningln(key + " not set! Dependent endpoints will report a configuration error.")
		}
		return value
	}
	return appConfig{
		authApiUrl:     warnEnv("AUTH_API_URL"),
		authServiceKey: warnEnv("AUTH_SERVICE_KEY"),
		placesApiKey:   warnEnv("PLACES_API_KEY"),
	}
}

func awaitInterruption() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
}

func main() {
	flag.Parse()
	debug := os.Getenv("DEBUG") == "true"
	setupLogger(debug)
	logrus.Infoln("Starting backend.")

	pgDsn := os.Getenv("POSTGRES_DSN")
	if pgDsn == "" {
		logrus.Fatalln("Environment variable POSTGRES_DSN is not set!")
	}

	bdb, err := buntdb.Open("kv.db")
	if err != nil {
		logrus.WithError(err).Fatalln("Could not open buntdb.")
	}
	defer bdb.Close()

	logrus.Infoln("Opening database.")
	db := persistent.PgOpen(context.Background(), pgDsn)
	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	defer db.DB.Close()
	defer db.Close()

	migration := client.Migration{Store: &persistent.BuntStorage{Buntdb: bdb}}
	if cleared, err := migration.Run(); err != nil {
		logrus.WithError(err).Warningln("Legacy storage cleanup failed.")
	} else if cleared {
		logrus.Infoln("Legacy storage keys cleared.")
	}

	config := appConfigFromEnv()

	logrus.Infoln("Starting listening... To shut down use ^C")
	shutdown := listenAndServe(context.Background(), bdb, db, config, debug)

	awaitInterruption()

	logrus.Infoln("Shutting down...")
	err = shutdown()
	if err != nil {
		logrus.WithError(err).Warningln("Fiber shutdown failed.")
	}
	logrus.Exit(0)
}
