package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"Plenum/internal/auth"
	"Plenum/internal/calc/duct"
	"Plenum/internal/calc/equipment"
	"Plenum/internal/calc/loadcalc"
	"Plenum/internal/calc/project/autodesign"
	"Plenum/internal/calc/project/batch"
	"Plenum/internal/calc/project/importer"
	"Plenum/internal/calc/project/recommend"
	"Plenum/internal/calc/report"
	"Plenum/internal/calc/terminal"
	"Plenum/internal/profile"
	"Plenum/internal/repo"
)

var wg sync.WaitGroup

func CORS(router *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		router.ServeHTTP(w, r)
	})
}

func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}

func registerRoutes(router *mux.Router, logger *zap.Logger, userRepo repo.Repository, jwtKey []byte) {
	authEnv := &auth.Env{JWTKey: jwtKey, Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	api.Use(requestLogger(logger))

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureAPI := api.PathPrefix("/user").Subrouter()
	secureAPI.Use(authEnv.AuthMiddleware)

	secureAPI.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureAPI.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureAPI.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureAPI.HandleFunc("/profile/design-defaults", profileH.DesignDefaults).Methods("GET")
	secureAPI.HandleFunc("/profile/design-defaults", profileH.UpdateDesignDefaults).Methods("PUT")

	loadsH := &loadcalc.Handler{}
	equipmentH := &equipment.Handler{}
	ductH := &duct.Handler{}
	terminalH := &terminal.Handler{}
	batchH := &batch.Handler{}
	autoH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	secureAPI.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/loads/aed", loadsH.AED).Methods("POST")
	secureAPI.HandleFunc("/tools/loads/sweep", loadsH.Sweep).Methods("POST")
	secureAPI.HandleFunc("/tools/equipment/verify", equipmentH.Verify).Methods("POST")
	secureAPI.HandleFunc("/tools/duct/design", ductH.Design).Methods("POST")
	secureAPI.HandleFunc("/tools/terminal/select", terminalH.Select).Methods("POST")
	secureAPI.HandleFunc("/tools/project/batch", batchH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/project/autodesign", autoH.Design).Methods("POST")
	secureAPI.HandleFunc("/tools/project/recommend", recommendH.Recommend).Methods("POST")
	secureAPI.HandleFunc("/tools/import/rooms", importH.RoomsXLSX).Methods("POST")
	secureAPI.HandleFunc("/tools/import/rooms-csv", importH.RoomsCSV).Methods("POST")
	secureAPI.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using process environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		logger.Fatal("TOKEN_KEY environment variable is not set")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := auth.InitDB()
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	defer db.Close()

	router := mux.NewRouter()
	registerRoutes(router, logger, repo.NewPostgresUserDB(db), []byte(tokenKey))

	server := &http.Server{
		Addr:    ":" + port,
		Handler: CORS(router),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")

	wg.Wait()
}
