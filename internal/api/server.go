package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/ascend/internal/service"
	"github.com/limbo/ascend/pkg/cleanup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/limbo/ascend/docs"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	habitService      service.HabitsServiceI
	completionService service.CompletionServiceI
	reflectionService service.ReflectionServiceI
	bodyService       service.BodyServiceI
	nutritionService  service.NutritionServiceI
	jwtService        JWTServiceI
	authLimiter       *rate.Limiter
}

type ServicesList struct {
	UserService       service.UserServiceI
	HabitsService     service.HabitsServiceI
	CompletionService service.CompletionServiceI
	ReflectionService service.ReflectionServiceI
	BodyService       service.BodyServiceI
	NutritionService  service.NutritionServiceI
	JwtService        JWTServiceI
	// Requests per second allowed on register and login, 0 disables the limit
	AuthRateLimit float64
}

func New(servicesOptions *ServicesList) *Server {
	limit := rate.Inf
	if servicesOptions.AuthRateLimit > 0 {
		limit = rate.Limit(servicesOptions.AuthRateLimit)
	}
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		habitService:      servicesOptions.HabitsService,
		completionService: servicesOptions.CompletionService,
		reflectionService: servicesOptions.ReflectionService,
		bodyService:       servicesOptions.BodyService,
		nutritionService:  servicesOptions.NutritionService,
		jwtService:        servicesOptions.JwtService,
		authLimiter:       rate.NewLimiter(limit, max(1, int(servicesOptions.AuthRateLimit))),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)
		r.Group(func(r chi.Router) {
			r.Use(s.RateLimitMiddleware)
			r.Post("/auth/register", s.Register)
			r.Post("/auth/login", s.Login)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/habits", s.GetHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/progress/daily", s.DailyProgress)
			r.Get("/habits/progress/weekly", s.WeeklyProgress)
			r.Get("/habits/progress/monthly", s.MonthlyHeatmap)
			r.Get("/habits/{id}", s.GetHabit)
			r.Put("/habits/{id}", s.UpdateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/toggle", s.ToggleHabit)
			r.Get("/habits/{id}/stats", s.HabitStats)
			r.Get("/xp", s.GetXP)

			r.Get("/reflections", s.GetReflection)
			r.Post("/reflections", s.SaveReflection)
			r.Get("/reflections/history", s.ReflectionHistory)

			r.Post("/body/gym", s.LogGym)
			r.Get("/body/symmetry", s.WeeklySymmetry)
			r.Get("/body/trend", s.WeeklyTrend)
			r.Get("/body/recovery", s.Recovery)
			r.Get("/body/steps", s.GetSteps)
			r.Post("/body/steps", s.SaveSteps)
			r.Get("/body/steps/weekly", s.WeeklySteps)

			r.Post("/nutrition/food", s.SaveFoodLog)
			r.Get("/nutrition/today", s.NutritionToday)
			r.Get("/nutrition/target", s.GetTarget)
			r.Put("/nutrition/target", s.SetTarget)
			r.Get("/nutrition/weekly", s.NutritionWeekly)
			r.Get("/nutrition/monthly", s.NutritionMonthly)
		})
	})
}

// Run serves until SIGINT or SIGTERM, then drains connections and runs cleanup jobs.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Println("API server listening on " + address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	select {
	case err := <-errCh:
		cleanup.CleanUp()
		return err
	case <-stop:
	}
	log.Println("shutting down API server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)
	cleanup.CleanUp()
	return err
}
