package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/skillhive/workforce/internal/config"
	"github.com/skillhive/workforce/internal/employee"
	employeedomain "github.com/skillhive/workforce/internal/employee/domain"
	"github.com/skillhive/workforce/internal/mentorship"
	mentorshipdomain "github.com/skillhive/workforce/internal/mentorship/domain"
	"github.com/skillhive/workforce/internal/observability"
	obsmiddleware "github.com/skillhive/workforce/internal/observability/logger"
	obsmetrics "github.com/skillhive/workforce/internal/observability/metrics"
	obstracing "github.com/skillhive/workforce/internal/observability/tracing"
	"github.com/skillhive/workforce/internal/skill"
	skilldomain "github.com/skillhive/workforce/internal/skill/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	employee.Module,
	skill.Module,
	mentorship.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	employeeSvc  employeedomain.Service
	skillRepo    skilldomain.Repository
	mentoringSvc mentorshipdomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	EmployeeSvc  employeedomain.Service
	SkillRepo    skilldomain.Repository
	MentoringSvc mentorshipdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		employeeSvc:  p.EmployeeSvc,
		skillRepo:    p.SkillRepo,
		mentoringSvc: p.MentoringSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	// -------- Directory --------
	api.GET("/employees", s.ListEmployees)
	api.GET("/employees/:id", s.GetEmployeeProfile)

	// -------- Skill catalog --------
	api.GET("/skills", s.ListSkills)

	// -------- Mentoring --------
	mentoring := api.Group("/mentoring")
	mentoring.GET("/mentors", s.ListMentors)
	mentoring.GET("/mentors/:id", s.GetMentor)
	mentoring.POST("/recommend", s.RecommendMentors)
	mentoring.POST("/request", s.CreateMentorshipRequest)
	mentoring.GET("/requests", s.ListMentorshipRequests)
	mentoring.PUT("/requests/:id", s.UpdateMentorshipRequest)
	mentoring.DELETE("/requests/:id", s.DeleteMentorshipRequest)
	mentoring.GET("/pairs", s.ListMentorshipPairs)
	mentoring.GET("/statistics", s.MentoringStatistics)
}
