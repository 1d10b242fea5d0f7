package bootstrap

import (
	"database/sql"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/archfind/arch-backend/internal/api/http"
	"github.com/archfind/arch-backend/internal/api/http/middleware"
	"github.com/archfind/arch-backend/internal/auth"
	"github.com/archfind/arch-backend/internal/design/costing"
	designhttp "github.com/archfind/arch-backend/internal/design/http"
	"github.com/archfind/arch-backend/internal/design/repository"
	"github.com/archfind/arch-backend/internal/design/service"
	"github.com/archfind/arch-backend/internal/users"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	UsersDB     *sql.DB
	Cache       *redis.Client
	// FirebaseAuth enables token verification when set; dev traffic relies on
	// the WithUser header fallback instead.
	FirebaseAuth *fbauth.Client
	// PriceSource may be nil; the estimator then uses its static tables only.
	PriceSource    costing.PriceSource
	PricingTimeout time.Duration
	AllowedOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = dep.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders,
		"Authorization", "X-Request-Id", "X-User-Id", "X-User-Email", "X-User-Name", "X-User-Photo")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Cache)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	if dep.FirebaseAuth != nil {
		api.Use(auth.FirebaseAuthMiddleware(dep.FirebaseAuth))
	}

	userRepo := users.NewRepo(dep.UsersDB)
	api.Use(auth.WithUser(userRepo))

	designRepo := repository.NewRepo(dep.DB)
	estimator := costing.New(dep.PriceSource, dep.PricingTimeout)
	designSvc := service.NewDesignService(designRepo, estimator)

	designsGroup := api.Group("/designs")
	designhttp.New(designSvc).Register(designsGroup)

	return r
}
