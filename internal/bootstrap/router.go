package bootstrap

import (
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	aihttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/ai/http"
	analyticshttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/analytics/http"
	httpapi "github.com/UniChain-25-26J-287/uni-repo-backend/internal/api/http"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/api/http/middleware"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/auth"
	authmw "github.com/UniChain-25-26J-287/uni-repo-backend/internal/auth/middleware"
	chainhttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/chain/http"
	projectshttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/http"
	studentshttp "github.com/UniChain-25-26J-287/uni-repo-backend/internal/students/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	DB  *pgxpool.Pool
	RDB *redis.Client

	Projects  *projectshttp.Handler
	Students  *studentshttp.Handler
	Analytics *analyticshttp.Handler
	Chain     *chainhttp.Handler
	AI        *aihttp.Handler

	// FirebaseAuth guards the admin group. nil leaves the group open and is
	// acceptable only in development.
	FirebaseAuth *fbauth.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.RDB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(auth.WithViewer())

	projectsGroup := api.Group("/projects")
	dep.Projects.Register(projectsGroup)

	dep.Chain.Register(api)

	aiGroup := api.Group("/ai")
	aiGroup.Use(middleware.RateLimit(1, 5))
	dep.AI.Register(aiGroup)

	admin := api.Group("/admin")
	if dep.FirebaseAuth != nil {
		admin.Use(authmw.FirebaseAuthMiddleware(dep.FirebaseAuth))
	} else {
		log.Println("WARNING: admin routes are unauthenticated (no Firebase credentials)")
	}

	dep.Projects.RegisterAdmin(admin.Group("/projects"))
	if dep.Students != nil {
		dep.Students.Register(admin.Group("/students"))
	}
	if dep.Analytics != nil {
		dep.Analytics.Register(admin.Group("/analytics"))
	}

	return r
}
