package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/projectdesk/projectdesk-backend/internal/api/http"
	"github.com/projectdesk/projectdesk-backend/internal/api/http/middleware"
	projecthttp "github.com/projectdesk/projectdesk-backend/internal/projects/http"
	projectrepo "github.com/projectdesk/projectdesk-backend/internal/projects/repository"
	projectsvc "github.com/projectdesk/projectdesk-backend/internal/projects/service"
	userhttp "github.com/projectdesk/projectdesk-backend/internal/users/http"
	userrepo "github.com/projectdesk/projectdesk-backend/internal/users/repository"
	usersvc "github.com/projectdesk/projectdesk-backend/internal/users/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	userService := usersvc.New(userrepo.NewRepo(dep.DB))
	projectService := projectsvc.New(projectrepo.NewRepo(dep.DB), userService)

	userhttp.Register(api.Group("/users"), userService)
	projecthttp.Register(api.Group("/projects"), projectService)

	return r
}
