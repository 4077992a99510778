// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/dashboarddelivery"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/loandelivery"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/transferdelivery"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Ledger *ledger.Ledger
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated handlers and routes.
func New(lg *ledger.Ledger, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountHandler := accountdelivery.NewHandler(lg)
	transferHandler := transferdelivery.NewHandler(lg)
	loanHandler := loandelivery.NewHandler(lg)
	dashboardHandler := dashboarddelivery.NewHandler(lg)

	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.PUT("/accounts/:id", accountHandler.Update)
	engine.DELETE("/accounts/:id", accountHandler.Delete)
	engine.GET("/accounts/:id/transfers", accountHandler.ListTransfers)

	engine.POST("/transfers", transferHandler.Create)
	engine.GET("/transfers", transferHandler.List)
	engine.GET("/transfers/:id", transferHandler.Get)
	engine.PUT("/transfers/:id", transferHandler.Update)
	engine.DELETE("/transfers/:id", transferHandler.Delete)

	engine.POST("/loans", loanHandler.Create)
	engine.GET("/loans", loanHandler.List)
	engine.GET("/loans/:id", loanHandler.Get)
	engine.PUT("/loans/:id", loanHandler.Update)
	engine.DELETE("/loans/:id", loanHandler.Delete)
	engine.POST("/loans/:id/repayments", loanHandler.Repay)
	engine.GET("/loans/:id/total-due", loanHandler.TotalDue)

	engine.GET("/dashboard/volumes", dashboardHandler.Volumes)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("accounttype", accountdelivery.ValidAccountType)
		if err != nil {
			return nil, errors.New("cannot register account type validator")
		}
	}

	server := &Server{
		Ledger: lg,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
