// Package callblock provides the call-blocking bounded context module.
package callblock

import (
	"callblock_backend/internal/callblock/carrier"
	"callblock_backend/internal/callblock/handler"
	"callblock_backend/internal/callblock/notify"
	"callblock_backend/internal/callblock/service"
	"callblock_backend/internal/callblock/settings"
	"callblock_backend/platform/config"
	"callblock_backend/platform/i18n"
	"callblock_backend/platform/logger"
	"callblock_backend/platform/phone"
	"callblock_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"
)

// Module is the call-blocking bounded context module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and wires the call-blocking module: the provider store
// on Postgres, the manager store on redis, log-backed notification and
// toast adapters, and the built-in message catalog.
func NewModule(pool *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config, val *validator.Validator, log *logger.Logger) (*Module, error) {
	messages, err := i18n.NewResolver(language.English, service.DefaultMessages())
	if err != nil {
		return nil, err
	}

	selector := settings.NewSelector(
		settings.NewProviderStore(pool),
		settings.NewManagerStore(redisClient),
	)

	svc := service.NewService(service.Deps{
		Formatter: phone.NewFormatter(cfg),
		Messages:  messages,
		Notifier:  notify.NewLogNotifier(log),
		Toaster:   notify.NewLogToaster(log),
		Carrier:   carrier.NewStaticProvider(nil),
		System:    carrier.StaticSystemSettings{EnhancedCallBlocking: cfg.EnhancedBlockingDefault},
		Selector:  selector,
		Log:       log,
	})

	return &Module{
		handler: handler.New(svc, settings.NewConfigFlags(cfg), val),
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "callblock"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts call-blocking routes on the provided group.
func (m *Module) RegisterRoutes(rg *gin.RouterGroup) {
	m.handler.RegisterRoutes(rg.Group("/blocked-numbers"))
}
