package api

import (
	"context"
	"math/rand/v2"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nine-hub/api/datastore"
	"github.com/nine-hub/api/webhook"
)

type Config struct {
	HTTPPort          string
	DatabaseType      string
	DatabaseHost      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseName      string
	SSLMode           string
	JwtSecret         string
	JwtAccessDuration int // seconds
	JwtDomain         string
	AdminKeyHash      string
	AllowedOrigins    []string
	DevMode           bool
	WebhookSecret     string
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, email, source string) error
	Demo() bool
}

type Expirer interface {
	ExpireLapsed(ctx context.Context) (int64, error)
}

type Application struct {
	Config           Config
	Logger           *zap.Logger
	DB               Pinger
	SubscriptionRepo datastore.SubscriptionRepository
	WaitlistRepo     datastore.WaitlistRepository
	Webhooks         *webhook.Processor
	Newsletter       Subscriber
	Expiry           Expirer

	validate *validator.Validate
	now      func() time.Time
	newRand  func() *rand.Rand
}

// NewApplication fills in the logger, validator and clock the handlers rely on
func NewApplication(app Application) *Application {
	if app.Logger == nil {
		app.Logger = zap.NewNop()
	}
	app.validate = newValidator()
	app.now = time.Now
	app.newRand = func() *rand.Rand {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &app
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
