package components

import (
	"time"

	"majestic-manor/internal/infra/cache"
	"majestic-manor/internal/infra/readstore"
	"majestic-manor/internal/infra/repository"
	"majestic-manor/internal/pkg/config"
	"majestic-manor/internal/usecase/commands"
	"majestic-manor/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewRoomReadStore,
		NewCachedRoomReadStore,
		fx.Annotate(
			func(s *readstore.CachedRoomReadStore) *readstore.CachedRoomReadStore { return s },
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(commands.RoomCacheInvalidator)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewBillingReadStore,
			fx.As(new(queries.BillingReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)

func NewCachedRoomReadStore(inner *readstore.RoomReadStore, c cache.Cache, cfg config.Config) *readstore.CachedRoomReadStore {
	ttl := time.Duration(cfg.Redis.TTLSec) * time.Second
	return readstore.NewCachedRoomReadStore(inner, c, ttl)
}
