package components

import (
	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/pkg/clock"
	"majestic-manor/internal/pkg/config"
	"majestic-manor/internal/usecase"
	"majestic-manor/internal/usecase/commands"
	"majestic-manor/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricer,
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewRoomCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewBillingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPricer(cfg config.Config) *booking.Pricer {
	mode, err := booking.NewPricingMode(cfg.Booking.PricingMode)
	if err != nil {
		panic("invalid BOOKING_PRICING_MODE: " + err.Error())
	}
	return booking.NewPricer(mode)
}

func NewRoomQueries(store queries.RoomReadStore, cfg config.Config, clk clock.Clock) queries.RoomQueries {
	mode := queries.AvailabilityMode(cfg.Booking.AvailabilityMode)
	return queries.NewRoomQueries(store, mode, clk)
}
