// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GroupB-499/RidePSUBackend/internal/http/handlers"
	"github.com/GroupB-499/RidePSUBackend/internal/http/middleware"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/booking"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/notify"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/place"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/rating"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/ride"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/schedule"
	"github.com/GroupB-499/RidePSUBackend/internal/relay"
)

type RouterDeps struct {
	Schedule *schedule.Service
	Booking  *booking.Service
	Ride     *ride.Resolver
	Notify   *notify.Service
	Place    *place.Service
	Rating   *rating.Service
	Hub      *relay.Hub
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS())

	api := r.Group("/api")

	scheduleHandler := handlers.NewScheduleHandler(deps.Schedule)
	api.POST("/add-schedule", scheduleHandler.Add)
	api.GET("/get-schedules", scheduleHandler.List)
	api.GET("/get-schedules/:id", scheduleHandler.Get)
	api.PUT("/update-schedule/:id", scheduleHandler.Update)
	api.DELETE("/delete-schedule/:id", scheduleHandler.Delete)
	api.POST("/assign-driver", scheduleHandler.AssignDriver)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	api.POST("/create-booking", bookingHandler.Create)
	api.GET("/booking-count", bookingHandler.Count)
	api.GET("/bookings/:userId", bookingHandler.ListForUser)
	api.DELETE("/delete-booking/:bookingId", bookingHandler.Delete)
	api.POST("/delay-bookings", bookingHandler.Delay)

	rideHandler := handlers.NewRideHandler(deps.Ride)
	api.GET("/current-ride/:userId", rideHandler.CurrentForPassenger)
	api.GET("/driver-current-ride/:driverId", rideHandler.CurrentForDriver)

	notifyHandler := handlers.NewNotifyHandler(deps.Notify)
	api.POST("/register-token", notifyHandler.RegisterToken)
	api.GET("/notifications/:userId", notifyHandler.ListForUser)

	placeHandler := handlers.NewPlaceHandler(deps.Place)
	api.POST("/add-location", placeHandler.Add)
	api.GET("/locations", placeHandler.List)

	ratingHandler := handlers.NewRatingHandler(deps.Rating)
	api.POST("/submit-rating", ratingHandler.Submit)
	api.GET("/ratings", ratingHandler.List)
	api.GET("/ratings/:userId", ratingHandler.ListByUser)

	liveHandler := handlers.NewLiveHandler(deps.Hub, deps.Notify)
	r.GET("/ws", liveHandler.Serve)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
