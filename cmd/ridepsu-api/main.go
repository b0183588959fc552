// README: Entry point; loads config, wires services, starts HTTP server and the reminder scheduler.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GroupB-499/RidePSUBackend/internal/config"
	httptransport "github.com/GroupB-499/RidePSUBackend/internal/http"
	"github.com/GroupB-499/RidePSUBackend/internal/infra"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/booking"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/notify"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/place"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/rating"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/ride"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/schedule"
	"github.com/GroupB-499/RidePSUBackend/internal/relay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("RIDEPSU_FIREBASE_PROJECT_ID is required")
	}
	fb, err := infra.NewFirebase(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}
	defer fb.Close()

	scheduleStore := schedule.NewFirestoreStore(fb.Firestore)
	scheduleSvc := schedule.NewService(scheduleStore)

	bookingStore := booking.NewFirestoreStore(fb.Firestore)
	bookingSvc := booking.NewService(bookingStore, scheduleStore)

	rideResolver := ride.NewResolver(bookingStore, scheduleStore, loc, cfg.RideGrace)

	notifyStore := notify.NewFirestoreStore(fb.Firestore)
	pusher := notify.NewFCMPusher(fb.Messaging)
	notifySvc := notify.NewService(notifyStore, pusher, bookingStore)

	placeSvc := place.NewService(place.NewFirestoreStore(fb.Firestore))
	ratingSvc := rating.NewService(rating.NewFirestoreStore(fb.Firestore))

	hub := relay.NewHub()

	reminder := notify.NewScheduler(scheduleStore, bookingStore, notifyStore, pusher, loc, cfg.Reminder)
	go reminder.Run(ctx)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Schedule: scheduleSvc,
		Booking:  bookingSvc,
		Ride:     rideResolver,
		Notify:   notifySvc,
		Place:    placeSvc,
		Rating:   ratingSvc,
		Hub:      hub,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
