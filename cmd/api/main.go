package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gaspartv/api-whatsapp-fake/internal/config"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/broadcast"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/database"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/http/handlers"
	appmiddleware "github.com/gaspartv/api-whatsapp-fake/internal/infra/http/middleware"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/integration/evolution"
	"github.com/gaspartv/api-whatsapp-fake/internal/infra/mail"
	"github.com/gaspartv/api-whatsapp-fake/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, "internal/infra/database/migrations"); err != nil {
		log.Fatal(err)
	}

	// 1. Repositório
	guestRepo := database.NewGuestRepository(db)

	// 2. Gateway e notificador
	gateway := evolution.NewClient(cfg.EvolutionURL, cfg.EvolutionAPIKey, cfg.EvolutionInstance)
	notifier := mail.NewConfirmationSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPassword, cfg.MailNotifyTo,
	)

	// 3. Disparo de convites (em memória, um convidado por intervalo)
	broadcaster := broadcast.NewBroadcaster(gateway, cfg.InviteImageURL, cfg.BroadcastInterval)

	// 4. UseCases
	registerUC := usecase.NewRegisterGuestsUseCase(guestRepo)
	reportUC := usecase.NewConfirmationReportUseCase(guestRepo)
	confirmUC := usecase.NewConfirmGuestUseCase(guestRepo, notifier)
	broadcastUC := usecase.NewBroadcastInvitationsUseCase(guestRepo, broadcaster)

	// 5. Handlers
	guestHandler := handlers.NewGuestHandler(registerUC, reportUC, confirmUC, guestRepo)
	messageHandler := handlers.NewMessageHandler(gateway)
	broadcastHandler := handlers.NewBroadcastHandler(broadcastUC, broadcaster)
	healthHandler := handlers.NewHealthHandler(db, cfg.EvolutionURL)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Post("/guests", guestHandler.Register)
	r.Get("/guests", guestHandler.List)
	r.Get("/guests/confirmed", guestHandler.Report)
	r.Patch("/guests/confirm", guestHandler.Confirm)

	r.Get("/invitations/send", broadcastHandler.Trigger)
	r.Get("/invitations/status", broadcastHandler.Status)

	r.Post("/message/text", messageHandler.SendText)
	r.Post("/message/media", messageHandler.SendMedia)
	r.Post("/message/media-file", messageHandler.SendMediaFile)
	r.Post("/message/audio", messageHandler.SendAudio)
	r.Post("/message/audio-file", messageHandler.SendAudioFile)
	r.Post("/message/location", messageHandler.SendLocation)
	r.Post("/message/contact", messageHandler.SendContact)
	r.Post("/message/reaction", messageHandler.SendReaction)
	r.Post("/message/buttons", messageHandler.SendButtons)
	r.Post("/message/list", messageHandler.SendList)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("💍 API de convites rodando na porta %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
