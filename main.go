package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"picker.punishwheel.com/config"
	"picker.punishwheel.com/models"
	"picker.punishwheel.com/pkg/db"
	"picker.punishwheel.com/pkg/global"
	"picker.punishwheel.com/pkg/picker"
	"picker.punishwheel.com/pkg/sources"
)

func main() {

	// 🔒 Panic protection
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("🔥 Panic recovered: %v\n", r)
		}
	}()

	// 🧾 Initialize logger
	loggerResult, _ := config.InitLogger(true)
	log := loggerResult.Logger

	log.Info("🎡 App started")

	// ⚙️ Load configuration
	config.LoadConfig("appsettings.yaml")
	log.Info("⚙️ Configuration loaded")

	if len(config.Settings.Fallback) == 0 {
		log.Fatal("❌ Fallback list must contain at least one punishment")
	}

	// 🗃️ Initialize DB when draw history is on
	if config.Settings.History.Enabled {
		db.InitDB(log)
		log.Info("🗃️ Database initialized")

		if err := db.AutoMigrate(); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}
		log.Info("✅ Auto-migration complete")
	}

	// ✅ Validate and initialize streaming
	streamCfg := config.Settings.Streaming
	if err := global.ValidateStreamingConfig(streamCfg, log); err != nil {
		log.Fatal(err)
	}

	if streamCfg.Enabled {
		global.InitStreamingClients(streamCfg)
		defer global.ShutdownStreamingClients()
	}

	// 🎲 Build the picker
	src := sources.Config{
		Provider: config.Settings.Source,
		SheetID:  config.Settings.SheetID,
		TabName:  config.Settings.TabName,
		Fallback: config.Settings.Fallback,
	}
	p, err := picker.NewPicker(src, log)
	if err != nil {
		log.Fatalf("❌ Failed to build picker: %v", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/punishment", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		draw, err := p.Next()
		if err != nil {
			log.WithError(err).Error("❌ Draw failed")
			http.Error(w, "no punishment available", http.StatusInternalServerError)
			return
		}

		// ➕ History and streaming happen off the request path
		if config.Settings.History.Enabled {
			go func(d picker.Draw) {
				row := models.PunishmentDraw{
					Text:     d.Text,
					Source:   d.Source,
					Cycle:    d.Cycle,
					ServedAt: d.ServedAt,
				}
				if err := db.SaveDraws([]models.PunishmentDraw{row}, config.Settings.Instance, log); err != nil {
					log.Errorf("❌ Failed to save draw: %v", err)
				}
			}(draw)
		}

		if streamCfg.Enabled {
			go picker.PushDrawToStream(draw, streamCfg, log)
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, draw.Text)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	listen := config.Settings.Listen
	if listen == "" {
		listen = ":8080"
	}
	srv := &http.Server{Addr: listen, Handler: mux}

	// 🛑 Handle shutdown signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("listen", listen).Info("⏳ Serving punishments")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ HTTP server failed: %v", err)
		}
	}()

	<-stop
	log.Info("🛑 Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("❌ Graceful shutdown failed: %v", err)
	}

	log.Info("👋 App shutdown complete")
}
