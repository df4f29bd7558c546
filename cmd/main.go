package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/kfir19/MyLibrary/configs"
	"github.com/kfir19/MyLibrary/internal/catalog"
	"github.com/kfir19/MyLibrary/internal/daemon"
	"github.com/kfir19/MyLibrary/internal/db"
	"github.com/kfir19/MyLibrary/internal/handlers"
	"github.com/kfir19/MyLibrary/internal/middleware"
	"github.com/kfir19/MyLibrary/internal/store"
	"github.com/kfir19/MyLibrary/internal/utils"
)

func main() {
	cfg := configs.LoadConfig()

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	bookColl := client.Database(cfg.DBName).Collection("books")
	auditColl := client.Database(cfg.DBName).Collection("audit_logs")

	bookStore := store.NewBookStore(bookColl)
	catalogService := catalog.NewService(bookStore, cfg.LoanPeriodDays)
	auditLogger := utils.Logger{Collection: auditColl}

	bookHandler := handlers.NewBookHandler(catalogService, auditLogger)

	r := mux.NewRouter()
	r.Use(middleware.JSONMiddleware)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})

	r.HandleFunc("/books", bookHandler.GetBooks).Methods("GET")
	r.HandleFunc("/books/allAvailable", bookHandler.GetAvailableBooks).Methods("GET")
	r.HandleFunc("/books/dateIsDue", bookHandler.GetOverdueBooks).Methods("GET")
	r.HandleFunc("/books/title/{title}", bookHandler.GetBooksByTitle).Methods("GET")
	r.HandleFunc("/books/author/{author}", bookHandler.GetBooksByAuthor).Methods("GET")
	r.HandleFunc("/books/genre/{genre}", bookHandler.GetBooksByGenre).Methods("GET")
	r.HandleFunc("/books/create", bookHandler.CreateBook).Methods("POST")
	r.HandleFunc("/books/update", bookHandler.UpdateBook).Methods("PUT")
	r.HandleFunc("/books/borrow/{id}", bookHandler.BorrowBook).Methods("POST")
	r.HandleFunc("/books/return/{id}", bookHandler.ReturnBook).Methods("PUT")
	r.HandleFunc("/books/{id}", bookHandler.GetBook).Methods("GET")

	daemonCtx, stopDaemons := context.WithCancel(context.Background())

	scanner := &daemon.OverdueScanner{
		Catalog: catalogService,
		Period:  cfg.OverdueScanPeriod,
	}
	scanner.Start(daemonCtx)

	exporter := &daemon.LogExporter{
		Coll:   auditColl,
		Period: cfg.AuditExportPeriod,
	}
	exporter.Start(daemonCtx)

	var server = http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("Server starting on port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down gracefully...")
	stopDaemons()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := db.Disconnect(client); err != nil {
		log.Printf("Mongo disconnect failed: %v", err)
	}
	log.Println("Server shut down.")
}
