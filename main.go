package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fintrack/handlers"
	"fintrack/middleware"
	"fintrack/repository"
	"fintrack/storage"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Optional .env for local development; real deployments set env vars.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	ctx := context.Background()

	store, err := openStore(ctx)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Initializing Firebase Admin SDK...")
	if err := middleware.InitializeFirebase(ctx); err != nil {
		log.Printf("Warning: failed to initialize Firebase: %v", err)
		log.Println("Auth token verification will be disabled!")
	}

	h := handlers.New(repository.NewTransactions(store))

	r := mux.NewRouter()
	r.Use(middleware.EnableCORS)

	// Register routes both bare and under /api so old and new frontend
	// builds keep working.
	h.RegisterRoutes(r)
	h.RegisterRoutes(r.PathPrefix("/api").Subrouter())

	// Serve the built frontend from dist, falling back to index.html for
	// client-side routes.
	fs := http.FileServer(http.Dir("./dist"))
	r.PathPrefix("/assets/").Handler(fs)
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/assets/") {
			log.Printf("Serving index.html for path: %s", r.URL.Path)
		}
		http.ServeFile(w, r, "./dist/index.html")
	}).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Starting server on port %s...", port)
	log.Fatal(srv.ListenAndServe())
}

// openStore picks the document store: Firestore when a project is
// configured, otherwise a local SQLite file so development needs no cloud
// credentials.
func openStore(ctx context.Context) (storage.Store, error) {
	if projectID := os.Getenv("FIREBASE_PROJECT_ID"); projectID != "" {
		log.Printf("Using Firestore project %s", projectID)
		var opts []option.ClientOption
		if raw := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); raw != "" {
			opts = append(opts, option.WithCredentialsJSON([]byte(raw)))
		}
		return storage.NewFirestoreStore(ctx, projectID, opts...)
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "./fintrack.db"
	}
	log.Printf("No Firestore project configured, using local store at %s", path)
	return storage.NewSQLiteStore(path)
}
