package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/cremerie-alijs/storefront/internal/app"
	"github.com/cremerie-alijs/storefront/internal/commands"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed static/index.html
var indexHTML []byte

//go:embed static/edit.html
var editHTML []byte

func main() {
	// Check for subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "hash-password":
			commands.HashPassword(os.Args[2:])
			return
		case "theme":
			commands.Theme(os.Args[2:])
			return
		}
	}

	app.LoadEnv(".env")

	defaultPort := 8080
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		defaultPort = p
	}

	// Parse flags
	port := flag.Int("port", defaultPort, "Port to listen on")
	flag.BoolVar(&app.EditMode, "edit", false, "Enable tagline edit mode (default is serve mode)")
	flag.Parse()

	if closer := app.SetupLogging(os.Getenv("LOG_FILE")); closer != nil {
		defer closer.Close()
	}

	// Make embedded files available to app package
	if err := app.LoadIndexTemplate(indexHTML); err != nil {
		log.Fatalf("Failed to load index page: %v", err)
	}
	app.EditHTML = editHTML

	// Load and validate auth credentials (if edit mode)
	if app.EditMode {
		if err := app.LoadAuthCredentials(); err != nil {
			log.Fatalf("Failed to load auth credentials: %v", err)
		}
	}

	var loadErr error
	if app.EditMode {
		loadErr = app.LoadTaglinesWithTmpCheck()
	} else {
		loadErr = app.LoadTaglines()
	}
	if loadErr != nil {
		log.Fatalf("Failed to load taglines: %v", loadErr)
	}

	// Setup routes
	http.HandleFunc("/", app.ServeIndex)
	http.HandleFunc("/api/config", app.GetConfig)
	http.HandleFunc("/api/theme", app.HandleTheme)
	http.HandleFunc("/api/holidays", app.HandleHolidays)
	http.HandleFunc("/api/schedule", app.HandleSchedule)
	http.HandleFunc("/api/download", app.HandleDownload)
	http.HandleFunc("/api/subscribe", app.HandleSubscribe)

	// Edit mode routes (protected with Basic Auth)
	if app.EditMode {
		http.HandleFunc("/edit", app.RequireAuth(app.ServeEdit))
		http.HandleFunc("/api/taglines/update", app.RequireAuth(app.UpdateTagline))
		http.HandleFunc("/api/taglines/commit", app.RequireAuth(app.HandleTaglinesCommit))
		http.HandleFunc("/api/taglines/revert", app.RequireAuth(app.HandleTaglinesRevert))
		http.HandleFunc("/api/taglines/status", app.RequireAuth(app.HandleTaglinesStatus))
	}

	// Serve static files
	http.Handle("/static/", http.FileServer(http.FS(staticFiles)))

	mode := app.ModeServe
	if app.EditMode {
		mode = app.ModeEdit
	}

	log.Printf("Starting storefront in %s mode on http://localhost:%d", mode, *port)
	log.Printf("Data directory: %s", app.DataPath)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), nil); err != nil {
		log.Fatal(err)
	}
}
