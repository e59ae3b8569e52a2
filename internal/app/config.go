package app

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/cremerie-alijs/storefront/internal/theme"
)

// Constants
const (
	DefaultTaglineFile = "taglines.json"
	BackupDir          = "backup"
	BackupSuffix       = ".backup"
	TmpSuffix          = ".tmp.json"
	FilePermissions    = 0644
	MaxRequestBytes    = 4 << 10

	// Error messages
	ErrEditModeDisabled     = "Edit mode disabled"
	ErrInvalidDateFormat    = "Invalid date format"
	ErrInvalidYear          = "Invalid year"
	ErrInvalidFormat        = "Invalid format"
	ErrUnknownTheme         = "Unknown theme"
	ErrInternalServer       = "Internal server error"
	ErrFailedToSave         = "Failed to save taglines"
	ErrFailedToRender       = "Failed to render page"
	ErrFailedToGenerateJSON = "Failed to generate JSON"
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidTagline       = "Invalid tagline"

	// Metadata keys
	MetadataUpdatedAt = "updated_at"

	// Mode strings
	ModeServe = "serve"
	ModeEdit  = "edit"

	// Supported years. Easter is only defined for Gregorian years.
	MinYear = 1583
	MaxYear = 9999

	// ICS constants
	ICSProductID = "-//Cremerie Alijs//Thema's//NL"
	ICSTimezone  = "Europe/Brussels"
)

// Global variables
var (
	DataPath     = "."
	TaglineFile  = DefaultTaglineFile
	Taglines     = theme.DefaultTaglines()
	TaglineMutex sync.RWMutex
	EditMode     bool

	// Now is the clock used for "today"
	Now = time.Now

	// Embedded files (set by main)
	EditHTML []byte
)

// ThemeNames maps theme identifiers to their Dutch display names
var ThemeNames = map[theme.Theme]string{
	theme.Summer:      "Zomer",
	theme.Winter:      "Winter",
	theme.Valentines:  "Valentijn",
	theme.Easter:      "Pasen",
	theme.Mothersday:  "Moederdag",
	theme.Midsummer:   "Midzomer",
	theme.National:    "Nationale feestdag",
	theme.Halloween:   "Halloween",
	theme.Sinterklaas: "Sinterklaas",
	theme.Christmas:   "Kerst",
}

// LoadEnv fills missing environment variables from a .env file and resolves
// the data directory. Variables that are already set are never overridden.
func LoadEnv(envFile string) {
	if info, err := os.Stat(envFile); err == nil && !info.IsDir() {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("Warning: failed to load %s: %v", envFile, err)
		}
	}

	DataPath = os.Getenv("DATA_DIR")
	if DataPath == "" {
		if cwd, err := os.Getwd(); err == nil {
			DataPath = cwd
		}
	}
	TaglineFile = filepath.Join(DataPath, DefaultTaglineFile)
}
