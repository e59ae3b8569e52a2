package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/cremerie-alijs/storefront/internal/theme"
)

// CurrentTaglines returns a copy of the active tagline table
func CurrentTaglines() theme.Taglines {
	TaglineMutex.RLock()
	defer TaglineMutex.RUnlock()
	return Taglines.Clone()
}

// LoadTaglines loads the tagline table from the main file. A missing file
// leaves the built-in taglines in place.
func LoadTaglines() error {
	if _, err := os.Stat(TaglineFile); errors.Is(err, os.ErrNotExist) {
		log.Printf("No tagline file at %s, using built-in taglines", TaglineFile)
		TaglineMutex.Lock()
		Taglines = theme.DefaultTaglines()
		TaglineMutex.Unlock()
		return nil
	}
	return loadTaglinesFromFile(TaglineFile)
}

// LoadTaglinesWithTmpCheck loads unsaved edits from the tmp file if present,
// otherwise from the main file
func LoadTaglinesWithTmpCheck() error {
	tmpFile := TaglineFile + TmpSuffix
	if _, err := os.Stat(tmpFile); err == nil {
		log.Printf("⚠️  Found temporary tagline file: %s (loading unsaved changes)", tmpFile)
		return loadTaglinesFromFile(tmpFile)
	}
	return LoadTaglines()
}

func loadTaglinesFromFile(filename string) error {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var data TaglineData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if err := data.Taglines.Validate(); err != nil {
		return fmt.Errorf("invalid tagline file %s: %w", filename, err)
	}

	TaglineMutex.Lock()
	Taglines = data.Taglines
	TaglineMutex.Unlock()

	return nil
}

// saveTmpTaglines writes the current table to the tmp file (caller must hold lock)
func saveTmpTaglines() error {
	data, err := json.MarshalIndent(TaglineData{
		Taglines: Taglines,
		Metadata: map[string]string{MetadataUpdatedAt: Now().Format(time.RFC3339)},
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(TaglineFile+TmpSuffix, data, FilePermissions)
}

// SetTagline replaces the tagline of one theme and auto-saves to the tmp file
func SetTagline(t theme.Theme, tagline string) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q", t)
	}
	if tagline == "" {
		return fmt.Errorf("empty tagline for theme %q", t)
	}
	if strings.ContainsFunc(tagline, unicode.IsControl) {
		return fmt.Errorf("tagline for theme %q contains control characters", t)
	}

	TaglineMutex.Lock()
	defer TaglineMutex.Unlock()

	updated := Taglines.Clone()
	updated[t] = tagline
	previous := Taglines
	Taglines = updated

	if err := saveTmpTaglines(); err != nil {
		Taglines = previous
		return fmt.Errorf("failed to save tmp taglines: %w", err)
	}
	return nil
}

// CommitTaglines backs up the main file and makes the tmp file the new main
func CommitTaglines() error {
	TaglineMutex.Lock()
	defer TaglineMutex.Unlock()

	tmpFile := TaglineFile + TmpSuffix
	if _, err := os.Stat(tmpFile); os.IsNotExist(err) {
		return fmt.Errorf("no temporary changes to commit")
	}

	backupDirPath := filepath.Join(filepath.Dir(TaglineFile), BackupDir)
	if err := os.MkdirAll(backupDirPath, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(TaglineFile); err == nil {
		backupFile := filepath.Join(backupDirPath,
			fmt.Sprintf("%d_%s%s", Now().Unix(), filepath.Base(TaglineFile), BackupSuffix))
		if err := os.Rename(TaglineFile, backupFile); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		log.Printf("✅ Backup created: %s", backupFile)
	}

	if err := os.Rename(tmpFile, TaglineFile); err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}

	log.Printf("✅ Changes committed to %s", TaglineFile)
	return nil
}

// RevertTaglines discards tmp changes and reloads from the main file
func RevertTaglines() error {
	tmpFile := TaglineFile + TmpSuffix
	if _, err := os.Stat(tmpFile); os.IsNotExist(err) {
		return fmt.Errorf("no temporary changes to revert")
	}

	if err := os.Remove(tmpFile); err != nil {
		return fmt.Errorf("failed to remove tmp file: %w", err)
	}

	if err := LoadTaglines(); err != nil {
		return fmt.Errorf("failed to reload taglines: %w", err)
	}

	log.Printf("✅ Changes reverted, reloaded from %s", TaglineFile)
	return nil
}

// HasTmpChanges checks if a temporary tagline file exists
func HasTmpChanges() bool {
	_, err := os.Stat(TaglineFile + TmpSuffix)
	return err == nil
}
