package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/trgovina/internal/model"
	"github.com/erazemk/trgovina/internal/store"
)

func TestGeneratePassword(t *testing.T) {
	p1, err := generatePassword(16)
	if err != nil {
		t.Fatalf("generatePassword: %v", err)
	}
	if len(p1) != 16 {
		t.Errorf("expected length 16, got %d", len(p1))
	}
	p2, _ := generatePassword(16)
	if p1 == p2 {
		t.Error("expected different passwords")
	}
	if err := model.ValidatePassword(p1); err != nil {
		t.Errorf("generated password rejected: %v", err)
	}
}

func TestInitDatabaseCreatesAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.sqlite3")

	database, password, err := initDatabase(path, "root")
	if err != nil {
		t.Fatalf("initDatabase: %v", err)
	}
	defer database.Close()

	user, err := store.GetUserByUsername(context.Background(), database, "root")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if user == nil {
		t.Fatal("expected admin user")
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("expected admin role, got %q", user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		t.Errorf("printed password does not match stored hash: %v", err)
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "trgovina.log")

	cleanup, err := setupLogger(path)
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	if cleanup == nil {
		t.Fatal("expected cleanup for log file")
	}
	cleanup()

	if _, err := setupLogger(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil ||
		!strings.Contains(err.Error(), "opening log file") {
		t.Errorf("expected open error, got %v", err)
	}
}
