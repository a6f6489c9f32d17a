package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Player != PlayerMPV {
		t.Errorf("default player = %q, want %q", s.Player, PlayerMPV)
	}
	if s.RequireConfirm {
		t.Error("confirmation should be off by default")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate_UnknownPlayer(t *testing.T) {
	s := DefaultSettings()
	s.Player = "gramophone"

	if err := s.Validate(); err == nil {
		t.Error("unknown player backend should fail validation")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load of missing file should not fail: %v", err)
	}
	if s.Player != PlayerMPV {
		t.Errorf("player = %q, want defaults", s.Player)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	s := DefaultSettings()
	s.Player = PlayerSpeaker
	s.RequireConfirm = true
	s.LogFile = "/tmp/taptempo.log"

	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Player != PlayerSpeaker || !loaded.RequireConfirm || loaded.LogFile != s.LogFile {
		t.Errorf("round trip lost settings: %+v", loaded)
	}
}
