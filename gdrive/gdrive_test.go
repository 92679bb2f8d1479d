package gdrive

import (
	"context"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	d := New("data")

	if d.CredentialsFile != filepath.Join("data", "credentials.json") {
		t.Errorf("Unexpected credentials file %s", d.CredentialsFile)
	}
	if d.TokenFile != filepath.Join("data", "token.json") {
		t.Errorf("Unexpected token file %s", d.TokenFile)
	}
}

func TestFolderIDPlain(t *testing.T) {
	id, err := FolderID("1AbCdEf", "")
	if err != nil || id != "1AbCdEf" {
		t.Errorf("Expected 1AbCdEf, got %s %v", id, err)
	}
}

func TestCreateSheetMissingFile(t *testing.T) {
	d := New(t.TempDir())

	_, err := d.CreateSheet(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), "")
	if err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}
