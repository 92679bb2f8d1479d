package gdrive

//
// Uploading history files to Google Drive
//
// Create a project in GCP, enable the Drive API, create OAuth desktop
// credentials and save them to credentials.json next to the history files.
// The first upload opens a browser to authorize; the token is kept in
// token.json after that.
//
// https://developers.google.com/drive/api/v3/quickstart/go
//

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/erikbryant/aes"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Drive uploads files using the OAuth credentials found in Dir.
type Drive struct {
	CredentialsFile string
	TokenFile       string
}

// New returns a Drive that keeps its credentials and token in dir.
func New(dir string) Drive {
	return Drive{
		CredentialsFile: filepath.Join(dir, "credentials.json"),
		TokenFile:       filepath.Join(dir, "token.json"),
	}
}

// FolderID returns the Drive folder to upload into. If passPhrase is set,
// folder is an aes-encrypted id and is decrypted with it.
func FolderID(folder, passPhrase string) (string, error) {
	if passPhrase == "" {
		return folder, nil
	}

	id, err := aes.Decrypt(folder, passPhrase)
	if err != nil {
		return "", fmt.Errorf("incorrect passphrase for Drive folder %w", err)
	}

	return id, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	tok := &oauth2.Token{}

	err = json.NewDecoder(f).Decode(tok)

	return tok, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	fmt.Printf("Saving credential file to: %s\n", path)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}

// Request a token from the web, then returns the retrieved token.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Opening authorization link in your browser: \n%v\n\n", authURL)
	browser.OpenURL(authURL)

	fmt.Println("Enter the authorization code:")

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code %w", err)
	}

	tok, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web %w", err)
	}

	return tok, nil
}

// client retrieves a token, saves it, then returns the generated client.
func (d Drive) client(ctx context.Context, config *oauth2.Config) (*http.Client, error) {
	// The token file stores the user's access and refresh tokens. If it does
	// not exist or has expired we will create it.
	tok, err := tokenFromFile(d.TokenFile)
	if err != nil || tok.Expiry.Before(time.Now()) {
		tok, err = getTokenFromWeb(ctx, config)
		if err != nil {
			return nil, err
		}
		err = saveToken(d.TokenFile, tok)
		if err != nil {
			return nil, err
		}
	}

	return config.Client(ctx, tok), nil
}

// service returns a Drive service that can be used to access Drive assets.
func (d Drive) service(ctx context.Context) (*drive.Service, error) {
	b, err := os.ReadFile(d.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %w", err)
	}

	// If you modify these scopes, delete the old token file.
	config, err := google.ConfigFromJSON(b, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}

	client, err := d.client(ctx, config)
	if err != nil {
		return nil, err
	}

	return drive.NewService(ctx, option.WithHTTPClient(client))
}

// CreateSheet uploads a CSV file as a Google Sheet in the Drive folder parentID.
func (d Drive) CreateSheet(ctx context.Context, name string, parentID string) (*drive.File, error) {
	content, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", name, err)
	}
	defer content.Close()

	srv, err := d.service(ctx)
	if err != nil {
		return nil, err
	}

	f := &drive.File{
		MimeType: "application/vnd.google-apps.spreadsheet",
		Name:     filepath.Base(name),
	}
	if parentID != "" {
		f.Parents = []string{parentID}
	}

	file, err := srv.Files.Create(f).Media(content, googleapi.ContentType("text/csv")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("could not create file: %w", err)
	}

	return file, nil
}
