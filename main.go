package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/erikbryant/sp500/config"
	"github.com/erikbryant/sp500/date"
	"github.com/erikbryant/sp500/gdrive"
	"github.com/erikbryant/sp500/history"
	"github.com/erikbryant/sp500/snapshot"
	"github.com/erikbryant/sp500/wikipedia"
)

var (
	clean         = flag.Bool("clean", false, "Remove consecutive duplicate entries from the historical file")
	updateNames   = flag.Bool("update-names", false, "Write a copy of the historical file with tickers renamed per the mapping file")
	dir           = flag.String("dir", ".", "Directory holding the historical files")
	mappingFile   = flag.String("mappings", config.MappingFile, "Ticker mapping file (relative to -dir)")
	url           = flag.String("url", config.ConstituentsURL, "Page listing the current constituents")
	cacheDir      = flag.String("cache", "", "Cache today's constituents page in this directory (relative to -dir)")
	caseSensitive = flag.Bool("caseSensitive", true, "Compare tickers case sensitively when looking for changes?")
	upload        = flag.Bool("upload", false, "Upload the file written by this run to Google Drive as a Sheet")
	folder        = flag.String("folder", "", "Google Drive folder ID to upload into")
	passPhrase    = flag.String("passPhrase", "", "Passphrase to decrypt an encrypted -folder")
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println()
	fmt.Println("  Fetch today's S&P 500 constituents and append them to the history if they changed")
	fmt.Println("    sp500 [-dir data] [-cache web-request-cache]")
	fmt.Println("  Remove redundant consecutive entries from the history (keeps a backup)")
	fmt.Println("    sp500 --clean [-dir data]")
	fmt.Println("  Write a copy of the history with renamed and delisted tickers normalized")
	fmt.Println("    sp500 --update-names [-dir data] [-mappings ticker_mappings.json]")
	fmt.Println("  Upload the result to Google Drive")
	fmt.Println("    sp500 --update-names -upload -folder <folderID> [-passPhrase XYZZY]")
	fmt.Println()
	flag.PrintDefaults()
}

// update fetches the current constituents, saves them and appends them to the history on change.
func update(cfg config.Config) (string, error) {
	table, err := wikipedia.Constituents(cfg.URL, cfg.CachePath())
	if err != nil {
		return "", err
	}

	tickers, err := table.Tickers()
	if err != nil {
		return "", err
	}

	today := date.Today()

	err = wikipedia.WriteConstituents(cfg.ConstituentsPath(), table, today)
	if err != nil {
		return "", err
	}

	s := snapshot.Build(snapshot.Canonical(tickers, false), today)

	result, err := history.AppendFile(cfg, s)
	if err != nil {
		return "", err
	}

	switch result.Outcome {
	case history.Unchanged:
		fmt.Printf("No changes in S&P 500 constituents since %s. Historical file not updated.\n", date.Format(result.Since))
		return "", nil
	case history.Changed:
		fmt.Println("Changes detected in S&P 500 constituents. Updating historical file.")
	case history.FirstRun:
		fmt.Println("Starting a new historical file.")
	}
	fmt.Printf("Historical components file updated with data for %s (%d records)\n", date.Format(result.Date), result.Records)

	return cfg.HistoryPath(), nil
}

// compact removes redundant entries from the history.
func compact(cfg config.Config) (string, error) {
	result, err := history.CompactFile(cfg)
	if err != nil {
		return "", err
	}

	if result.Outcome == history.NoOp {
		fmt.Println("Historical file is empty, nothing to clean.")
		return "", nil
	}

	fmt.Println("Historical data cleanup completed:")
	fmt.Printf("- Original records: %d\n", result.Original)
	fmt.Printf("- Cleaned records: %d\n", result.Retained)
	fmt.Printf("- Removed redundant records: %d\n", result.Removed)
	fmt.Printf("- Backup saved as: %s\n", result.BackupFile)

	return cfg.HistoryPath(), nil
}

// normalize writes the renamed copy of the history.
func normalize(cfg config.Config) (string, error) {
	result, err := history.NormalizeFile(cfg)
	if err != nil {
		return "", err
	}

	for _, issue := range result.Issues {
		fmt.Println("Warning:", issue)
	}

	if result.Outcome == history.NoOp {
		fmt.Println("No ticker mappings or deleted symbols configured, nothing to update.")
		return "", nil
	}

	fmt.Println("Ticker name update completed:")
	fmt.Printf("- Tickers renamed: %d\n", result.Renamed)
	fmt.Printf("- Tickers deleted: %d\n", result.Deleted)
	fmt.Printf("- Duplicate tickers collapsed: %d\n", result.Collapsed)
	fmt.Printf("- Empty records dropped: %d\n", result.EmptyDropped)
	fmt.Printf("- Duplicate records removed: %d\n", result.DuplicatesRemoved)
	fmt.Printf("- Records written: %d to %s\n", result.Records, result.OutputFile)

	return result.OutputFile, nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *clean && *updateNames {
		fmt.Println("Specify at most one of '--clean' or '--update-names'")
		usage()
		os.Exit(2)
	}

	cfg := config.Default(*dir)
	cfg.MappingFile = *mappingFile
	cfg.URL = *url
	cfg.CacheDir = *cacheDir
	cfg.CaseSensitive = *caseSensitive

	run := update
	if *clean {
		run = compact
	}
	if *updateNames {
		run = normalize
	}

	written, err := run(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if !*upload || written == "" {
		return
	}

	parentID, err := gdrive.FolderID(*folder, *passPhrase)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	file, err := gdrive.New(*dir).CreateSheet(context.Background(), written, parentID)
	if err != nil {
		fmt.Println("Error uploading", written, err)
		os.Exit(1)
	}
	fmt.Printf("Uploaded %s as %s\n", written, file.Name)
}
