package main

import (
	"companion-lab/internal"
	"companion-lab/projection"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

type config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
	ServerAddr     string `envconfig:"INSPECT_SERVER_ADDR" default:"http://localhost:8080"`
	// INSPECT_COLOURS enables colorized headings
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Config error: ", err)
	}
	if cfg.BadgerFilepath == "" {
		cfg.BadgerFilepath = database.DefaultPath
	}

	dbPath := flag.String("db", cfg.BadgerFilepath, "Path to badger DB")
	prefix := flag.String("prefix", internal.DefaultPrefix, "Prefix to scan")
	leaderboard := flag.Bool("leaderboard", false, "Print the leaderboard of a running server instead")
	flag.Parse()

	if *leaderboard {
		heading(cfg, "Leaderboard @ "+cfg.ServerAddr)
		if err := printLeaderboard(cfg.ServerAddr); err != nil {
			log.Fatal(err)
		}
		return
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	heading(cfg, fmt.Sprintf("%s @ %s", *prefix, *dbPath))
	table := newTable([]string{"Key", "Type", "Owner", "Entity", "Time", "Detail"})
	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if err := item.Value(func(v []byte) error {
				row := internal.StoreMapper(key, v)
				table.Append([]string{row.Key, row.Type, row.Owner, row.EntityID, row.Timestamp, row.Detail})
				count++
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	table.Render()
	status(cfg, count)
}

func heading(cfg config, title string) {
	header := fmt.Sprintf("  ====== %s ======", title)
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}

func status(cfg config, count int) {
	line := strconv.Itoa(count) + " keys"
	if !cfg.Colours {
		fmt.Println(line)
		return
	}
	if count == 0 {
		color.Yellow.Println(line)
		return
	}
	color.Cyan.Println(line)
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// printLeaderboard signs in against the server and renders GET /leaderboard.
func printLeaderboard(addr string) error {
	resp, err := http.Post(addr+"/login", "application/json", nil)
	if err != nil {
		return err
	}
	var login struct {
		Token string `json:"token"`
	}
	err = json.NewDecoder(resp.Body).Decode(&login)
	_ = resp.Body.Close()
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	request, err := http.NewRequest(http.MethodGet, addr+"/leaderboard", nil)
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err = http.DefaultClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("leaderboard: %s", resp.Status)
	}
	var board struct {
		Ranking []projection.RankedPost `json:"ranking"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return err
	}

	table := newTable([]string{"Rank", "Badge", "Author", "Likes", "Event"})
	for _, ranked := range board.Ranking {
		table.Append([]string{
			strconv.Itoa(ranked.Rank),
			string(ranked.Badge),
			ranked.Post.Author.Name,
			strconv.Itoa(ranked.Post.Likes),
			ranked.Post.RelatedEventTitle,
		})
	}
	table.Render()
	return nil
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		// A crashed writer leaves a vlog to truncate, which read-only mode refuses
		repaired, repairErr := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
		if repairErr != nil {
			return nil, fmt.Errorf("repair failed: %w", repairErr)
		}
		_ = repaired.Close()
		return badger.Open(opts)
	}
	return db, err
}
