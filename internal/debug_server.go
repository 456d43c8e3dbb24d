package internal

import (
	"companion-lab/domain"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

const DefaultPrefix = "comment:"

type InspectRow struct {
	Key       string
	Type      string
	Owner     string
	EntityID  string
	Detail    string
	Timestamp string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix   string
	Prefixes []string
	Items    []InspectRow
	Stats    map[string]any
}

var prefixes = []string{"comment:", "notif:", "user:", "image:", "idx:", "seq:"}

// NewDebugHandler renders the badger keys under ?prefix= as an HTML table.
func NewDebugHandler(db *badger.DB, mapper RowMapper, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = DefaultMapper
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = DefaultPrefix
		}
		data := PageData{Prefix: prefix, Prefixes: prefixes, Stats: make(map[string]any)}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				key := string(item.Key())
				if err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(key, val))
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
}

// StartDebugServer serves the inspector until ctx is cancelled.
func StartDebugServer(ctx context.Context, log *slog.Logger, db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	mux.Handle(endpoint, NewDebugHandler(db, mapper, statsProvider))
	server := &http.Server{Addr: fmt.Sprintf("0.0.0.0:%d", port), Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("Starting debug server", "address", server.Addr, "endpoint", endpoint)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Debug server stopped", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
}

func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Owner:     "-",
		EntityID:  "-",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
		Timestamp: "-",
	}
	parts := strings.Split(key, ":")
	if len(parts) >= 2 {
		row.Type = strings.ToUpper(parts[0])
	}
	if len(parts) >= 3 {
		row.Owner = parts[1]
		row.EntityID = parts[2]
	}
	return row
}

// StoreMapper decodes the JSON values written by the repositories.
func StoreMapper(key string, val []byte) InspectRow {
	row := DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, "comment:"):
		var m domain.Message
		if json.Unmarshal(val, &m) != nil {
			return row
		}
		row.EntityID = m.ID
		row.Timestamp = m.Timestamp
		row.Detail = m.AuthorName + ": " + m.Content
		if m.IsReply() {
			row.Type = "REPLY"
			row.Detail += " (→ " + m.ReplyToID + ")"
		}
	case strings.HasPrefix(key, "notif:"):
		var n domain.Notification
		if json.Unmarshal(val, &n) != nil {
			return row
		}
		row.EntityID = n.ID
		row.Timestamp = n.Time
		row.Detail = fmt.Sprintf("[%s] %s %s", n.Type, n.Title, n.Content)
		if n.Read {
			row.Detail += " ✓"
		}
	case strings.HasPrefix(key, "image:"):
		var image struct {
			ID          string    `json:"id"`
			ContentType string    `json:"contentType"`
			UploadedBy  string    `json:"uploadedBy"`
			At          time.Time `json:"at"`
		}
		if json.Unmarshal(val, &image) != nil {
			return row
		}
		row.Owner = image.UploadedBy
		row.EntityID = image.ID
		row.Timestamp = image.At.Format("15:04:05")
		row.Detail = fmt.Sprintf("%s, %d bytes", image.ContentType, len(val))
	case strings.HasPrefix(key, "idx:"):
		row.Type = "INDEX"
		row.Detail = "→ " + string(val)
	}
	return row
}
