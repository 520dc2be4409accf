// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, HTTP communication, the capture agent transport, and
// logging.
//
// The infrastructure package is organized by technical concern:
//
// - storage/sqlite: File-backed settings store that survives restarts
// - storage/memory: In-memory settings store for ephemeral sessions and tests
// - http/standard: Cookie-jar HTTP client with credentialed request semantics
// - messenger/ws: WebSocket transport to the in-page capture agent
// - readability/shiori: Readable-content parser for raw page HTML
// - logger/standard: Simple structured logger implementation
// - logger/logrus: Leveled structured logger with JSON output support
//
// # Settings Store
//
// SQLite store example:
//
//	store, err := sqlite.NewSQLiteStore("clipper.db")
//	if err != nil {
//	    // Handle error
//	}
//	defer store.Close()
//	err = store.Set(ctx, "docmostUrl", "https://docs.example.com")
//	value, err := store.Get(ctx, "docmostUrl")
//
// # HTTP Client
//
// The HTTP client shares one cookie jar across requests, so a session cookie
// set by login is carried on every later request automatically:
//
//	client, err := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.PostJSON(ctx, url, nil, body)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The loggers support structured logging with fields:
//
//	logger := logrus.New("info", "json")
//	logger.Info("page clipped", map[string]interface{}{
//	    "space_id": "s1",
//	    "filename": "clipped-page.html",
//	})
package infrastructure
