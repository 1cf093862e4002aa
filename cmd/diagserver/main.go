package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/alopes/diagnostico-juridico/internal/analysis"
	"github.com/alopes/diagnostico-juridico/internal/catalog"
	"github.com/alopes/diagnostico-juridico/internal/server"
	"github.com/alopes/diagnostico-juridico/internal/store"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		dbPath      = flag.String("db", "./diagnostico.db", "Path to SQLite database")
		catalogPath = flag.String("catalog", "", "Optional JSON catalog override (defaults to built-in areas)")
		localOnly   = flag.Bool("local-only", false, "Skip the remote generator even if ANTHROPIC_API_KEY is set")
	)
	flag.Parse()

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	var remote analysis.Generator
	if !*localOnly {
		gen, err := analysis.NewAnthropicGeneratorFromEnv()
		if err != nil {
			log.Printf("remote generator disabled: %v", err)
		} else {
			remote = gen
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	handler := server.NewServer(cat, st, analysis.NewService(remote))

	log.Printf("diagserver listening on %s (db=%s, remote=%v)", *addr, *dbPath, remote != nil)
	srv := &http.Server{Addr: *addr, Handler: handler}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}
