package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gonuts/commander"
)

func newServeCmd() *commander.Command {
	c := &commander.Command{
		Run:       runServe,
		UsageLine: "serve [--addr :8080]",
		Short:     "serve the normalizer over HTTP",
		Long: `
serve exposes the pipeline as a JSON API:

  POST /v1/normalize        {"text": "...", "preset": "...", "mode": "..."}
  POST /v1/evaluate         {"reference": "...", "hypothesis": "..."}
  POST /v1/validate         {"text": "...", "analyze": true}
  GET  /v1/numbers/{n}      digits to words
  GET  /v1/numbers?words=   words to digits
  GET  /healthz
`,
		Flag: *flag.NewFlagSet("bamnorm-serve", flag.ExitOnError),
	}
	c.Flag.String("addr", ":8080", "listen address")
	return c
}

func runServe(cmd *commander.Command, args []string) error {
	addr := stringFlag(cmd, "addr")
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("listening on %s", addr)
	log.Fatal(srv.ListenAndServe())
	return nil
}
