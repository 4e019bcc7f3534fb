package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/render"
	"github.com/kdduha/sceramath/pkg/chat"
	"github.com/kdduha/sceramath/pkg/client"
)

var (
	imagePath = flag.String("image", "", "image or pdf file attached to a one-shot question")
	chatFile  = flag.String("chat", "", "continue a chat saved with /save")
)

func main() {
	flag.Parse()
	ancli.SetupSlog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadClient()
	if err != nil {
		ancli.Errf("config error: %v\n", err)
		os.Exit(1)
	}

	dispatcher := client.New(cfg.BaseURL, cfg.AnonKey, &http.Client{Timeout: cfg.Timeout})
	prompt := strings.Join(flag.Args(), " ")

	session, err := newSession(prompt, dispatcher)
	if err != nil {
		ancli.Errf("failed to load chat: %v\n", err)
		os.Exit(1)
	}

	r := &repl{
		session:  session,
		exporter: render.NewPDFExporter(render.DefaultPDFConfig),
		dataDir:  cfg.DataDir,
		out:      os.Stdout,
	}

	if prompt != "" || *imagePath != "" {
		if *imagePath != "" {
			if err := r.attach(ctx, *imagePath); err != nil {
				ancli.Errf("failed to attach %s: %v\n", *imagePath, err)
				os.Exit(1)
			}
		}
		if err := r.submit(ctx, prompt); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := r.run(ctx, os.Stdin); err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		os.Exit(1)
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("bye\n")
	}
}

func newSession(prompt string, dispatcher chat.Dispatcher) (*chat.Session, error) {
	if *chatFile != "" {
		return chat.Load(*chatFile, dispatcher)
	}
	return chat.NewSession(chat.IDFromPrompt(prompt), dispatcher), nil
}
