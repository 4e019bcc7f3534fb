package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/kdduha/sceramath/internal/capture"
	"github.com/kdduha/sceramath/internal/media"
	"github.com/kdduha/sceramath/internal/render"
	"github.com/kdduha/sceramath/pkg/chat"
)

const help = `commands:
  /image <path>    attach an image or pdf to the next question
  /drop            remove the pending attachment
  /reset           clear the transcript
  /save            write the transcript to the chat directory
  /export <file>   export solved problems as pdf
  /quit            leave
anything else is sent as a question`

type repl struct {
	session  *chat.Session
	exporter *render.PDFExporter
	dataDir  string
	out      io.Writer

	pending string
}

func (r *repl) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)

	fmt.Fprintln(r.out, "SceraMath. Type /help for commands.")
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" && r.pending == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "/quit", "/exit":
			return nil
		case "/help":
			fmt.Fprintln(r.out, help)
		case "/image":
			if err := r.attach(ctx, arg); err != nil {
				ancli.Errf("failed to attach %s: %v\n", arg, err)
				continue
			}
			ancli.Okf("attached %s\n", filepath.Base(arg))
		case "/drop":
			r.pending = ""
		case "/reset":
			r.session.Reset()
			r.pending = ""
			ancli.Okf("transcript cleared\n")
		case "/save":
			path, err := r.session.Save(r.dataDir)
			if err != nil {
				ancli.Errf("%v\n", err)
				continue
			}
			ancli.Okf("saved chat to '%v'\n", path)
		case "/export":
			if arg == "" {
				arg = r.session.ID + ".pdf"
			}
			if err := r.exporter.Export(ctx, r.session.ID, r.session.Messages(), arg); err != nil {
				ancli.Errf("export failed: %v\n", err)
				continue
			}
			ancli.Okf("exported to '%v'\n", arg)
		default:
			_ = r.submit(ctx, line)
		}
	}
}

// attach reads an image through a capture stream, PDFs are sent as they are.
func (r *repl) attach(ctx context.Context, path string) error {
	if path == "" {
		return errors.New("missing path")
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		r.pending = media.EncodeDataURI(media.MimePDF, raw)
		return nil
	}

	stream, err := capture.Start(ctx, capture.FileDevice{Path: path})
	if err != nil {
		return err
	}
	defer stream.Stop()

	uri, err := stream.Snapshot()
	if err != nil {
		return err
	}
	r.pending = uri
	return nil
}

func (r *repl) submit(ctx context.Context, prompt string) error {
	image := r.pending
	r.pending = ""

	msg, err := r.session.Submit(ctx, prompt, image)
	if err != nil && msg.ID == "" {
		ancli.Warnf("%v\n", err)
		return err
	}
	if msg.Solution == nil {
		ancli.PrintErr(msg.Content + "\n")
		return err
	}
	return render.Text(r.out, msg.Solution)
}
