package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/media"
	"github.com/kdduha/sceramath/pkg/chat"
	"github.com/kdduha/sceramath/pkg/client"
)

var (
	dataDir = flag.String("data", "./data", "directory with problems grouped by format")

	formatFiles = []string{"txt", "png", "jpg", "pdf"}

	mimeByFormat = map[string]string{
		"png": media.MimePNG,
		"jpg": media.MimeJPEG,
		"pdf": media.MimePDF,
	}
)

type solver interface {
	Solve(ctx context.Context, prompt, image string) (*client.MathSolution, error)
}

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg, err := config.LoadClient()
	if err != nil {
		ancli.Errf("config error: %v\n", err)
		os.Exit(1)
	}
	c := client.New(cfg.BaseURL, cfg.AnonKey, &http.Client{Timeout: cfg.Timeout})

	var results []BenchResult
	for _, formatFile := range formatFiles {
		dataPath := filepath.Join(*dataDir, formatFile)

		problems, _ := os.ReadDir(dataPath)

		for _, problem := range problems {
			filePath := filepath.Join(dataPath, problem.Name())
			res := benchmarkProblem(ctx, c, filePath)

			if res.Err != nil {
				ancli.PrintErr(fmt.Sprintf("ERR: %v\n", res.Err))
			} else {
				ancli.Okf("OK %s %v\n", res.File, res.Duration)
			}

			results = append(results, res)
		}
	}

	printMarkdown(os.Stdout, results)
}

func benchmarkProblem(ctx context.Context, c solver, filePath string) BenchResult {
	start := time.Now()
	format := strings.TrimPrefix(filepath.Ext(filePath), ".")

	fileRaw, err := os.ReadFile(filePath)
	if err != nil {
		return BenchResult{File: filePath, Format: format, Err: err}
	}

	prompt, image := chat.DefaultPrompt, ""
	if mime, ok := mimeByFormat[format]; ok {
		image = media.EncodeDataURI(mime, fileRaw)
	} else {
		prompt = string(fileRaw)
	}

	solution, err := c.Solve(ctx, prompt, image)
	res := BenchResult{
		File:     filepath.Base(filePath),
		Format:   format,
		Duration: time.Since(start),
		Err:      err,
		Size:     int64(len(fileRaw)),
	}
	if solution != nil {
		res.Steps = len(solution.Steps)
	}
	return res
}
