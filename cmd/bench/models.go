package main

import "time"

type BenchResult struct {
	File     string
	Format   string
	Duration time.Duration
	Steps    int
	Err      error
	Size     int64
}

type Agg struct {
	Count      int
	Failed     int
	Steps      int
	Total      time.Duration
	TotalBytes int64
}
