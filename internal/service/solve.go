package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/metrics"
	"github.com/kdduha/sceramath/internal/models"
	"github.com/kdduha/sceramath/internal/upstream"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type SolveService struct {
	logger    *log.Logger
	generator upstream.Generator
	schema    map[string]any
	cache     Cache
}

func NewSolveService(logger *log.Logger, generator upstream.Generator) *SolveService {
	return &SolveService{
		logger:    logger,
		generator: generator,
		schema:    upstream.SolutionSchema(generator.Name() == config.ProviderOpenAI),
	}
}

func (s *SolveService) SetCacheClient(cache Cache) {
	s.cache = cache
}

// Solve relays one problem to the model and returns the JSON object it answered with, unchanged.
// Every failure wraps one of ErrAPIKeyMissing, ErrInvalidImage, ErrUpstream or ErrMalformedSolution.
func (s *SolveService) Solve(ctx context.Context, req *models.SolveRequest) ([]byte, error) {
	if !s.generator.Configured() {
		s.logger.Printf("%s api key is not configured\n", s.generator.Name())
		return nil, ErrAPIKeyMissing
	}

	key := getCacheKey(req)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	upstreamReq, err := s.buildUpstreamReq(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, upstreamReq)
	if err != nil {
		metrics.UpstreamRequest(s.generator.Name(), statusError, time.Since(start))
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			s.logger.Printf("%s API error (%d): %s\n", s.generator.Name(), statusErr.Code, statusErr.Body)
		} else {
			s.logger.Printf("%s API error: %v\n", s.generator.Name(), err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	metrics.UpstreamRequest(s.generator.Name(), statusOK, time.Since(start))

	solution, err := ParseSolution(text)
	if err != nil {
		metrics.SolutionParseTotal(statusError)
		s.logger.Printf("failed to parse model output: %v\n", err)
		return nil, err
	}
	metrics.SolutionParseTotal(statusOK)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, string(solution)); err != nil {
			s.logger.Printf("failed to set cache: %v\n", err)
		}
	}
	return solution, nil
}

// ParseSolution sanitises raw model text and checks that what is left is a JSON object.
// The object is returned as the model wrote it; field types and extra fields are not enforced.
func ParseSolution(text string) ([]byte, error) {
	data, err := ExtractJSONObject(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSolution, err)
	}

	var obj map[string]any
	if err := sonic.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSolution, err)
	}
	return data, nil
}

func (s *SolveService) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Printf("cache get error: %v\n", err)
		metrics.CacheLookupsTotal(statusError)
		return nil, false
	}
	if !found {
		metrics.CacheLookupsTotal("miss")
		return nil, false
	}

	if !sonic.ValidString(cached) {
		s.logger.Println("dropping unreadable cache entry")
		metrics.CacheLookupsTotal(statusError)
		return nil, false
	}
	metrics.CacheLookupsTotal("hit")
	s.logger.Println("served from cache")
	return []byte(cached), true
}
