// Package remote calls an external scoring endpoint and normalizes its
// responses into a candidate-ID to score mapping.
//
// This is the only component in the engine that performs network I/O.
// Every failure mode collapses into ErrUnavailable so the ranker can
// fall back to local scoring.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alumnihub/matchrank/internal/domain/model"
	"github.com/alumnihub/matchrank/pkg/logger"
	"github.com/alumnihub/matchrank/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout        = 5 * time.Second
	defaultMaxConcurrency = 4

	// Scores listed in an ID-list response carry no numeric value; the
	// recommender already decided they fit, so they get the top score.
	syntheticListScore = 100

	// Pair endpoints modeled on the original match API emit 0-10.
	pairScaleMax = 10

	maxResponseBytes = 1 << 20
)

// Client talks to a remote scoring service over HTTP JSON.
type Client struct {
	endpoint       string
	httpClient     *http.Client
	timeout        time.Duration
	maxConcurrency int
	logger         logger.Logger
}

// NewClient creates a remote scoring client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:       endpoint,
		httpClient:     &http.Client{},
		timeout:        defaultTimeout,
		maxConcurrency: defaultMaxConcurrency,
		logger:         logger.Get().Named("remote"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// batchRequest mirrors the payload the original applications sent to
// their recommendation endpoint.
type batchRequest struct {
	ViewerProfile batchProfile     `json:"viewer_profile"`
	Candidates    []batchCandidate `json:"candidates"`
}

type batchProfile struct {
	Branch string   `json:"branch"`
	Skills []string `json:"skills"`
}

type batchCandidate struct {
	ID     string   `json:"id"`
	Branch string   `json:"branch"`
	Skills []string `json:"skills"`
}

// BatchScores issues one call covering the whole candidate pool and
// returns whatever subset of scores the service produced. The service
// may answer with a score map, a bare object of id->score pairs, or an
// ordered ID list; all three normalize to map[candidateID]score.
//
// Returns ErrUnavailable on timeout, non-2xx status, or a payload that
// matches none of the known shapes.
func (c *Client) BatchScores(ctx context.Context, viewer model.Profile, candidates []model.Candidate) (map[string]int, error) {
	if len(candidates) == 0 {
		return map[string]int{}, nil
	}

	req := batchRequest{
		ViewerProfile: batchProfile{Branch: viewer.Branch, Skills: viewer.Skills},
		Candidates:    make([]batchCandidate, len(candidates)),
	}
	for i, cand := range candidates {
		req.Candidates[i] = batchCandidate{ID: cand.ID, Branch: cand.Branch, Skills: cand.Skills}
	}

	raw, err := c.post(ctx, c.endpoint, req)
	if err != nil {
		return nil, err
	}

	scores, err := parseBatchResponse(raw)
	if err != nil {
		metrics.RecordRemoteFailure()
		c.logger.Warn(ctx, "unusable remote scoring payload", logger.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(scores) < len(candidates) {
		metrics.RecordRemotePartialResult()
	}
	return scores, nil
}

// pairRequest mirrors the original pairwise match-score API payload.
type pairRequest struct {
	ViewerBranch string `json:"viewer_branch"`
	ViewerSkills string `json:"viewer_skills"`
	TargetBranch string `json:"target_branch"`
	TargetSkills string `json:"target_skills"`
}

type pairResponse struct {
	Score *float64 `json:"score"`
}

// PairScores scores candidates one call per pair, fanning out with
// bounded concurrency. Individual pair failures leave that candidate
// out of the map so the ranker's fallback covers it; ErrUnavailable is
// returned only when every pair failed.
func (c *Client) PairScores(ctx context.Context, viewer model.Profile, candidates []model.Candidate) (map[string]int, error) {
	if len(candidates) == 0 {
		return map[string]int{}, nil
	}

	scores := make(map[string]int, len(candidates))
	var mu sync.Mutex

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(c.maxConcurrency)
	for _, cand := range candidates {
		cand := cand
		eg.Go(func() error {
			score, err := c.pairScore(ectx, viewer, cand)
			if err != nil {
				c.logger.Debug(ectx, "pair scoring failed",
					logger.String("candidate_id", cand.ID),
					logger.Error(err),
				)
				return nil // partial coverage is fine, keep going
			}
			mu.Lock()
			scores[cand.ID] = score
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(scores) == 0 {
		metrics.RecordRemoteFailure()
		return nil, fmt.Errorf("%w: all pair calls failed", ErrUnavailable)
	}
	if len(scores) < len(candidates) {
		metrics.RecordRemotePartialResult()
	}
	return scores, nil
}

func (c *Client) pairScore(ctx context.Context, viewer model.Profile, cand model.Candidate) (int, error) {
	req := pairRequest{
		ViewerBranch: viewer.Branch,
		ViewerSkills: strings.Join(viewer.Skills, "|"),
		TargetBranch: cand.Branch,
		TargetSkills: strings.Join(cand.Skills, "|"),
	}

	raw, err := c.post(ctx, c.endpoint, req)
	if err != nil {
		return 0, err
	}

	var resp pairResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Score == nil {
		return 0, fmt.Errorf("%w: malformed pair response", ErrUnavailable)
	}
	return normalizePairScore(*resp.Score), nil
}

// post sends one JSON request and returns the raw response body. Every
// transport failure maps to ErrUnavailable.
func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	metrics.RecordRemoteCall()
	resp, err := c.httpClient.Do(httpReq)
	metrics.RecordRemoteLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordRemoteFailure()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordRemoteFailure()
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.RecordRemoteFailure()
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	return raw, nil
}

// parseBatchResponse normalizes the three known response shapes.
func parseBatchResponse(raw []byte) (map[string]int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	if trimmed[0] == '[' {
		var ids []string
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return nil, fmt.Errorf("parse id list: %w", err)
		}
		scores := make(map[string]int, len(ids))
		for _, id := range ids {
			if id != "" {
				scores[id] = syntheticListScore
			}
		}
		return scores, nil
	}

	var wrapped struct {
		Scores map[string]float64 `json:"scores"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err == nil && wrapped.Scores != nil {
		return roundScores(wrapped.Scores), nil
	}

	var flat map[string]float64
	if err := json.Unmarshal(trimmed, &flat); err != nil {
		return nil, fmt.Errorf("parse score map: %w", err)
	}
	return roundScores(flat), nil
}

func roundScores(in map[string]float64) map[string]int {
	out := make(map[string]int, len(in))
	for id, s := range in {
		if id == "" || math.IsNaN(s) {
			continue
		}
		out[id] = clampScore(int(math.Round(s)))
	}
	return out
}

// normalizePairScore rescales the original model's 0-10 output to the
// engine's 0-100 scale. Values above 10 are assumed to be on the
// 0-100 scale already.
func normalizePairScore(s float64) int {
	if math.IsNaN(s) {
		return 0
	}
	if s <= pairScaleMax {
		s *= 10
	}
	return clampScore(int(math.Round(s)))
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
