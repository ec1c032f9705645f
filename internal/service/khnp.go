package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"power-dashboard/internal/model"
)

// KHNPService proxies the KHNP real-time water-power API. The upstream
// answers XML; we translate its "power" reading into the genOutput JSON
// field. Calls are bounded by the client timeout, with no retries.
type KHNPService struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewKHNPService(baseURL, serviceKey string) *KHNPService {
	return &KHNPService{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// khnpEnvelope matches <response><body><item>...</item></body></response>.
type khnpEnvelope struct {
	XMLName xml.Name `xml:"response"`
	Body    struct {
		Item struct {
			Power string `xml:"power"`
			Time  string `xml:"time"`
		} `xml:"item"`
	} `xml:"body"`
}

// RealtimeOutput fetches the current output for one generator. ErrNotFound
// when the upstream answers without a power reading, ErrUpstream on any
// transport or status failure.
func (s *KHNPService) RealtimeOutput(ctx context.Context, genName string) (*model.RealtimeOutput, error) {
	q := url.Values{"serviceKey": {s.serviceKey}, "genName": {genName}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("khnp realtime call: %v: %w", err, ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("khnp realtime call: status %d: %w", resp.StatusCode, ErrUpstream)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read khnp response: %v: %w", err, ErrUpstream)
	}

	var envelope khnpEnvelope
	if err := xml.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode khnp response: %v: %w", err, ErrUpstream)
	}

	item := envelope.Body.Item
	if item.Power == "" {
		return nil, fmt.Errorf("no generation reading for %q: %w", genName, ErrNotFound)
	}
	power, err := strconv.ParseFloat(item.Power, 64)
	if err != nil {
		return nil, fmt.Errorf("parse power %q: %v: %w", item.Power, err, ErrUpstream)
	}

	ts := item.Time
	if ts == "" {
		ts = time.Now().Format(time.RFC3339)
	}
	return &model.RealtimeOutput{
		Success:   true,
		GenName:   genName,
		GenOutput: power,
		Unit:      "MW",
		Timestamp: ts,
	}, nil
}
