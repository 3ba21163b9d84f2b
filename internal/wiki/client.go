package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/wikireflect/wiki-reflection/internal/format"
	"github.com/wikireflect/wiki-reflection/internal/lib/logger/sl"
	"github.com/wikireflect/wiki-reflection/internal/model"
)

// Defaults
const (
	DefaultEndpoint  = "https://{lang}.wikipedia.org/w/api.php"
	DefaultUserAgent = "WikiReflectionTool/1.0"

	languagePlaceholder = "{lang}"
	defaultMaxBodySize  = 8 << 20
)

// Operation names used in errors and logs
const (
	OpRandomTitle = "fetch random title"
	OpArticle     = "fetch article"
)

// Query strings of the two requests
const (
	randomTitleQuery = "action=query&list=random&rnnamespace=0&rnlimit=1&format=json"
	articleQueryHead = "action=query&prop=extracts|categories|sections&titles="
	articleQueryTail = "&explaintext=1&clshow=!hidden&format=json"
)

var languageCodePattern = regexp.MustCompile(`^[a-z][a-z-]{1,11}$`)

// Client talks to a MediaWiki-compatible API
type Client struct {
	httpClient  *http.Client
	endpoint    string
	userAgent   string
	maxBodySize int64
	log         *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithEndpoint sets the API endpoint template; {lang} is replaced by the language code
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithUserAgent sets the User-Agent header sent on every request
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if strings.TrimSpace(userAgent) != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets a client-wide timeout; zero keeps the transport defaults
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			hc := *c.httpClient
			hc.Timeout = timeout
			c.httpClient = &hc
		}
	}
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a new wiki client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{},
		endpoint:    DefaultEndpoint,
		userAgent:   DefaultUserAgent,
		maxBodySize: defaultMaxBodySize,
		log:         sl.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// randomResponse is the list=random payload
type randomResponse struct {
	Query *struct {
		Random []struct {
			ID    int    `json:"id"`
			NS    int    `json:"ns"`
			Title string `json:"title"`
		} `json:"random"`
	} `json:"query"`
}

// articleResponse is the prop=extracts|categories|sections payload
type articleResponse struct {
	Query *struct {
		Pages map[string]apiPage `json:"pages"`
	} `json:"query"`
}

type apiPage struct {
	PageID     int             `json:"pageid"`
	NS         int             `json:"ns"`
	Title      string          `json:"title"`
	Missing    json.RawMessage `json:"missing"`
	Invalid    json.RawMessage `json:"invalid"`
	Extract    *string         `json:"extract"`
	Sections   []apiSection    `json:"sections"`
	Categories []apiCategory   `json:"categories"`
}

type apiSection struct {
	Line  *string       `json:"line"`
	Level *sectionLevel `json:"level"`
}

type apiCategory struct {
	NS    int    `json:"ns"`
	Title string `json:"title"`
}

// sectionLevel accepts both 2 and "2"; action=parse reports levels as strings.
type sectionLevel int

func (l *sectionLevel) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*l = sectionLevel(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("section level %s: %w", data, err)
	}
	var parsed int
	if _, err := fmt.Sscanf(s, "%d", &parsed); err != nil {
		return fmt.Errorf("section level %q: %w", s, err)
	}
	*l = sectionLevel(parsed)
	return nil
}

// FetchRandomTitle returns the title of one random main-namespace article
func (c *Client) FetchRandomTitle(ctx context.Context, languageCode string) (string, error) {
	apiURL, err := c.apiURL(languageCode)
	if err != nil {
		return "", &ParseError{Op: OpRandomTitle, Err: err}
	}

	body, err := c.get(ctx, OpRandomTitle, apiURL+"?"+randomTitleQuery)
	if err != nil {
		return "", err
	}

	var resp randomResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &ParseError{Op: OpRandomTitle, Err: err}
	}
	if resp.Query == nil {
		return "", &ParseError{Op: OpRandomTitle, Path: "query", Err: errors.New("field missing")}
	}
	if len(resp.Query.Random) == 0 {
		return "", &ParseError{Op: OpRandomTitle, Path: "query.random", Err: ErrNoRandomArticle}
	}

	title := resp.Query.Random[0].Title
	if strings.TrimSpace(title) == "" {
		return "", &ParseError{Op: OpRandomTitle, Path: "query.random[0].title", Err: errors.New("empty title")}
	}

	c.log.Debug("random title fetched", "lang", languageCode, "title", title)
	return title, nil
}

// FetchArticle returns the extract, sections and categories of a title.
// A missing extract is reported through HasExtract; missing sections or
// categories yield empty slices.
func (c *Client) FetchArticle(ctx context.Context, languageCode, title string) (*model.ArticleQueryResult, error) {
	apiURL, err := c.apiURL(languageCode)
	if err != nil {
		return nil, &ParseError{Op: OpArticle, Err: err}
	}

	reqURL := apiURL + "?" + articleQueryHead + format.EncodeTitle(title) + articleQueryTail
	body, err := c.get(ctx, OpArticle, reqURL)
	if err != nil {
		return nil, err
	}

	var resp articleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Op: OpArticle, Err: err}
	}
	if resp.Query == nil {
		return nil, &ParseError{Op: OpArticle, Path: "query", Err: errors.New("field missing")}
	}

	page, ok := firstPage(resp.Query.Pages)
	if !ok {
		return nil, &ParseError{Op: OpArticle, Path: "query.pages", Err: ErrNoPages}
	}
	if len(page.Missing) > 0 || len(page.Invalid) > 0 {
		return nil, &ParseError{Op: OpArticle, Path: "query.pages", Err: fmt.Errorf("%w: %q", ErrArticleNotFound, title)}
	}

	result := &model.ArticleQueryResult{
		Title:      page.Title,
		Sections:   []model.Section{},
		Categories: []string{},
	}
	if result.Title == "" {
		result.Title = title
	}

	if page.Extract != nil {
		result.Extract = *page.Extract
		result.HasExtract = true
	}

	for _, s := range page.Sections {
		if s.Line == nil || s.Level == nil {
			continue
		}
		result.Sections = append(result.Sections, model.Section{Level: int(*s.Level), Heading: *s.Line})
	}

	for _, cat := range page.Categories {
		result.Categories = append(result.Categories, cat.Title)
	}

	c.log.Debug("article fetched",
		"lang", languageCode,
		"title", result.Title,
		"has_extract", result.HasExtract,
		"sections", len(result.Sections),
		"categories", len(result.Categories),
	)
	return result, nil
}

// apiURL validates the language code and fills in the endpoint template
func (c *Client) apiURL(languageCode string) (string, error) {
	if !languageCodePattern.MatchString(languageCode) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, languageCode)
	}
	return strings.ReplaceAll(c.endpoint, languagePlaceholder, languageCode), nil
}

// get performs a GET and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, op, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, URL: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("wiki request failed", "op", op, "url", reqURL, sl.Err(err))
		return nil, &NetworkError{Op: op, URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("wiki request", "op", op, "url", reqURL, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{Op: op, URL: reqURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, &NetworkError{Op: op, URL: reqURL, Err: err}
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, &NetworkError{Op: op, URL: reqURL, Err: ErrResponseTooLarge}
	}
	return body, nil
}

// firstPage returns the page with the lowest key; a title query yields one page
func firstPage(pages map[string]apiPage) (apiPage, bool) {
	if len(pages) == 0 {
		return apiPage{}, false
	}
	keys := make([]string, 0, len(pages))
	for k := range pages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return pages[keys[0]], true
}
