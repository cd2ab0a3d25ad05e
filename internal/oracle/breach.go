package oracle

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/passcheck/internal/logging"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultEndpoint is the public Pwned Passwords range API.
	DefaultEndpoint = "https://api.pwnedpasswords.com"

	// DefaultTimeout bounds a single range request.
	DefaultTimeout = 5 * time.Second

	prefixLen = 5
	userAgent = "passcheck"

	// A padded range reply is well under 1 MiB.
	maxBodySize = 4 << 20
)

// Breach is an Oracle that checks a password against a breach corpus using
// the k-anonymity range protocol: only the first five hex characters of the
// uppercase SHA-1 digest leave the process.
type Breach struct {
	endpoint string
	client   *http.Client
	log      logging.Logger
	group    singleflight.Group
}

// BreachOption customises a Breach.
type BreachOption func(*Breach)

// WithHTTPClient replaces the default client (which has DefaultTimeout).
func WithHTTPClient(c *http.Client) BreachOption {
	return func(b *Breach) { b.client = c }
}

// WithTimeout sets the timeout of the default client.
func WithTimeout(d time.Duration) BreachOption {
	return func(b *Breach) { b.client = &http.Client{Timeout: d} }
}

// WithLogger sets the logger used to report soft failures.
func WithLogger(l logging.Logger) BreachOption {
	return func(b *Breach) { b.log = l }
}

// NewBreach returns a Breach querying endpoint (DefaultEndpoint when empty).
func NewBreach(endpoint string, opts ...BreachOption) *Breach {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	b := &Breach{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: DefaultTimeout},
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// IsCompromised fails soft: any lookup error is logged and answered with false.
func (b *Breach) IsCompromised(ctx context.Context, password string) bool {
	found, err := b.Lookup(ctx, password)
	if err != nil {
		b.log.Warn(ctx, "breach lookup failed, treating password as not compromised", "error", err)
		return false
	}
	return found
}

// Lookup performs the range query and reports whether the password's digest
// suffix is listed with a non-zero count.
func (b *Breach) Lookup(ctx context.Context, password string) (bool, error) {
	prefix, suffix := splitDigest(password)

	v, err, shared := b.group.Do(prefix, func() (any, error) {
		return b.fetchRange(ctx, prefix)
	})
	if err != nil {
		return false, err
	}
	b.log.Debug(ctx, "breach range fetched", "shared", shared)

	_, found := v.(map[string]int)[suffix]
	return found, nil
}

// fetchRange downloads and parses the suffixes sharing prefix. Suffixes with
// a zero count are padding and are left out.
func (b *Breach) fetchRange(ctx context.Context, prefix string) (map[string]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint+"/range/"+prefix, nil)
	if err != nil {
		return nil, fmt.Errorf("build range request: %w", err)
	}
	req.Header.Set("Add-Padding", "true")
	req.Header.Set("User-Agent", userAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("range request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return parseRange(io.LimitReader(resp.Body, maxBodySize))
}

// parseRange reads newline-delimited SUFFIX:COUNT records.
func parseRange(r io.Reader) (map[string]int, error) {
	suffixes := make(map[string]int)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		suffix, countStr, ok := strings.Cut(text, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d has no separator", ErrMalformedRange, line)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("%w: line %d has invalid count", ErrMalformedRange, line)
		}
		if count > 0 {
			suffixes[strings.ToUpper(strings.TrimSpace(suffix))] = count
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read range body: %w", err)
	}
	return suffixes, nil
}

// splitDigest returns the 5-char prefix and 35-char suffix of the uppercase
// hex SHA-1 of password.
func splitDigest(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:prefixLen], digest[prefixLen:]
}
