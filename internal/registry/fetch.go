package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/san-kum/randwalk/internal/config"
	"github.com/san-kum/randwalk/internal/walk"
)

// Fetcher retrieves a raw registry document. Failures wrap walk.ErrNetwork.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// NewFetcher builds the fetcher named by the registry config.
func NewFetcher(cfg config.RegistryConfig) (Fetcher, error) {
	switch cfg.Source {
	case config.SourceFile, "":
		return &FileFetcher{Path: cfg.Path}, nil
	case config.SourceHTTP:
		return &HTTPFetcher{URL: cfg.URL}, nil
	case config.SourceRedis:
		return &RedisFetcher{
			Addr:     cfg.RedisAddr,
			Key:      cfg.RedisKey,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, nil
	default:
		return nil, fmt.Errorf("unknown registry source: %s", cfg.Source)
	}
}

// FileFetcher reads the document from disk.
type FileFetcher struct {
	Path string
}

func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "%v", err)
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "%v", err)
	}
	return data, nil
}

// HTTPFetcher GETs the document, bypassing caches. There is no timeout
// unless Client carries one or ctx is canceled.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "%v", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "Fetch not Ok: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "%v", err)
	}
	return data, nil
}

// RedisFetcher reads the document stored under Key.
type RedisFetcher struct {
	Addr        string
	Key         string
	Password    string
	DB          int
	DialTimeout time.Duration
}

func (f *RedisFetcher) Fetch(ctx context.Context) ([]byte, error) {
	opts := []redis.DialOption{redis.DialDatabase(f.DB)}
	if f.Password != "" {
		opts = append(opts, redis.DialPassword(f.Password))
	}
	if f.DialTimeout > 0 {
		opts = append(opts, redis.DialConnectTimeout(f.DialTimeout))
	}

	conn, err := redis.DialContext(ctx, "tcp", f.Addr, opts...)
	if err != nil {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "%v", err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", f.Key))
	if err == redis.ErrNil {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "Fetch not Ok: key %q not found", f.Key)
	}
	if err != nil {
		return nil, walk.Errorf("fetch", walk.ErrNetwork, "%v", err)
	}
	return data, nil
}
