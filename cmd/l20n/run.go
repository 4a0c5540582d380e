package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/l20n/pkg/fetch"
	"github.com/dmitrymomot/l20n/pkg/l10n"
	"github.com/dmitrymomot/l20n/pkg/logger"
	"github.com/dmitrymomot/l20n/pkg/negotiate"
	"github.com/dmitrymomot/l20n/pkg/redis"
	"github.com/dmitrymomot/l20n/pkg/resolver"
)

var (
	ErrNoKeys      = errors.New("no keys to resolve")
	ErrNoResources = errors.New("no resources configured")
	ErrInvalidArg  = errors.New("invalid argument, expected name=value")
)

type request struct {
	Accept   string
	Keys     []string
	Args     resolver.Args
	Entities bool
}

type language struct {
	Code string `json:"code"`
	Src  string `json:"src"`
	Name string `json:"name"`
}

type entity struct {
	Value string            `json:"value"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

type reported struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type output struct {
	Languages []language        `json:"languages"`
	Values    map[string]string `json:"values,omitempty"`
	Entities  map[string]entity `json:"entities,omitempty"`
	Errors    []reported        `json:"errors,omitempty"`
}

func run(ctx context.Context, cfg Config, req request, w io.Writer, log *slog.Logger) error {
	if len(req.Keys) == 0 {
		return ErrNoKeys
	}
	if len(cfg.Resources) == 0 {
		return ErrNoResources
	}

	manifest, extra, err := loadManifest(cfg)
	if err != nil {
		return err
	}

	fetcher, cleanup, err := newFetcher(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	var (
		mu   sync.Mutex
		errs []reported
	)
	env, err := l10n.NewEnv(manifest.DefaultLanguage, fetcher,
		l10n.WithLogger(log),
		l10n.WithErrorHandler(func(kind l10n.ErrorKind, err error) {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, reported{Kind: string(kind), Message: err.Error()})
		}),
	)
	if err != nil {
		return err
	}

	n := negotiate.NewNegotiator(manifest,
		negotiate.WithLogger(log),
		negotiate.WithOnChange(func(langs []l10n.Language) {
			log.InfoContext(ctx, "languages negotiated", logger.Count(len(langs)))
		}),
	)
	langs := n.Request(extra, negotiate.RequestedFromAcceptLanguage(req.Accept))

	lctx := env.CreateContext(cfg.Resources...)
	defer env.DestroyContext(lctx)

	keys := make([]l10n.Key, len(req.Keys))
	for i, id := range req.Keys {
		keys[i] = l10n.Key{ID: id, Args: req.Args}
	}

	out := output{Languages: make([]language, len(langs))}
	for i, lang := range langs {
		out.Languages[i] = language{Code: lang.Code, Src: string(lang.Src), Name: env.DisplayName(lang.Code)}
	}

	if req.Entities {
		resolved, err := lctx.ResolveEntities(ctx, langs, keys...)
		if err != nil {
			return err
		}
		out.Entities = make(map[string]entity, len(keys))
		for i, key := range keys {
			out.Entities[key.ID] = entity(resolved[i])
		}
	} else {
		values, err := lctx.ResolveValues(ctx, langs, keys...)
		if err != nil {
			return err
		}
		out.Values = make(map[string]string, len(keys))
		for i, key := range keys {
			out.Values[key.ID] = values[i]
		}
	}

	mu.Lock()
	out.Errors = errs
	mu.Unlock()

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func loadManifest(cfg Config) (negotiate.Manifest, negotiate.ExtraLanguages, error) {
	data, err := os.ReadFile(cfg.Manifest)
	if err != nil {
		return negotiate.Manifest{}, nil, fmt.Errorf("read manifest: %w", err)
	}
	manifest, err := negotiate.ParseManifest(data)
	if err != nil {
		return negotiate.Manifest{}, nil, err
	}

	if cfg.Extra == "" {
		return manifest, nil, nil
	}
	data, err = os.ReadFile(cfg.Extra)
	if err != nil {
		return negotiate.Manifest{}, nil, fmt.Errorf("read language packs: %w", err)
	}
	extra, err := negotiate.ExtraLanguagesFromYAML(data)
	if err != nil {
		return negotiate.Manifest{}, nil, err
	}
	return manifest, extra, nil
}

// newFetcher builds the per-tier fetcher. Bundled resources come from
// ResourcesDir or BaseURL; language packs from S3 when enabled, else from the
// "extra" directory under ResourcesDir, optionally shared through Redis.
func newFetcher(ctx context.Context, cfg Config, log *slog.Logger) (l10n.Fetcher, func(), error) {
	cleanup := func() {}

	var app l10n.Fetcher = fetch.NewFS(os.DirFS(cfg.ResourcesDir))
	if cfg.BaseURL != "" {
		h, err := fetch.NewHTTP(cfg.BaseURL, fetch.WithRequestTimeout(cfg.FetchTimeout))
		if err != nil {
			return nil, cleanup, err
		}
		app = h
	}

	var packs l10n.Fetcher = fetch.NewFS(os.DirFS(filepath.Join(cfg.ResourcesDir, "extra")))
	if cfg.S3Enabled {
		s, err := fetch.NewS3(ctx, cfg.S3, fetch.WithS3Timeout(cfg.FetchTimeout))
		if err != nil {
			return nil, cleanup, err
		}
		packs = s
	}

	if cfg.RedisEnabled {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, cleanup, err
		}
		store := redis.NewStorage(client, cfg.Redis)
		cleanup = func() {
			if err := store.Close(); err != nil {
				log.WarnContext(ctx, "closing redis", logger.Error(err))
			}
		}
		packs = fetch.NewCached(packs, store, fetch.WithTTL(cfg.RedisTTL), fetch.WithLogger(log))
	}

	return fetch.NewRouter(app).Handle(l10n.SourceExtra, packs), cleanup, nil
}

// argList collects repeated -arg flags.
type argList []string

func (a *argList) String() string {
	return strings.Join(*a, ",")
}

func (a *argList) Set(s string) error {
	if !strings.Contains(s, "=") {
		return fmt.Errorf("%w: %q", ErrInvalidArg, s)
	}
	*a = append(*a, s)
	return nil
}

// values converts the collected flags to resolver arguments. Values that parse
// as numbers are passed as numbers so they can drive plural selection.
func (a argList) values() resolver.Args {
	if len(a) == 0 {
		return nil
	}
	args := make(resolver.Args, len(a))
	for _, kv := range a {
		name, val, _ := strings.Cut(kv, "=")
		if n, err := strconv.ParseFloat(val, 64); err == nil {
			args[name] = n
			continue
		}
		args[name] = val
	}
	return args
}
