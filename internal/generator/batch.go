package generator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/genpass/internal/charset"
	"github.com/verte-zerg/genpass/internal/model"
)

// PasswordBatch returns count independent passwords in request order.
// Any failure discards every result.
func (g *Generator) PasswordBatch(cfg model.GenerationConfig, count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool, err := charset.BuildPool(cfg)
	if err != nil {
		return nil, err
	}
	return batch(count, func() (string, error) {
		return g.password(cfg.Length, cfg.PerClass(), pool)
	})
}

// PassphraseBatch returns count independent passphrases in request order.
// Any failure discards every result.
func (g *Generator) PassphraseBatch(cfg model.PassphraseConfig, count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := g.checkPassphrase(cfg); err != nil {
		return nil, err
	}
	return batch(count, func() (string, error) {
		return g.passphrase(cfg)
	})
}

func checkCount(count int) error {
	if count < 1 {
		return model.InvalidConfigf("count must be at least 1, got %d", count)
	}
	return nil
}

func batch(count int, draw func() (string, error)) ([]string, error) {
	out := make([]string, count)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			s, err := draw()
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
