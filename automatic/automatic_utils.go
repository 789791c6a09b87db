package automatic

import (
	"context"
	"errors"
	"expvar"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/connect4/config"
	"github.com/domino14/connect4/zobrist"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("connect4GamesPlayed")
	IsPlaying = expvar.NewInt("connect4IsPlaying")
}

type job struct{}

// Run plays the configured number of random games over the configured
// number of threads and returns the merged report. Each thread owns its
// board. If ctx is canceled, Run stops queueing games and reports on the
// ones that finished.
func Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	numGames := cfg.GetInt(config.ConfigGames)
	threads := cfg.GetInt(config.ConfigThreads)
	hashing := cfg.GetBool(config.ConfigSeedReport)
	confidence := cfg.GetFloat64(config.ConfigConfidence)

	var z *zobrist.Zobrist
	if hashing {
		z = &zobrist.Zobrist{}
		z.Initialize()
	}

	log.Debug().Int("games", numGames).Int("threads", threads).Bool("hashing", hashing).
		Msg("starting-random-games")
	GamesCounter.Set(0)

	jobs := make(chan job, 100)
	total := newTally(hashing)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < threads; t++ {
		t := t
		g.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			r := NewGameRunner(z)
			local := newTally(hashing)
			for range jobs {
				if gctx.Err() != nil {
					// drain
					continue
				}
				res, err := r.PlayGame()
				if err != nil {
					return err
				}
				local.add(res)
				GamesCounter.Add(1)
			}
			mu.Lock()
			total.merge(local)
			mu.Unlock()
			log.Debug().Int("thread", t).Int("games", local.games).Msg("thread-done")
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := 1; i <= numGames; i++ {
			if gctx.Err() != nil {
				log.Info().Int("queued", i-1).Msg("got stop signal, no more games queued")
				return nil
			}
			select {
			case jobs <- job{}:
			case <-gctx.Done():
				return nil
			}
			if i%1000 == 0 {
				log.Debug().Int("queued", i).Msg("queued-games")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info().Int("games", total.games).Msg("all games finished")
	return total.report(confidence), nil
}
