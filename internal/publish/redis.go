// Package publish mirrors appended basis points to Redis pub/sub so
// consumers outside this process can follow the series.
package publish

import (
	"context"

	"github.com/infinityCounter2/basis-stream/internal/metrics"
	"github.com/infinityCounter2/basis-stream/internal/models"
	"github.com/mailru/easyjson"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Publisher is the part of a redis client used here.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type RedisParams struct {
	Client Publisher
	// ChannelPrefix is joined with the contract code, e.g. basis:IC00.CFE.
	//
	// Defaults to "basis".
	ChannelPrefix string
	// Buffer is how many points may wait to be published before new
	// ones are dropped.
	//
	// Defaults to 4096.
	Buffer int
	Logger *zap.Logger
}

type pending struct {
	contract string
	point    models.BasisPoint
}

// RedisPublisher implements logic.PointSink. Publish only enqueues;
// Run does the network I/O so the ingestion path never waits on redis.
type RedisPublisher struct {
	p     RedisParams
	queue chan pending
}

func NewRedisPublisher(p RedisParams) *RedisPublisher {
	if p.ChannelPrefix == "" {
		p.ChannelPrefix = "basis"
	}
	if p.Buffer <= 0 {
		p.Buffer = 4096
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	p.Logger = p.Logger.Named("publish")

	return &RedisPublisher{
		p:     p,
		queue: make(chan pending, p.Buffer),
	}
}

// Channel returns the pub/sub channel for a contract.
func (r *RedisPublisher) Channel(contract string) string {
	return r.p.ChannelPrefix + ":" + contract
}

func (r *RedisPublisher) Publish(contract string, pt models.BasisPoint) {
	select {
	case r.queue <- pending{contract: contract, point: pt}:
	default:
		// Queue full, redis is too slow or down.
		metrics.PublishErrors.Inc()
	}
}

// Run publishes queued points until ctx is done.
func (r *RedisPublisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case item := <-r.queue:
			r.send(ctx, item)
		}
	}
}

func (r *RedisPublisher) send(ctx context.Context, item pending) {
	payload, err := easyjson.Marshal(models.Update{item.contract: models.PointList{item.point}})
	if err != nil {
		metrics.PublishErrors.Inc()
		r.p.Logger.Error("Failed to encode point", zap.String("contract", item.contract), zap.Error(err))
		return
	}

	if err := r.p.Client.Publish(ctx, r.Channel(item.contract), payload).Err(); err != nil {
		metrics.PublishErrors.Inc()
		r.p.Logger.Warn("Failed to publish point", zap.String("contract", item.contract), zap.Error(err))
	}
}
