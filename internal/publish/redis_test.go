package publish

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/infinityCounter2/basis-stream/internal/models"
	"github.com/mailru/easyjson"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type published struct {
	channel string
	payload []byte
}

type fakeRedis struct {
	mtx  sync.Mutex
	sent []published
	err  error
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	cmd := redis.NewIntCmd(ctx, "publish", channel, message)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.sent = append(f.sent, published{channel: channel, payload: message.([]byte)})
	cmd.SetVal(1)
	return cmd
}

func (f *fakeRedis) Sent() []published {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return append([]published(nil), f.sent...)
}

func TestRedisPublisher_PublishesInOrder(t *testing.T) {
	client := &fakeRedis{}
	pub := NewRedisPublisher(RedisParams{Client: client})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pub.Run(ctx)

	pub.Publish("IC00.CFE", models.BasisPoint{Time: "09:30:05", Basis: 5.4, Timestamp: 1})
	pub.Publish("IC00.CFE", models.BasisPoint{Time: "09:30:06", Basis: 5.5, Timestamp: 2})

	require.Eventually(t, func() bool { return len(client.Sent()) == 2 }, time.Second, time.Millisecond)

	sent := client.Sent()
	require.Equal(t, "basis:IC00.CFE", sent[0].channel)

	var upd models.Update
	require.NoError(t, easyjson.Unmarshal(sent[1].payload, &upd))
	require.Equal(t, models.Update{"IC00.CFE": {{Time: "09:30:06", Basis: 5.5, Timestamp: 2}}}, upd)
}

func TestRedisPublisher_DropsWhenFull(t *testing.T) {
	client := &fakeRedis{}
	pub := NewRedisPublisher(RedisParams{Client: client, Buffer: 1, ChannelPrefix: "bs"})

	// Nothing drains the queue, so the second point is dropped without blocking.
	done := make(chan struct{})
	go func() {
		pub.Publish("IF00.CFE", models.BasisPoint{Timestamp: 1})
		pub.Publish("IF00.CFE", models.BasisPoint{Timestamp: 2})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	require.Len(t, pub.queue, 1)
	require.Equal(t, "bs:IF00.CFE", pub.Channel("IF00.CFE"))
}

func TestRedisPublisher_ErrorsAreNotFatal(t *testing.T) {
	client := &fakeRedis{err: errors.New("connection refused")}
	pub := NewRedisPublisher(RedisParams{Client: client})

	pub.send(context.Background(), pending{contract: "IH00.CFE", point: models.BasisPoint{Timestamp: 1}})
	require.Empty(t, client.Sent())
}
