// Package redis opens and health-checks go-redis clients.
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//		RetryAttempts: 3,
//		RetryInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	health.Check{Name: "redis", Fn: redis.Healthcheck(client)}
//
// Connect accepts redis:// and rediss:// URLs and only returns a client that
// answered a PING. Retries back off exponentially and stop early when the
// context is canceled.
package redis
