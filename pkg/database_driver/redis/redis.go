package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectToRedis func - opens a pooled client and checks it with a PING
func ConnectToRedis(host, port, password string, db int, timeout time.Duration) (*goredis.Client, error) {
	if host == "" && port == "" {
		return nil, errors.New("cannot establish the redis connection: empty address")
	}
	addr := fmt.Sprintf("%s:%s", host, port)
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Error(err)
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	logrus.Info("Connected to redis: ", addr)
	return client, nil
}

// DisconnectRedis func
func DisconnectRedis(client *goredis.Client) {
	if err := client.Close(); err != nil {
		logrus.Error(err)
		return
	}
	logrus.Println("Connection with redis has closed")
}
