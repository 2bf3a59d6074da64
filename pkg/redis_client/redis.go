package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/travigo/bridgetimes/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

// Connect opens the shared redis client from BRIDGETIMES_REDIS_* and checks it answers
func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["BRIDGETIMES_REDIS_ADDRESS"] != "" {
		address = env["BRIDGETIMES_REDIS_ADDRESS"]
	}

	if env["BRIDGETIMES_REDIS_PASSWORD"] != "" {
		password = env["BRIDGETIMES_REDIS_PASSWORD"]
	}

	if env["BRIDGETIMES_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["BRIDGETIMES_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	return Client.Ping(context.Background()).Err()
}
