package tasks

import (
	"github.com/carlosgonzalezvergara/vendler/redis"
)

type Client struct {
	Jobs Jobs
}

// NewClient is a preferred way for working with replay jobs
func NewClient() (Client, error) {
	jobsRedisClient, err := redis.NewClient(redis.JobsDB)
	if err != nil {
		return Client{}, err
	}
	return Client{Jobs: Jobs{client: jobsRedisClient}}, nil
}

func (client *Client) Close() {
	_ = client.Jobs.client.Close()
}
