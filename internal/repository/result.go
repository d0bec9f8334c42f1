package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	resultsKey = "results"

	// MaxResults bounds the stored history; older results are dropped.
	MaxResults = 100
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	List(ctx context.Context, limit int) ([]*entity.Result, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save prepends the result to the history.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.LPush(ctx, resultsKey, resultJSON)
	pipe.LTrim(ctx, resultsKey, 0, MaxResults-1)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// List returns up to limit results, newest first. A non-positive limit returns all of them.
func (that *dbResult) List(ctx context.Context, limit int) ([]*entity.Result, error) {
	stop := int64(limit) - 1
	if limit <= 0 {
		stop = -1
	}

	response, err := that.client.LRange(ctx, resultsKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*entity.Result, 0, len(response))
	for _, item := range response {
		var result entity.Result
		if err = json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}
