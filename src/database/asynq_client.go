package database

import (
	"github.com/hibiken/asynq"
)

// AsynqRedisOpt maps REDIS_URI onto the connection options asynq expects.
func AsynqRedisOpt(uri string) (asynq.RedisClientOpt, error) {
	opts, err := RedisOptions(uri)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}
	return asynq.RedisClientOpt{
		Addr:      opts.Addr,
		Username:  opts.Username,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: opts.TLSConfig,
	}, nil
}

func NewAsynqClient(uri string) (*asynq.Client, error) {
	opt, err := AsynqRedisOpt(uri)
	if err != nil {
		return nil, err
	}
	return asynq.NewClient(opt), nil
}
