package store

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

// AsynqJobClient enqueues background jobs, adapted from the teacher's
// AsynqJobClient but trimmed to the enqueue/close surface this module's
// JobClient interface names: the teacher's JobStore-backed bookkeeping
// belonged to the relational job-history feature this module doesn't
// carry forward.
type AsynqJobClient struct {
	client *asynq.Client
	logger logrus.FieldLogger
}

func NewAsynqJobClient(redisOpt asynq.RedisClientOpt, logger logrus.FieldLogger) *AsynqJobClient {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AsynqJobClient{client: asynq.NewClient(redisOpt), logger: logger}
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("enqueue task type %s: %w", task.Type(), err)
	}
	jc.logger.WithFields(logrus.Fields{
		"task_type": task.Type(),
		"task_id":   info.ID,
		"queue":     info.Queue,
	}).Info("enqueued task")
	return info, nil
}

var _ JobClient = (*AsynqJobClient)(nil)
