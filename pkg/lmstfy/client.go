package lmstfy

import (
	"encoding/json"
	"fmt"

	"github.com/bitleak/lmstfy/client"

	"dixis/shipzone/internal/model"
)

// reloadTries 重载任务最多投递次数
const reloadTries = 3

// Client Lmstfy 客户端封装
type Client struct {
	cli   *client.LmstfyClient
	queue string
}

// NewClient 创建 Lmstfy 客户端
func NewClient(host string, port int, namespace, token, queue string) *Client {
	return &Client{
		cli:   client.NewLmstfyClient(host, port, namespace, token),
		queue: queue,
	}
}

// PublishReload 发布重载任务，ttl=0 不过期，delay=0 立即可见
func (c *Client) PublishReload(job *model.ReloadTablesJob) (string, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal reload job: %w", err)
	}

	jobID, pubErr := c.cli.Publish(c.queue, data, 0, reloadTries, 0)
	if pubErr != nil {
		return "", fmt.Errorf("lmstfy publish failed: %w", pubErr)
	}
	return jobID, nil
}
