package source

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"dixis/shipzone/pkg/errorutil"
	"dixis/shipzone/pkg/logger"
)

// Fetcher 下载上游数据集并提取邮编列
type Fetcher struct {
	client  *http.Client
	url     string
	timeout time.Duration
	aliases []string
	logger  logger.Logger
}

// NewFetcher 创建 Fetcher 实例，aliases 为邮编列可接受的列名（按优先级）
func NewFetcher(url string, timeout time.Duration, aliases []string, log logger.Logger) *Fetcher {
	return &Fetcher{
		client:  &http.Client{},
		url:     url,
		timeout: timeout,
		aliases: append([]string(nil), aliases...),
		logger:  log,
	}
}

// Fetch 发起一次 GET，返回原始邮编值（可能非法或重复）
func (f *Fetcher) Fetch(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	f.logger.Infof(ctx, "[Fetcher] Downloading postal code data from %s", f.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errorutil.Fetch("build request failed", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errorutil.Fetch("download postal code data failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorutil.Newf(errorutil.KindFetch, "download postal code data failed: unexpected status %s", resp.Status)
	}

	codes, column, err := ReadPostalCodes(resp.Body, f.aliases)
	if err != nil {
		// 读 body 时超时仍算传输失败
		if ctx.Err() != nil {
			return nil, errorutil.Fetch("download postal code data failed", ctx.Err())
		}
		return nil, err
	}

	f.logger.Infof(ctx, "[Fetcher] Download successful, column %q, %d rows", column, len(codes))
	return codes, nil
}

// ReadPostalCodes 解析 CSV，返回首个命中 aliases 的列（去空白）及其列名
func ReadPostalCodes(r io.Reader, aliases []string) ([]string, string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, "", errorutil.New(errorutil.KindSchema, "postal code data is empty")
	}
	if err != nil {
		return nil, "", errorutil.Wrap(errorutil.KindSchema, "read postal code header failed", err)
	}

	idx, column := findColumn(header, aliases)
	if idx < 0 {
		return nil, "", errorutil.Newf(errorutil.KindSchema, "no postal code column in %v, accepted %v", header, aliases)
	}

	var codes []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", errorutil.Wrap(errorutil.KindSchema, "read postal code data failed", err)
		}
		if idx >= len(record) {
			continue
		}
		codes = append(codes, strings.TrimSpace(record[idx]))
	}

	return codes, column, nil
}

func findColumn(header []string, aliases []string) (int, string) {
	names := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := names[h]; !dup {
			names[h] = i
		}
	}
	for _, alias := range aliases {
		if i, ok := names[alias]; ok {
			return i, alias
		}
	}
	return -1, ""
}
