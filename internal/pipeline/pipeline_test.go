package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dixis/shipzone/internal/model"
	"dixis/shipzone/internal/postal"
	"dixis/shipzone/internal/publish"
	"dixis/shipzone/internal/rates"
	"dixis/shipzone/internal/zone"
	"dixis/shipzone/pkg/errorutil"
	"dixis/shipzone/pkg/logger"
)

type stubFetcher struct {
	codes []string
	err   error
}

func (f *stubFetcher) Fetch(context.Context) ([]string, error) {
	return f.codes, f.err
}

type recordingNotifier struct {
	sent []*model.TablesGenerated
}

func (n *recordingNotifier) PublishTablesGenerated(_ context.Context, msg *model.TablesGenerated) error {
	n.sent = append(n.sent, msg)
	return nil
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestRateTableRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "default_shipping_rates.csv")

	result, err := NewRateTable(rates.DefaultTable(), path, nil, logger.NewNopLogger()).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 63, result.Rows)
	assert.NotEmpty(t, result.RunID)

	lines := readLines(t, path)
	require.Len(t, lines, 64)
	assert.Equal(t, "zone,weight_from_kg,weight_to_kg,delivery_method,base_rate,extra_kg_rate", lines[0])
	assert.Equal(t, "1,0.00,2.00,HOME,3.50,0.90", lines[1])
	assert.Equal(t, "1,2.01,5.00,HOME,4.50,0.90", lines[2])
	assert.Equal(t, "1,0.00,2.00,PICKUP,2.50,0.70", lines[4])
	assert.Equal(t, "4,5.01,10.00,HOME,10.00,1.50", lines[30])

	for _, line := range lines[1:] {
		if strings.Contains(line, ",LOCKER,") {
			assert.True(t, strings.HasSuffix(line, ",0.00"), line)
		}
	}
}

func TestRateTableRunMissingEntryWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default_shipping_rates.csv")
	table := rates.DefaultTable()
	delete(table.Extra, rates.ZoneMethod{Zone: zone.Islands, Method: rates.Home})

	result, err := NewRateTable(table, path, nil, logger.NewNopLogger()).Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errorutil.IsKind(err, errorutil.KindConfig))
	assert.NoFileExists(t, path)
}

func TestRateTableRunPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default_shipping_rates.csv")
	notifier := &recordingNotifier{}
	pub := publish.NewPublisher(nil, notifier, nil, logger.NewNopLogger())
	ctx := logger.WithRunID(context.Background(), "fixed-run")

	result, err := NewRateTable(rates.DefaultTable(), path, pub, logger.NewNopLogger()).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "fixed-run", result.RunID)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "fixed-run", notifier.sent[0].RunID)
	assert.Equal(t, path, notifier.sent[0].File)
	assert.Equal(t, 63, notifier.sent[0].Rows)
}

func TestPostalZonesRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postal_codes_to_zones.csv")
	fetcher := &stubFetcher{codes: []string{
		"85107", "11527", "54621", "26110", "84600", "35200",
		"11527", "1234", "ABCDE", "123456", " 54621",
	}}

	log := &recordingLogger{Logger: logger.NewNopLogger()}

	result, err := NewPostalZones(fetcher, postal.DefaultRules(), path, 2, nil, log).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6, result.Rows)
	assert.Contains(t, log.infos, "[PostalZones] Skipped 3 malformed values")
	assert.Contains(t, log.infos, "Processed 2/6 postal codes...")
	assert.Contains(t, log.infos, "Processed 6/6 postal codes...")
	assert.Equal(t, []string{
		"postal_code,zone",
		"11527,6",
		"26110,2",
		"35200,3",
		"54621,7",
		"84600,4",
		"85107,5",
	}, readLines(t, path))
}

func TestPostalZonesRunFetchFailureKeepsOldFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postal_codes_to_zones.csv")
	require.NoError(t, os.WriteFile(path, []byte("postal_code,zone\n11527,6\n"), 0o644))
	fetcher := &stubFetcher{err: errorutil.Fetch("download failed", errors.New("timeout"))}

	result, err := NewPostalZones(fetcher, postal.DefaultRules(), path, 1000, nil, logger.NewNopLogger()).Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errorutil.IsKind(err, errorutil.KindFetch))
	assert.Equal(t, []string{"postal_code,zone", "11527,6"}, readLines(t, path))
}

func TestPostalZonesRunFetchFailureAnnounced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postal_codes_to_zones.csv")
	notifier := &recordingNotifier{}
	pub := publish.NewPublisher(nil, notifier, nil, logger.NewNopLogger())
	fetcher := &stubFetcher{err: errorutil.Fetch("download failed", errors.New("timeout"))}

	_, err := NewPostalZones(fetcher, postal.DefaultRules(), path, 1000, pub, logger.NewNopLogger()).Run(context.Background())

	require.Error(t, err)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, model.RunStatusFailed, notifier.sent[0].Status)
	assert.Equal(t, model.TablePostalZones, notifier.sent[0].Table)
	assert.Contains(t, notifier.sent[0].Error, "timeout")
	assert.NotEmpty(t, notifier.sent[0].RunID)
}

func TestRateTableRunFailureAnnounced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default_shipping_rates.csv")
	table := rates.DefaultTable()
	delete(table.Extra, rates.ZoneMethod{Zone: zone.Remote, Method: rates.Pickup})
	notifier := &recordingNotifier{}
	pub := publish.NewPublisher(nil, notifier, nil, logger.NewNopLogger())

	_, err := NewRateTable(table, path, pub, logger.NewNopLogger()).Run(context.Background())

	require.Error(t, err)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, model.RunStatusFailed, notifier.sent[0].Status)
	assert.Equal(t, model.TableShippingRates, notifier.sent[0].Table)
	assert.Zero(t, notifier.sent[0].Rows)
}

func TestPostalZonesRunPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postal_codes_to_zones.csv")
	notifier := &recordingNotifier{}
	pub := publish.NewPublisher(nil, notifier, nil, logger.NewNopLogger())

	_, err := NewPostalZones(&stubFetcher{codes: []string{"11527"}}, postal.DefaultRules(), path, 1000, pub, logger.NewNopLogger()).
		Run(context.Background())

	require.NoError(t, err)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, model.TablePostalZones, notifier.sent[0].Table)
	assert.Equal(t, model.RunStatusSuccess, notifier.sent[0].Status)
	assert.Equal(t, 1, notifier.sent[0].Rows)
}

type recordingLogger struct {
	logger.Logger
	infos []string
}

func (l *recordingLogger) Infof(_ context.Context, format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func TestProgressReport(t *testing.T) {
	log := &recordingLogger{Logger: logger.NewNopLogger()}
	report := newProgress(2, log).report(context.Background())

	for i := 1; i <= 5; i++ {
		report(i, 5)
	}

	assert.Equal(t, []string{"Processed 2/5 postal codes...", "Processed 4/5 postal codes..."}, log.infos)
}

func TestProgressReportDisabled(t *testing.T) {
	log := &recordingLogger{Logger: logger.NewNopLogger()}
	report := newProgress(0, log).report(context.Background())

	report(1, 1)

	assert.Empty(t, log.infos)
}
