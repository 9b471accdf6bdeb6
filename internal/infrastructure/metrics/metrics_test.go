package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFetch(t *testing.T) {
	m := NewMetrics()

	m.RecordFetch(FetchResultOK, 200*time.Millisecond)
	m.RecordFetch(FetchResultAbsent, time.Second)
	m.RecordFetch(FetchResultOK, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchTotal.WithLabelValues(FetchResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchTotal.WithLabelValues(FetchResultAbsent)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FetchTotal.WithLabelValues(FetchResultError)))
}

func TestRecordReply(t *testing.T) {
	m := NewMetrics()

	m.RecordReply("photo", nil)
	m.RecordReply("photo", errors.New("forbidden"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepliesTotal.WithLabelValues("photo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReplyErrors.WithLabelValues("photo")))
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RecordUpdate("start")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.UpdatesTotal.WithLabelValues("start")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.UpdatesTotal.WithLabelValues("start")))
}
