package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	reg := NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "policycore_test_total",
		Help: "test counter",
	})
	reg.MustRegister(c)
	c.Add(3)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "policycore_test_total 3")
	assert.Contains(t, buf.String(), "go_goroutines")
}
