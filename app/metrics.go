package app

import (
	"strconv"

	"github.com/iov-one/weave-escrow/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// TxCounter counts processed transactions, partitioned by the ABCI call
// (check or deliver), the message path and the result code.
var TxCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "escrow",
		Name:      "tx_total",
		Help:      "Number of processed transactions.",
	},
	[]string{"mode", "path", "code"},
)

// RegisterMetrics registers all metrics of this package.
func RegisterMetrics(r prometheus.Registerer) error {
	return r.Register(TxCounter)
}

func countTx(mode, path string, err error) {
	code, _ := errors.ABCIInfo(err, false)
	TxCounter.WithLabelValues(mode, path, strconv.FormatUint(uint64(code), 10)).Inc()
}
