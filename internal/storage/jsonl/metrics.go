package jsonl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeAppends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "contas",
			Name:      "store_appends_total",
			Help:      "Records appended to a data file",
		},
		[]string{"file"},
	)
	storeRewrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "contas",
			Name:      "store_rewrites_total",
			Help:      "Whole-file rewrites of a data file",
		},
		[]string{"file"},
	)
	storeRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "contas",
			Name:      "store_records",
			Help:      "Records seen in a data file on its last read or rewrite",
		},
		[]string{"file"},
	)
	balanceRecomputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "contas",
			Name:      "balance_recomputations_total",
			Help:      "Account balances recomputed after a movement was deleted",
		},
	)
)
