// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opAdd    = "add"
	opGet    = "get"
	opRemove = "remove"
	opClear  = "clear"
	opImport = "import_chain"
	opExport = "export"
)

// storeOps counts store operations.
// Labels: op (add, get, remove, clear, import_chain, export)
var storeOps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "x509certstore_store_operations_total",
		Help: "Total number of certificate store operations grouped by operation",
	},
	[]string{"op"},
)
