// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sourcePEM   = "pem"
	sourceDER   = "der"
	sourcePKCS7 = "pkcs7"

	resultSuccess = "success"
	resultFailure = "failure"
)

// decodesTotal counts certificate loads.
// Labels: source (pem, der, pkcs7), result (success, failure)
var decodesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "x509certstore_loader_decodes_total",
		Help: "Total number of certificate loads grouped by source and result",
	},
	[]string{"source", "result"},
)
