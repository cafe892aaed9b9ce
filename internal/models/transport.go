package models

import (
	"net/http"

	"github.com/IMSLEPT/quizlo/internal/constants"
)

// OptimizedTransport returns a high-performance HTTP transport
func OptimizedTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:          constants.MaxIdleConns,
		MaxIdleConnsPerHost:   constants.MaxIdleConnsPerHost,
		MaxConnsPerHost:       constants.MaxConnsPerHost,
		IdleConnTimeout:       constants.IdleConnTimeout,
		DisableCompression:    false,
		DisableKeepAlives:     false,
		TLSHandshakeTimeout:   constants.TLSHandshakeTimeout,
		ResponseHeaderTimeout: constants.ResponseHeaderTimeout,
		ExpectContinueTimeout: constants.ExpectContinueTimeout,
	}
}
