package constants

import "time"

// Request behaviour (remote bank download)
const HttpTimeout = 20 * time.Second
const MaxRetries = 3

// Backoff configuration
const InitialBackoff = time.Second
const BackoffFactor = 2.0

// HTTP Transport Tuning (in http client)
const MaxIdleConns = 100
const MaxIdleConnsPerHost = 100
const MaxConnsPerHost = 100

// Connection Timeouts (also in http client)
const IdleConnTimeout = 90 * time.Second
const TLSHandshakeTimeout = 10 * time.Second
const ResponseHeaderTimeout = 10 * time.Second
const ExpectContinueTimeout = 1 * time.Second

// Extracted page texts are cached per document for this long
const PageCacheTTL = 24 * time.Hour

// CLI defaults
const DefaultConfigFile = "quizlo.yaml"
const DefaultFormats = "json"
