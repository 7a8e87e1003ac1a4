package appconfig

import (
	"time"

	"github.com/salesboard/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:3000"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// CorsAllowOrigins is the comma separated list of origins allowed to call the API from a browser.
	CorsAllowOrigins string `split_words:"true" default:"*"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// DataSourceURL tells where the category resources are read from. Supported schemes are:
	//   embed://                               the data files compiled into the binary
	//   file:///abs/path/to/dir                a directory on local disk
	//   s3://bucket/optional/prefix            objects in an S3 bucket
	//   redis://host:port/db?prefix=salesboard: one string key per resource
	DataSourceURL string `required:"true" split_words:"true" default:"embed://"`

	// SourceCacheTTL is how long decoded category collections are kept in memory.
	// Zero reads the backing resource on every request.
	SourceCacheTTL time.Duration `split_words:"true" default:"5m"`

	// ChartCacheMaxAge is the max-age advertised in Cache-Control for chart responses.
	ChartCacheMaxAge time.Duration `split_words:"true" default:"5m"`

	// AdminKey is the key used to authenticate the admin API. Leaving this empty disables the admin API.
	AdminKey string `split_words:"true"`

	// S3Region is the region of the bucket named in an s3:// DataSourceURL.
	S3Region string `split_words:"true" default:"us-east-1"`

	// S3Endpoint overrides the S3 endpoint, e.g. for MinIO. Leaving this empty uses AWS.
	S3Endpoint string `split_words:"true"`

	// AWSAccessKey and AWSSecretKey are static S3 credentials. When left empty, the default
	// AWS credential chain is used.
	AWSAccessKey string `split_words:"true"`
	AWSSecretKey string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"otlp"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
