package constants

// viper keys
const (
	ViperServerAddrKey    = "server.addr"
	ViperAnalyzerAddrKey  = "analyzer.addr"
	ViperCORSOriginsKey   = "cors.allow_origins"
	ViperAnalysisURLKey   = "analysis.url"
	ViperAnalysisTimeout  = "analysis.timeout"
	ViperAnalysisRadius   = "analysis.radius"
	ViperSecretKey        = "analysis.secret"
	ViperMaxInFlightKey   = "analysis.max_in_flight"
	ViperDBDSNKey         = "db.dsn"
	ViperDBRetriesKey     = "db.connect_retries"
	ViperSessionIdleTTL   = "session.idle_ttl"
	ViperSweepScheduleKey = "session.sweep_schedule"
	ViperLogLevelKey      = "log.level"
	ViperLogDevKey        = "log.development"
)

const (
	// MaxCandidateLocations is the hard admission limit per session.
	MaxCandidateLocations = 5

	DefaultBusinessType = "kawiarnia"
	DefaultRadiusMeters = 500

	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)
