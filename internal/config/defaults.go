package config

const (
	overrideModuleName = "superset_config_docker"

	cacheType           = "RedisCache"
	cacheDefaultTimeout = 300
	cacheKeyPrefix      = "superset_"

	resultsBackendType = "FileSystemCache"
	resultsBackendDir  = "/app/superset_home/sqllab"

	// one year, in seconds
	csrfTimeLimit = 60 * 60 * 24 * 365

	googleAPIBaseURL     = "https://www.googleapis.com/oauth2/v2/"
	googleAccessTokenURL = "https://accounts.google.com/o/oauth2/token"
	googleAuthorizeURL   = "https://accounts.google.com/o/oauth2/auth"
	googleJWKSURI        = "https://www.googleapis.com/oauth2/v3/certs"
	googleScope          = "email profile"
	allowedEmailDomain   = "@algocarelab.com"
)

// Beat job names, which are also the task names they trigger.
const (
	BeatReportsScheduler = "reports.scheduler"
	BeatReportsPruneLog  = "reports.prune_log"
)

// defaultSettings is the layer of values that do not depend on the
// environment.
func defaultSettings() *Settings {
	cache := CacheConfig{
		Type:           cacheType,
		DefaultTimeout: cacheDefaultTimeout,
		KeyPrefix:      cacheKeyPrefix,
	}

	return &Settings{
		ResultsBackend: ResultsBackend{
			Type: resultsBackendType,
			Dir:  resultsBackendDir,
		},
		CacheConfig:     cache,
		DataCacheConfig: cache,
		CeleryConfig: CeleryConfig{
			Imports:                  []string{"superset.sql_lab"},
			WorkerPrefetchMultiplier: 1,
			TaskAcksLate:             false,
			BeatSchedule: map[string]BeatEntry{
				BeatReportsScheduler: {
					Task:     BeatReportsScheduler,
					Schedule: Crontab{Minute: "*", Hour: "*"},
				},
				BeatReportsPruneLog: {
					Task:     BeatReportsPruneLog,
					Schedule: Crontab{Minute: "10", Hour: "0"},
				},
			},
		},

		FeatureFlags:                   map[string]bool{"ALERT_REPORTS": true},
		AlertReportsNotificationDryRun: false,

		EnableProxyFix:    true,
		CSRFEnabled:       true,
		WTFCSRFEnabled:    true,
		TalismanEnabled:   false,
		WTFCSRFExemptList: []string{},
		WTFCSRFTimeLimit:  csrfTimeLimit,

		AuthType:                 AuthOAuth,
		AuthRolePublic:           "Admin",
		AuthUserRegistrationRole: "Admin",
		AuthUserRegistration:     true,

		SQLLabCTASNoLimit: true,
	}
}

// envSettings is the layer derived from the environment: connection strings,
// Redis addresses and credentials.
func envSettings(e Environment) *Settings {
	cache := CacheConfig{
		RedisHost: e.Redis.Host,
		RedisPort: e.Redis.Port,
		RedisDB:   e.Redis.ResultsDB,
	}

	return &Settings{
		SQLAlchemyDatabaseURI: e.PrimaryConnection().URI(),
		SQLAlchemyExamplesURI: e.ExamplesConnection().URI(),

		CacheConfig:     cache,
		DataCacheConfig: cache,
		CeleryConfig: CeleryConfig{
			BrokerURL:     redisURL(e.Redis.Host, e.Redis.Port, e.Redis.CeleryDB),
			ResultBackend: redisURL(e.Redis.Host, e.Redis.Port, e.Redis.ResultsDB),
		},

		SecretKey:      e.SecretKey,
		SlackAPIToken:  e.SlackAPIToken,
		OAuthProviders: []OAuthProvider{googleProvider(e.GoogleClientID, e.GoogleClientSecret)},
	}
}

func googleProvider(clientID, clientSecret string) OAuthProvider {
	return OAuthProvider{
		Name:      "google",
		Whitelist: []string{allowedEmailDomain},
		TokenKey:  "access_token",
		Icon:      "fa-google",
		RemoteApp: RemoteApp{
			APIBaseURL:      googleAPIBaseURL,
			ClientKwargs:    ClientKwargs{Scope: googleScope},
			AccessTokenURL:  googleAccessTokenURL,
			AuthorizeURL:    googleAuthorizeURL,
			JWKSURI:         googleJWKSURI,
			RequestTokenURL: nil,
			ClientID:        clientID,
			ClientSecret:    clientSecret,
		},
	}
}

func redisURL(host, port, db string) string {
	return "redis://" + host + ":" + port + "/" + db
}
