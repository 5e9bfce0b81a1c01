package config

// Values assigned after the override document has been folded in. An
// override defining any of these names has no effect.
const (
	fixedRowLimit                     = 5000
	fixedSQLMaxRow                    = 5000
	fixedWebdriverType                = "firefox"
	fixedWebdriverBaseURL             = "http://superset:8088/"
	fixedWebdriverBaseURLUserFriendly = "https://superset.algocare.link"
	fixedScreenshotLocateWait         = 100
	fixedScreenshotLoadWait           = 600
	fixedThumbnailSeleniumUser        = "admin"
)

func webdriverOptionArgs() []string {
	return []string{
		"--force-device-scale-factor=2.0",
		"--high-dpi-support=2.0",
		"--headless",
		"--disable-gpu",
		"--disable-dev-shm-usage",
		"--no-sandbox",
		"--disable-setuid-sandbox",
		"--disable-extensions",
	}
}

// applyFixed overwrites the non-overridable block of s.
func applyFixed(s *Settings) {
	s.RowLimit = fixedRowLimit
	s.SQLMaxRow = fixedSQLMaxRow
	s.WebdriverType = fixedWebdriverType
	s.WebdriverOptionArgs = webdriverOptionArgs()
	s.WebdriverBaseURL = fixedWebdriverBaseURL
	s.WebdriverBaseURLUserFriendly = fixedWebdriverBaseURLUserFriendly
	s.ScreenshotLocateWait = fixedScreenshotLocateWait
	s.ScreenshotLoadWait = fixedScreenshotLoadWait
	s.ThumbnailSeleniumUser = fixedThumbnailSeleniumUser
	s.AlertReportsExecuteAs = []ExecutorType{ExecutorSelenium}
	s.ScheduledQueries = scheduledQueries()
}
