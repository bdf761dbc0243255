package constants

import "time"

const (
	TemplateCachePrefix = "templates"         // Template lists by frequency (CacheBuilder adds colon)
	MachineCachePrefix  = "machines"          // Machine list cache
	MachineCacheExpiry  = 12 * time.Hour
	TemplateCacheExpiry = 24 * time.Hour
	ReportCachePrefix   = "report"            // Reporting queries on the reports cache DB
	ReportCacheExpiry   = 5 * time.Minute
)
