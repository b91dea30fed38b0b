package potd

// DefaultCaption is substituted whenever no usable caption text is found.
const DefaultCaption = "Wikipedia Picture of the Day"

// FallbackCaption explains a run where no strategy produced content.
const FallbackCaption = "Wikipedia Picture of the Day (today's picture could not be resolved)"

// potdTemplateFormat is the time layout producing the daily template title,
// e.g. "Template:POTD/2026-08-26".
const potdTemplateFormat = "Template:POTD/2006-01-02"

// Heading text markers used by the scrape strategies (matched case-insensitively).
const (
	potdHeadingMarker    = "picture of the day"
	archiveTodayMarker   = "today"
	descriptionSelector  = "#potd-desc, #potd-description, [class*=description]"
	mainPageRegionID     = "#potd"
	commonsRegionWanted  = "#potd, #mainpage-potd, .potd"
	candidateParagraphs  = "p, td"
	scrapeImageSelector  = "img"
	scrapeAnchorSelector = "a"
)
