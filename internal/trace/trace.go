package trace

// Log field names shared across binaries
const (
	LogPlayerID   = "id"
	LogPlayerName = "name"
	LogCohort     = "cohort"
	LogURL        = "url"
	LogStatusCode = "status"
)
