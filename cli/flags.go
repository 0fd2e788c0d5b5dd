package cli

const (
	FlagHome    = "home"
	FlagOut     = "out"
	FlagCompact = "compact"
)
