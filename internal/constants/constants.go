package constants

import "time"

// Job scheduling and timeouts
const (
	PrepareNextBusinessDateCronSpec   = "0 15 * * *" // 15:00 UTC = 00:00 JST
	PrepareNextBusinessDateJobTimeout = 5 * time.Minute
)

// HTTP server
const (
	ServerReadHeaderTimeout = 10 * time.Second
	ServerShutdownTimeout   = 15 * time.Second
)

// Public messages
const (
	MsgVersionMismatch = "Version mismatch. The data has been updated by another user."
)
