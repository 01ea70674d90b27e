package bootstrap

// Log messages for startup and shutdown
const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSweepsScheduled      = "Background sweeps scheduled"
	LogMsgShutdownComplete     = "Shutdown complete"
)
