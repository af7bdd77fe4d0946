package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Process ProcessCmd `cmd:"" help:"Process a payment instruction against an account set."`
	Check   CheckCmd   `cmd:"" help:"Parse a payment instruction without executing it."`
	Serve   ServeCmd   `cmd:"" help:"Start the payment instruction HTTP server."`
}
