package bootstrap

import "context"

// AuditLog is a security-relevant event worth keeping outside the
// request logs: logins, logouts, privileged provisioning, shutdown.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
