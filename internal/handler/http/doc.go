// Package http implements the HTTP transport of the door-keeper server.
//
// Field devices post protocol commands to /auth (and the legacy /auth.php).
// Enrollment helpers and the version endpoint are served next to it. Every
// request passes through trace-id, access-log and panic-recovery middleware
// before it reaches the service layer.
package http
