package db

const sessionDeactivateActiveQ = `
UPDATE sessions
SET is_active = FALSE,
    term_reason = $1,
    terminated_at = $2
WHERE user_id = $3 AND is_active
`

const sessionCreateQ = `
INSERT INTO sessions (user_id, token, refresh_token, is_active, source_ip, last_heartbeat, expires_at)
VALUES ($1, $2, $3, TRUE, $4, $5, $6)
RETURNING id
`

const sessionGetByIDQ = `
SELECT
	s.id,
	s.user_id,
	s.token,
	s.refresh_token,
	s.is_active,
	s.source_ip,
	s.last_heartbeat,
	s.expires_at,
	s.term_reason,
	s.terminated_at,
	s.created_at
FROM sessions s
WHERE s.id = $1
`

const sessionTerminateQ = `
UPDATE sessions
SET is_active = FALSE,
    term_reason = $1,
    terminated_at = $2
WHERE id = $3 AND is_active
`

const sessionHeartbeatQ = `
UPDATE sessions
SET last_heartbeat = $1
WHERE id = $2
`
