package db

const deviceGetByUserQ = `
SELECT
	d.id,
	d.user_id,
	d.fingerprint_hash,
	d.is_verified,
	d.code,
	d.code_expires_at,
	d.verified_at,
	d.user_agent,
	d.platform,
	d.screen,
	d.timezone,
	d.last_seen_at,
	d.created_at
FROM devices d
WHERE d.user_id = $1
`

const deviceCreateQ = `
INSERT INTO devices (user_id, fingerprint_hash, is_verified, code, code_expires_at)
VALUES ($1, $2, FALSE, $3, $4)
RETURNING id
`

const deviceRearmQ = `
UPDATE devices
SET fingerprint_hash = $1,
    is_verified = FALSE,
    verified_at = NULL,
    code = $2,
    code_expires_at = $3
WHERE user_id = $4
`

const deviceSetCodeQ = `
UPDATE devices
SET code = $1,
    code_expires_at = $2
WHERE user_id = $3
`

const deviceVerifyQ = `
UPDATE devices
SET is_verified = TRUE,
    verified_at = $1,
    code = NULL,
    code_expires_at = NULL,
    fingerprint_hash = $2,
    user_agent = $3,
    platform = $4,
    screen = $5,
    timezone = $6,
    last_seen_at = $1
WHERE user_id = $7
`

const deviceTouchQ = `
UPDATE devices
SET last_seen_at = $1
WHERE user_id = $2
`

const deviceDeleteQ = `
DELETE FROM devices
WHERE user_id = $1
`
